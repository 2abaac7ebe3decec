package utils

// FindIndices returns every position of item in slice, in order.
func FindIndices[T comparable](slice []T, item T) []int {
	var indices []int
	for i, v := range slice {
		if v == item {
			indices = append(indices, i)
		}
	}
	return indices
}
