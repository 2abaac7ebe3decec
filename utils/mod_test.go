package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndices(t *testing.T) {
	require.Equal(t, []int{1, 3}, FindIndices([]bool{true, false, true, false}, false))
	require.Equal(t, []int{0}, FindIndices([]string{"a", "b"}, "a"))
	require.Empty(t, FindIndices([]int{1, 2}, 3), "No match should give no indices")
}
