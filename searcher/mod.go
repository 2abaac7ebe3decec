package searcher

// Rollout outcomes, from the searching player's perspective.
const (
	Win  = 1.0
	Loss = 1 - Win
)
