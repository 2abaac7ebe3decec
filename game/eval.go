package game

// FinalScore is the area score of board from perspective's point of view:
// stones plus eyes of perspective, minus the same for the opponent, with komi
// credited to white.
func (gs GameState) FinalScore(b Board, perspective Color) float32 {
	return Score(b, perspective, gs.conf.Komi)
}

// Score computes the area score of b for perspective with the given komi.
func Score(b Board, perspective Color, komi float32) float32 {
	my := b.Count(perspective) + CountEyes(b, perspective)
	opp := b.Count(perspective.Opponent()) + CountEyes(b, perspective.Opponent())
	return float32(my-opp) - float32(perspective)*komi
}

// CountEyes counts the empty cells whose four orthogonal neighbors all hold c.
// Off-board neighbors count as c, so edge and corner points need fewer real
// stones. This is a single-point heuristic, not a life-and-death reading.
func CountEyes(b Board, c Color) int {
	n := b.size
	match := func(r, col int) bool {
		if r < 0 || r >= n || col < 0 || col >= n {
			return true
		}
		return b.At(r, col) == c
	}

	eyes := 0
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			if b.At(r, col) != Empty {
				continue
			}
			if match(r-1, col) && match(r+1, col) && match(r, col-1) && match(r, col+1) {
				eyes++
			}
		}
	}
	return eyes
}

// Score is the area score of the current board for perspective.
func (gs GameState) Score(perspective Color) float32 {
	return gs.FinalScore(gs.board, perspective)
}
