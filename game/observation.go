package game

import "gorgonia.org/tensor"

// Observation stacks the history window into a (N, N, K) float32 tensor
// indexed [row, col, frame], oldest frame first. Cells hold +1 for black,
// -1 for white and 0 for empty.
func (gs GameState) Observation() *tensor.Dense {
	return gs.observation(1)
}

// CanonicalObservation is Observation seen from the player to move: stones of
// the player to move are +1 and the opponent's -1.
func (gs GameState) CanonicalObservation() *tensor.Dense {
	return gs.observation(float32(gs.turn))
}

func (gs GameState) observation(sign float32) *tensor.Dense {
	n, k := gs.conf.Size, gs.recent.len()
	backing := make([]float32, n*n*k)
	for f := 0; f < k; f++ {
		for i, v := range gs.recent.board(f).cells {
			backing[i*k+f] = float32(v) * sign
		}
	}
	return tensor.New(tensor.WithShape(n, n, k), tensor.WithBacking(backing))
}

// ObservationData is the flat backing of CanonicalObservation, for consumers
// that batch observations themselves.
func (gs GameState) ObservationData() []float32 {
	return gs.CanonicalObservation().Data().([]float32)
}
