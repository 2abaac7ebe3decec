package agent

import (
	"sync"

	"goboard/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu       sync.Mutex
	r        *rand.Rand
	passProb float64
}

// NewRandomAgent plays a uniformly random empty cell, or passes with
// probability passProb and whenever the board is full.
func NewRandomAgent(seed uint64, passProb float64) Agent {
	return &randomAgent{
		r:        rand.New(rand.NewSource(seed)),
		passProb: passProb,
	}
}

func (a *randomAgent) SelectAction(state game.GameState) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return RandomAction(a.r, state, a.passProb)
}

// RandomAction draws an action the InvalidActions mask allows using r.
func RandomAction(r *rand.Rand, state game.GameState, passProb float64) int {
	pass := state.PassAction()
	if passProb > 0 && r.Float64() < passProb {
		return pass
	}
	legal := state.LegalActions()
	// PASS is always the last legal action.
	cells := legal[:len(legal)-1]
	if len(cells) == 0 {
		return pass
	}
	return cells[r.Intn(len(cells))]
}
