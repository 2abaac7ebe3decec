package searcher

import (
	"fmt"
	"sync"

	"goboard/agent"
	"goboard/game"

	"golang.org/x/exp/rand"
)

type Option func(mc *MonteCarlo)

// MonteCarlo rates every legal action by the share of random playouts that
// the player to move wins after taking it.
type MonteCarlo struct {
	goroutines int
	episodes   int
	cutoff     int // rollout depth; 0 plays until the game ends
	seed       uint64
	passProb   float64
	evaluate   game.Evaluate
}

func WithEpisodes(episodes int) Option {
	return func(m *MonteCarlo) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MonteCarlo) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MonteCarlo) {
		m.seed = seed
	}
}

// WithPassProbability sets how often rollouts pass instead of playing a cell.
func WithPassProbability(p float64) Option {
	return func(m *MonteCarlo) {
		if p >= 0 && p <= 1 {
			m.passProb = p
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MonteCarlo) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func NewMonteCarlo(goroutines int, options ...Option) *MonteCarlo {
	m := &MonteCarlo{ // Default values
		goroutines: goroutines,
		passProb:   0.05,
		evaluate:   game.EvaluateScore,
	}
	for _, option := range options {
		option(m)
	}
	if m.goroutines <= 0 {
		panic(fmt.Sprintf("Must use at least one goroutine, got %d", m.goroutines))
	}
	if m.episodes <= 0 {
		panic("Must specify search episodes")
	}
	return m
}

// SelectAction makes MonteCarlo usable as an agent.Agent.
func (m *MonteCarlo) SelectAction(state game.GameState) int {
	return m.FindMove(state)
}

// FindMove returns the legal action with the highest win rate. Ties go to the
// lowest action.
func (m *MonteCarlo) FindMove(state game.GameState) int {
	policy := m.Policy(state)

	best, bestValue := state.PassAction(), -1.0
	for _, action := range state.LegalActions() {
		if v, ok := policy[action]; ok && v > bestValue {
			best, bestValue = action, v
		}
	}
	return best
}

// Policy maps every visited legal action to its win rate in [0, 1].
// Episode i always uses the same random stream, so the result depends only on
// the state and the configuration, not on goroutine scheduling.
func (m *MonteCarlo) Policy(state game.GameState) map[int]float64 {
	candidates := state.LegalActions()
	rewards := make([]float64, len(candidates))
	visits := make([]int, len(candidates))

	task := make(chan int, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- i
	}
	close(task)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for episode := range task {
				c := episode % len(candidates)
				reward := m.simulate(state, candidates[c], episode)

				mu.Lock()
				rewards[c] += reward
				visits[c]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	policy := make(map[int]float64, len(candidates))
	for c, action := range candidates {
		if visits[c] > 0 {
			policy[action] = rewards[c] / float64(visits[c])
		}
	}
	return policy
}

func (m *MonteCarlo) simulate(state game.GameState, action, episode int) float64 {
	r := rand.New(rand.NewSource(m.seed ^ uint64(episode)*0x9E3779B97F4A7C15))
	player := state.Turn()

	next, _, err := state.Step(action)
	if err != nil {
		panic(fmt.Sprintf("legal action %d rejected: %v", action, err))
	}
	return rollout(next, player, m.cutoff, m.passProb, r, m.evaluate)
}

// rollout plays random moves until the game ends or cutoff moves were played.
func rollout(state game.GameState, player game.Color, cutoff int, passProb float64, r *rand.Rand, evaluate game.Evaluate) float64 {
	for depth := 0; !state.Done() && (cutoff == 0 || depth < cutoff); depth++ {
		var err error
		state, _, err = state.Step(agent.RandomAction(r, state, passProb))
		if err != nil {
			panic(fmt.Sprintf("random rollout produced a rejected action: %v", err))
		}
	}

	if state.Done() {
		if state.Winner() == player {
			return Win
		}
		return Loss
	}
	// At cutoff, score the position instead
	if evaluate(state, player) > 0 {
		return Win
	}
	return Loss
}
