package engine

import (
	"sync"

	"goboard/agent"
	"goboard/experiments/metrics"
	"goboard/game"
	"goboard/meta"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorgonia.org/tensor"
)

// StepBatch steps states[i] with actions[i] for every i on a pool of
// goroutines. The instances are independent, so the result equals stepping
// them one by one. An instance whose action is rejected keeps its state and
// contributes to the returned error; the others are still advanced.
func StepBatch(states []game.GameState, actions []int, goroutines int) ([]game.GameState, []float32, error) {
	if len(states) != len(actions) {
		return nil, nil, errors.Errorf("got %d states but %d actions", len(states), len(actions))
	}
	goroutines = max(1, min(goroutines, len(states)))

	next := make([]game.GameState, len(states))
	rewards := make([]float32, len(states))
	errs := make([]error, len(states))

	task := make(chan int, len(states))
	for i := range states {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				next[i], rewards[i], errs[i] = states[i].Step(actions[i])
			}
		}()
	}
	wg.Wait()

	var result *multierror.Error
	for i, err := range errs {
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "instance %d", i))
		}
	}
	return next, rewards, result.ErrorOrNil()
}

// SelfPlay runs a batch of games in lockstep: each round, every unfinished game
// asks its agent for an action and all of them are stepped with StepBatch.
// Agents are queried sequentially, so one agent may serve several games. An
// action outside the board is replaced by PASS for that game only.
func SelfPlay(states []game.GameState, blacks, whites []agent.Agent, goroutines int, collector metrics.Collector) ([]game.GameState, []metrics.GameMetric, error) {
	if len(blacks) != len(states) || len(whites) != len(states) {
		return nil, nil, errors.Errorf("got %d games but %d black and %d white agents", len(states), len(blacks), len(whites))
	}

	current := make([]game.GameState, len(states))
	copy(current, states)
	records := make([]metrics.GameMetric, len(states))
	rewards := make([]float32, len(states))
	for i, s := range current {
		records[i] = metrics.NewGameMetric(s.Size())
	}

	log.Info().Msgf("starting %d games on %d goroutines", len(states), goroutines)

	for round := 0; round < meta.MAX_TURNS; round++ {
		var live []int
		for i, s := range current {
			if !s.Done() {
				live = append(live, i)
			}
		}
		if len(live) == 0 {
			break
		}

		batch := make([]game.GameState, len(live))
		actions := make([]int, len(live))
		for k, i := range live {
			batch[k] = current[i]
			player := blacks[i]
			if current[i].Turn() == game.White {
				player = whites[i]
			}
			actions[k] = usableAction(current[i], player.SelectAction(current[i]))
		}

		next, r, err := StepBatch(batch, actions, goroutines)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "round %d", round)
		}
		for k, i := range live {
			current[i], rewards[i] = next[k], r[k]
			collector.AddStep(actions[k] == batch[k].PassAction(), next[k].Invalid())
		}
		log.Debug().Msgf("round %d: %d games still running", round+1, len(live))
	}

	for i := range records {
		records[i].Finish(current[i], rewards[i])
		collector.AddGame()
	}
	log.Info().Msgf("completed %d games", len(states))
	return current, records, nil
}

// Observations stacks the canonical observations of states into a
// (B, N, N, K) tensor. All states must share board size and history length.
func Observations(states []game.GameState) (*tensor.Dense, error) {
	if len(states) == 0 {
		return nil, errors.New("no states to observe")
	}
	n, k := states[0].Size(), states[0].HistoryLen()
	backing := make([]float32, 0, len(states)*n*n*k)
	for i, s := range states {
		if s.Size() != n || s.HistoryLen() != k {
			return nil, errors.Errorf("state %d is %dx%d with history %d, want %dx%d with history %d",
				i, s.Size(), s.Size(), s.HistoryLen(), n, n, k)
		}
		backing = append(backing, s.ObservationData()...)
	}
	return tensor.New(tensor.WithShape(len(states), n, n, k), tensor.WithBacking(backing)), nil
}
