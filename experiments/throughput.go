package experiments

import (
	"time"

	"goboard/agent"
	"goboard/engine"
	"goboard/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Throughput is the step rate StepBatch reached with a given pool size.
type Throughput struct {
	Goroutines  int
	Steps       int
	Duration    time.Duration
	StepsPerSec float64
}

// RunThroughputExperiment steps a batch of random games with each pool size
// and reports how many steps per second StepBatch sustained.
func RunThroughputExperiment(cfg Config, goroutines []int) ([]Throughput, error) {
	initial, err := game.NewFromConfig(cfg.gameConfig())
	if err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}
	if cfg.Games < 1 {
		return nil, errors.Errorf("need at least one game, got %d", cfg.Games)
	}

	log.Info().Msg("starting throughput experiment...")

	results := make([]Throughput, 0, len(goroutines))
	for _, g := range goroutines {
		players := make([]agent.Agent, cfg.Games)
		states := make([]game.GameState, cfg.Games)
		for i := range states {
			states[i] = initial
			players[i] = agent.NewRandomAgent(cfg.Seed+uint64(i), cfg.PassProb)
		}

		steps := 0
		var elapsed time.Duration
		for {
			var live []int
			for i, s := range states {
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
				batch[k] = states[i]
				actions[k] = players[i].SelectAction(states[i])
			}

			start := time.Now()
			next, _, err := engine.StepBatch(batch, actions, g)
			elapsed += time.Since(start)
			if err != nil {
				return nil, err
			}
			for k, i := range live {
				states[i] = next[k]
			}
			steps += len(live)
		}

		result := Throughput{Goroutines: g, Steps: steps, Duration: elapsed}
		if elapsed > 0 {
			result.StepsPerSec = float64(steps) / elapsed.Seconds()
		}
		results = append(results, result)
		log.Info().Msgf("goroutines=%d: %d steps in %s (%.0f steps/s)", g, steps, elapsed, result.StepsPerSec)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
