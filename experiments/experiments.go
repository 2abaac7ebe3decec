package experiments

import (
	"goboard/agent"
	"goboard/engine"
	"goboard/experiments/metrics"
	"goboard/game"
	"goboard/meta"
	"goboard/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Agent kinds a Config can ask for.
const (
	RandomAgent = "random"
	SearchAgent = "search"
)

type Config struct {
	Name       string  `json:"name"`
	Games      int     `json:"games"`
	Size       int     `json:"size"`
	Komi       float32 `json:"komi"`
	History    int     `json:"history"`
	Goroutines int     `json:"goroutines"`
	Agent      string  `json:"agent"`
	PassProb   float64 `json:"pass_prob"`
	Episodes   int     `json:"episodes"`
	Cutoff     int     `json:"cutoff"`
	Seed       uint64  `json:"seed"`
	OutDir     string  `json:"out_dir"` // no files are written when empty
}

// DefaultConfig plays random self-play games with the meta defaults.
func DefaultConfig() Config {
	return Config{
		Name:       "selfplay",
		Games:      meta.GAMES,
		Size:       meta.BOARD_SIZE,
		Komi:       meta.KOMI,
		History:    meta.HISTORY,
		Goroutines: meta.GO_ROUTINES,
		Agent:      RandomAgent,
		PassProb:   0.05,
		Episodes:   meta.EPISODES,
		Cutoff:     meta.WITH_CUTOFF,
	}
}

func (cfg Config) gameConfig() game.Config {
	return game.NewConfig(cfg.Size, game.WithKomi(cfg.Komi), game.WithHistory(cfg.History))
}

// createAgent builds the agent for one seat; every seat gets its own seed.
func (cfg Config) createAgent(seat int) (agent.Agent, error) {
	seed := cfg.Seed + uint64(seat)
	switch cfg.Agent {
	case RandomAgent:
		return agent.NewRandomAgent(seed, cfg.PassProb), nil
	case SearchAgent:
		options := []searcher.Option{searcher.WithSeed(seed), searcher.WithPassProbability(cfg.PassProb)}
		if cfg.Episodes > 0 {
			options = append(options, searcher.WithEpisodes(cfg.Episodes))
		}
		if cfg.Cutoff > 0 {
			options = append(options, searcher.WithCutoff(cfg.Cutoff))
		}
		return searcher.NewMonteCarlo(max(1, cfg.Goroutines), options...), nil
	default:
		return nil, errors.Errorf("unknown agent %q", cfg.Agent)
	}
}

// RunSelfPlay plays cfg.Games games in lockstep and summarizes them. With an
// OutDir the game records and the summary are stored as CSV.
func RunSelfPlay(cfg Config) (metrics.Summary, error) {
	if cfg.Games < 1 {
		return metrics.Summary{}, errors.Errorf("need at least one game, got %d", cfg.Games)
	}
	if cfg.Agent == SearchAgent && cfg.Episodes < 1 {
		return metrics.Summary{}, errors.New("search agents need episodes")
	}

	initial, err := game.NewFromConfig(cfg.gameConfig())
	if err != nil {
		return metrics.Summary{}, errors.Wrap(err, "invalid game config")
	}

	states := make([]game.GameState, cfg.Games)
	blacks := make([]agent.Agent, cfg.Games)
	whites := make([]agent.Agent, cfg.Games)
	for i := range states {
		states[i] = initial
		if blacks[i], err = cfg.createAgent(2 * i); err != nil {
			return metrics.Summary{}, err
		}
		if whites[i], err = cfg.createAgent(2*i + 1); err != nil {
			return metrics.Summary{}, err
		}
	}

	log.Info().Msgf("starting %s experiment: %d %s games on %dx%d", cfg.Name, cfg.Games, cfg.Agent, cfg.Size, cfg.Size)

	collector := metrics.NewCollector()
	collector.Start()
	_, records, err := engine.SelfPlay(states, blacks, whites, cfg.Goroutines, collector)
	if err != nil {
		return metrics.Summary{}, errors.Wrap(err, "self-play failed")
	}
	counts := collector.Complete()
	summary := metrics.Summarize(records)

	log.Info().Msgf("completed %s experiment: %d steps (%d passes, %d illegal) in %s",
		cfg.Name, counts.Steps, counts.Passes, counts.Illegal, counts.Duration)
	log.Info().Msgf("mean game length %.2f ± %.2f, black win rate %.3f",
		summary.MeanMoves, summary.StdMoves, summary.BlackWinRate)

	if cfg.OutDir == "" {
		return summary, nil
	}

	// Store experiment results
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return summary, errors.Wrap(err, "failed to create experiment writer")
	}
	err = writer.WriteGameRecords(records)
	if err != nil {
		return summary, errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return summary, errors.Wrap(err, "failed to write summary")
	}
	log.Info().Msgf("stored summary in %s", writer.Dir())
	return summary, nil
}
