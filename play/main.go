// Command play runs a game on the terminal between a human and an agent.
package main

import (
	"flag"
	"fmt"
	"os"

	"goboard/agent"
	"goboard/engine"
	"goboard/game"
	"goboard/meta"
	"goboard/notation"
	"goboard/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", meta.BOARD_SIZE, "Board size")
	komi := flag.Float64("komi", meta.KOMI, "Points credited to white")
	color := flag.String("color", "black", "Color played by the human: black or white")
	opponent := flag.String("opponent", "search", "Opponent: random, search or human")
	episodes := flag.Int("episodes", meta.EPISODES, "Search episodes per move")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Search goroutines")
	seed := flag.Uint64("seed", 0, "Opponent seed")
	level := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	initial, err := game.NewFromConfig(game.NewConfig(*size, game.WithKomi(float32(*komi))))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game config")
	}

	human := agent.NewHumanAgent(os.Stdin, os.Stdout)
	var other agent.Agent
	switch *opponent {
	case "random":
		other = agent.NewRandomAgent(*seed, 0.05)
	case "search":
		other = searcher.NewMonteCarlo(*goroutines, searcher.WithEpisodes(*episodes), searcher.WithSeed(*seed))
	case "human":
		other = human // one reader must own stdin
	default:
		log.Fatal().Msgf("unknown opponent %q", *opponent)
	}

	black, white := human, other
	switch *color {
	case "black":
	case "white":
		black, white = other, human
	default:
		log.Fatal().Msgf("unknown color %q", *color)
	}

	e := engine.LocalEngine(black, white, initial)
	winner, m := e.Run()

	if err := notation.Render(os.Stdout, e.State.Board()); err != nil {
		log.Fatal().Err(err).Msg("failed to render board")
	}
	fmt.Printf("%s wins after %d moves (%s), black scores %.1f\n",
		winner, m.Moves, m.EndReason, e.State.Score(game.Black))
}
