package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"goboard/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defaults := experiments.DefaultConfig()

	name := flag.String("name", defaults.Name, "Experiment name, used for the output directory")
	games := flag.Int("games", defaults.Games, "Number of games played in lockstep")
	size := flag.Int("size", defaults.Size, "Board size")
	komi := flag.Float64("komi", float64(defaults.Komi), "Points credited to white")
	history := flag.Int("history", defaults.History, "Boards kept for repetition checks")
	goroutines := flag.Int("goroutines", defaults.Goroutines, "Goroutines for batch stepping and search")
	agentKind := flag.String("agent", defaults.Agent, "Agent for both colors: random or search")
	passProb := flag.Float64("pass-prob", defaults.PassProb, "Probability that a random move is a pass")
	episodes := flag.Int("episodes", defaults.Episodes, "Search episodes per move")
	cutoff := flag.Int("cutoff", defaults.Cutoff, "Search rollout depth")
	seed := flag.Uint64("seed", 0, "Seed for every agent")
	out := flag.String("out", "experiments", "Directory for CSV records, empty to skip")
	throughput := flag.String("throughput", "", "Comma-separated pool sizes; measures StepBatch throughput instead")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	cfg := experiments.Config{
		Name:       *name,
		Games:      *games,
		Size:       *size,
		Komi:       float32(*komi),
		History:    *history,
		Goroutines: *goroutines,
		Agent:      *agentKind,
		PassProb:   *passProb,
		Episodes:   *episodes,
		Cutoff:     *cutoff,
		Seed:       *seed,
		OutDir:     *out,
	}

	if *throughput != "" {
		var pools []int
		for _, field := range strings.Split(*throughput, ",") {
			g, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				log.Fatal().Err(err).Msgf("invalid pool size %q", field)
			}
			pools = append(pools, g)
		}
		if _, err := experiments.RunThroughputExperiment(cfg, pools); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		return
	}

	if _, err := experiments.RunSelfPlay(cfg); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
}
