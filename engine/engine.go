package engine

import (
	"goboard/agent"
	"goboard/experiments/metrics"
	"goboard/game"
	"goboard/meta"

	"github.com/rs/zerolog/log"
)

type Engine interface {
	// Run plays a game till it is done or meta.MAX_TURNS moves were played
	Run() (winner game.Color, gameMetric metrics.GameMetric)
}

// Local plays one game between two agents in the calling goroutine.
type Local struct {
	State game.GameState
	black agent.Agent
	white agent.Agent
}

func LocalEngine(black, white agent.Agent, initial game.GameState) *Local {
	if black == nil || white == nil {
		panic("need an agent for each color")
	}
	return &Local{
		State: initial,
		black: black,
		white: white,
	}
}

func (e *Local) agentFor(c game.Color) agent.Agent {
	if c == game.White {
		return e.white
	}
	return e.black
}

// Run executes the entire game loop until the game is done.
func (e *Local) Run() (game.Color, metrics.GameMetric) {
	gameMetric := metrics.NewGameMetric(e.State.Size())

	log.Info().Msgf("%s is starting on a %dx%d board", e.State.Turn(), e.State.Size(), e.State.Size())

	turnCount := 0
	var reward float32
	for !e.State.Done() && turnCount < meta.MAX_TURNS {
		player := e.State.Turn()
		action := usableAction(e.State, e.agentFor(player).SelectAction(e.State))

		next, r, err := e.State.Step(action)
		if err != nil {
			panic(err)
		}
		log.Debug().Msgf("turn %d: %s played %d, reward %v", turnCount+1, player, action, r)

		e.State, reward = next, r
		turnCount++
	}

	if !e.State.Done() {
		log.Warn().Msgf("stopped after %d turns without a result", turnCount)
	}

	gameMetric.Finish(e.State, reward)
	log.Info().Msgf("game over after %d moves (%s), winner: %s", gameMetric.Moves, gameMetric.EndReason, gameMetric.Winner)
	return e.State.Winner(), gameMetric
}

// usableAction replaces an action Step would reject with PASS.
func usableAction(state game.GameState, action int) int {
	pass := state.PassAction()
	if state.Config().ClampActions || (action >= 0 && action <= pass) {
		return action
	}
	log.Warn().Msgf("%s chose action %d, passing instead", state.Turn(), action)
	return pass
}
