package searcher

import (
	"testing"

	"goboard/agent"
	"goboard/game"

	"github.com/stretchr/testify/require"
)

func TestNewMonteCarlo(t *testing.T) {
	t.Run("panics without episodes", func(t *testing.T) {
		require.Panics(t, func() { NewMonteCarlo(2) }, "Should panic when no episodes are configured")
	})

	t.Run("panics without goroutines", func(t *testing.T) {
		require.Panics(t, func() { NewMonteCarlo(0, WithEpisodes(10)) })
	})

	t.Run("ignores non-positive options", func(t *testing.T) {
		m := NewMonteCarlo(1, WithEpisodes(10), WithEpisodes(-1), WithCutoff(0))
		require.Equal(t, 10, m.episodes)
		require.Equal(t, 0, m.cutoff)
	})
}

func TestPolicy(t *testing.T) {
	t.Run("covers every legal action with a win rate", func(t *testing.T) {
		state := game.New(3)
		m := NewMonteCarlo(4, WithEpisodes(50), WithSeed(7))

		policy := m.Policy(state)

		require.Len(t, policy, state.NumActions(), "Every legal action should be visited")
		for action, v := range policy {
			require.GreaterOrEqual(t, v, 0.0, "action %d", action)
			require.LessOrEqual(t, v, 1.0, "action %d", action)
		}
	})

	t.Run("is independent of goroutine count", func(t *testing.T) {
		state := game.New(4)
		sequential := NewMonteCarlo(1, WithEpisodes(64), WithSeed(3), WithCutoff(20))
		parallel := NewMonteCarlo(8, WithEpisodes(64), WithSeed(3), WithCutoff(20))

		require.Equal(t, sequential.Policy(state), parallel.Policy(state))
	})

	t.Run("passing into a lost game never wins", func(t *testing.T) {
		// Black passed, white took the center, black took a corner and white
		// passed: a black pass now ends the game with white ahead on komi.
		state := game.New(3)
		for _, a := range []int{9, 4, 0, 9} {
			var err error
			state, _, err = state.Step(a)
			require.NoError(t, err)
		}
		require.Equal(t, game.Black, state.Turn())
		require.True(t, state.PrevPass())

		m := NewMonteCarlo(2, WithEpisodes(40), WithSeed(11))
		policy := m.Policy(state)

		require.Equal(t, Loss, policy[state.PassAction()])
		require.NotEqual(t, state.PassAction(), m.FindMove(state))
	})
}

func TestFindMoveIsDeterministic(t *testing.T) {
	state := game.New(5)
	m := NewMonteCarlo(4, WithEpisodes(52), WithSeed(42), WithCutoff(10))

	first := m.FindMove(state)
	require.Equal(t, first, m.FindMove(state))
	require.False(t, state.InvalidActions()[first])
}

func TestMonteCarloIsAnAgent(t *testing.T) {
	var a agent.Agent = NewMonteCarlo(1, WithEpisodes(10))
	action := a.SelectAction(game.New(2))

	require.GreaterOrEqual(t, action, 0)
	require.LessOrEqual(t, action, 4)
}

func TestRolloutAtCutoffUsesEvaluation(t *testing.T) {
	state := game.New(5)
	always := func(game.GameState, game.Color) float32 { return 1 }
	never := func(game.GameState, game.Color) float32 { return -1 }

	// A single step cannot end a fresh game, so cutoff 1 always evaluates.
	m1 := NewMonteCarlo(1, WithEpisodes(1), WithCutoff(1), WithEvaluationFn(always), WithPassProbability(0))
	m2 := NewMonteCarlo(1, WithEpisodes(1), WithCutoff(1), WithEvaluationFn(never), WithPassProbability(0))

	require.Equal(t, Win, m1.simulate(state, 0, 0))
	require.Equal(t, Loss, m2.simulate(state, 0, 0))
}
