package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, rows ...[]Color) Board {
	t.Helper()
	b, err := BoardFromRows(rows)
	require.NoError(t, err)
	return b
}

func TestCountEyes(t *testing.T) {
	t.Run("corner needs only two real neighbors", func(t *testing.T) {
		b := mustBoard(t,
			[]Color{Empty, Black, Empty},
			[]Color{Black, Empty, Empty},
			[]Color{Empty, Empty, White},
		)

		require.Equal(t, 1, CountEyes(b, Black))
		require.Equal(t, 0, CountEyes(b, White))
	})

	t.Run("edge needs three real neighbors", func(t *testing.T) {
		b := mustBoard(t,
			[]Color{Black, Empty, Black},
			[]Color{Empty, Black, Empty},
			[]Color{Empty, Empty, Empty},
		)

		require.Equal(t, 1, CountEyes(b, Black), "Only the top edge point is surrounded")
	})

	t.Run("center needs four real neighbors", func(t *testing.T) {
		b := mustBoard(t,
			[]Color{Black, Black, Black},
			[]Color{Black, Empty, Black},
			[]Color{Black, Black, Black},
		)

		require.Equal(t, 1, CountEyes(b, Black))
	})

	t.Run("stones are never eyes", func(t *testing.T) {
		b := mustBoard(t,
			[]Color{Black, Black},
			[]Color{Black, Black},
		)

		require.Equal(t, 0, CountEyes(b, Black))
	})

	t.Run("empty board has no eyes", func(t *testing.T) {
		require.Equal(t, 0, CountEyes(NewBoard(5), Black))
		require.Equal(t, 0, CountEyes(NewBoard(5), White))
	})
}

func TestScore(t *testing.T) {
	b := mustBoard(t,
		[]Color{Empty, Black, Empty},
		[]Color{Black, Empty, Empty},
		[]Color{Empty, Empty, White},
	)

	require.InDelta(t, 1.5, Score(b, Black, 0.5), 1e-6, "Two stones and an eye against one stone, minus komi")
	require.InDelta(t, -1.5, Score(b, White, 0.5), 1e-6, "Komi is credited to white")

	gs := New(3)
	require.InDelta(t, -0.5, gs.FinalScore(NewBoard(3), Black), 1e-6)
	require.InDelta(t, 0.5, gs.Score(White), 1e-6)
	require.InDelta(t, 0.5, EvaluateScore(gs, White), 1e-6)
}
