package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"goboard/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func step(t *testing.T, gs game.GameState, actions ...int) game.GameState {
	t.Helper()
	for _, a := range actions {
		var err error
		gs, _, err = gs.Step(a)
		require.NoError(t, err)
	}
	return gs
}

func TestEndReasonOf(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		require.Equal(t, Running, EndReasonOf(game.New(3)))
	})

	t.Run("two passes", func(t *testing.T) {
		gs := step(t, game.New(3), 9, 9)
		require.Equal(t, TwoPasses, EndReasonOf(gs))
	})

	t.Run("illegal", func(t *testing.T) {
		gs := step(t, game.New(3), 0, 0)
		require.Equal(t, Illegal, EndReasonOf(gs))
	})

	t.Run("move cap", func(t *testing.T) {
		gs := step(t, game.New(2), 0, 1, 2, 3, 0, 4, 2, 3)
		require.True(t, gs.Done())
		require.False(t, gs.Invalid())
		require.Equal(t, MoveCap, EndReasonOf(gs))
	})
}

func TestGameMetricFinish(t *testing.T) {
	m := NewGameMetric(3)
	gs := step(t, game.New(3), 9, 9)
	m.Finish(gs, 1)

	require.NotEqual(t, uuid.Nil, m.ID)
	require.Equal(t, 3, m.Size)
	require.Equal(t, 2, m.Moves)
	require.Equal(t, game.White, m.Winner)
	require.Equal(t, float32(1), m.Reward)
	require.Equal(t, TwoPasses, m.EndReason)
	require.False(t, m.EndTime.Before(m.StartTime))
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AddStep(j%10 == 0, j == 99)
			}
			c.AddGame()
		}()
	}
	wg.Wait()

	counts := c.Complete()
	require.Equal(t, 800, counts.Steps)
	require.Equal(t, 80, counts.Passes)
	require.Equal(t, 8, counts.Illegal)
	require.Equal(t, 8, counts.Games)

	require.Equal(t, Counts{}, NewDummyCollector().Complete())
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Equal(t, Summary{}, Summarize(nil))
	})

	t.Run("single game has no spread", func(t *testing.T) {
		s := Summarize([]GameMetric{{Moves: 7, Winner: game.Black, EndReason: MoveCap}})
		require.Equal(t, Summary{Games: 1, MeanMoves: 7, BlackWinRate: 1, MoveCap: 1}, s)
	})

	t.Run("statistics", func(t *testing.T) {
		records := []GameMetric{
			{Moves: 2, Winner: game.White, EndReason: TwoPasses},
			{Moves: 4, Winner: game.Black, EndReason: Illegal},
			{Moves: 6, Winner: game.Black, EndReason: TwoPasses},
			{Moves: 8, Winner: game.White, EndReason: MoveCap},
		}
		s := Summarize(records)

		require.Equal(t, 4, s.Games)
		require.InDelta(t, 5.0, s.MeanMoves, 1e-9)
		require.InDelta(t, 2.581988897, s.StdMoves, 1e-6, "Should use the unbiased estimate")
		require.InDelta(t, 0.5, s.BlackWinRate, 1e-9)
		require.Equal(t, 1, s.Illegal)
		require.Equal(t, 2, s.TwoPasses)
		require.Equal(t, 1, s.MoveCap)
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "selfplay")
	require.NoError(t, err)

	m := NewGameMetric(3)
	m.Finish(step(t, game.New(3), 9, 9), 1)
	require.NoError(t, w.WriteGameRecords([]GameMetric{m}))
	require.NoError(t, w.WriteSummary(Summarize([]GameMetric{m})))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, m.ID.String(), rows[1][0])
	require.Equal(t, "white", rows[1][3])
	require.Equal(t, "two_passes", rows[1][5])

	_, err = os.Stat(filepath.Join(w.Dir(), "summary.csv"))
	require.NoError(t, err)
}
