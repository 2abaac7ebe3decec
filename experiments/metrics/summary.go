package metrics

import (
	"goboard/game"

	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Games        int
	MeanMoves    float64
	StdMoves     float64
	BlackWinRate float64
	Illegal      int
	TwoPasses    int
	MoveCap      int
}

// Summarize reduces game records to length and outcome statistics. The
// standard deviation is the unbiased estimate, 0 for fewer than two games.
func Summarize(records []GameMetric) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	moves := make([]float64, len(records))
	blackWins := make([]float64, len(records))
	s := Summary{Games: len(records)}
	for i, r := range records {
		moves[i] = float64(r.Moves)
		if r.Winner == game.Black {
			blackWins[i] = 1
		}
		switch r.EndReason {
		case Illegal:
			s.Illegal++
		case TwoPasses:
			s.TwoPasses++
		case MoveCap:
			s.MoveCap++
		}
	}

	if len(records) > 1 {
		s.MeanMoves, s.StdMoves = stat.MeanStdDev(moves, nil)
	} else {
		s.MeanMoves = moves[0]
	}
	s.BlackWinRate = stat.Mean(blackWins, nil)
	return s
}
