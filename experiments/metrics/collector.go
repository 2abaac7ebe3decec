package metrics

import (
	"sync/atomic"
	"time"

	"goboard/game"

	"github.com/google/uuid"
)

// EndReason records why a game stopped.
type EndReason string

const (
	Running   EndReason = "running" // stopped by the engine's turn guard
	Illegal   EndReason = "illegal"
	TwoPasses EndReason = "two_passes"
	MoveCap   EndReason = "move_cap"
)

// EndReasonOf classifies a finished state.
func EndReasonOf(state game.GameState) EndReason {
	switch {
	case !state.Done():
		return Running
	case state.Invalid():
		return Illegal
	case state.MoveCount() >= state.MaxSteps():
		return MoveCap
	default:
		return TwoPasses
	}
}

type GameMetric struct {
	ID        uuid.UUID
	Size      int
	Moves     int
	Winner    game.Color
	Reward    float32 // reward of the final step, for the player who made it
	EndReason EndReason
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// NewGameMetric opens the record of a game starting now.
func NewGameMetric(size int) GameMetric {
	return GameMetric{
		ID:        uuid.New(),
		Size:      size,
		StartTime: time.Now(),
	}
}

// Finish fills in the outcome from the last state of the game.
func (m *GameMetric) Finish(final game.GameState, reward float32) {
	m.Moves = final.MoveCount()
	m.Winner = final.Winner()
	m.Reward = reward
	m.EndReason = EndReasonOf(final)
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
}

// Counts aggregates the steps of every game a Collector saw.
type Counts struct {
	Steps    int
	Passes   int
	Illegal  int
	Games    int
	Duration time.Duration
}

// Collector is safe for concurrent use.
type Collector interface {
	Start()
	AddStep(pass, invalid bool)
	AddGame()
	Complete() Counts
}

type collector struct {
	startTime time.Time
	steps     atomic.Int64
	passes    atomic.Int64
	illegal   atomic.Int64
	games     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddStep(pass, invalid bool) {
	m.steps.Add(1)
	if pass {
		m.passes.Add(1)
	}
	if invalid {
		m.illegal.Add(1)
	}
}

func (m *collector) AddGame() {
	m.games.Add(1)
}

func (m *collector) Complete() Counts {
	return Counts{
		Steps:    int(m.steps.Load()),
		Passes:   int(m.passes.Load()),
		Illegal:  int(m.illegal.Load()),
		Games:    int(m.games.Load()),
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                     {}
func (m *dummyCollector) AddStep(pass, invalid bool) {}
func (m *dummyCollector) AddGame()                   {}
func (m *dummyCollector) Complete() Counts           { return Counts{} }
