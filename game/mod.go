// Package game implements the rules of Go as a pure state transition:
// GameState.Step consumes a state and an action and returns a new state and a
// reward, never touching the state it was called on.
package game

import "github.com/pkg/errors"

// Color is the content of a board cell, and also names the player to move.
type Color int8

const (
	White Color = -1
	Empty Color = 0
	Black Color = 1
)

func (c Color) Opponent() Color { return -c }

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// ErrInvalidAction is returned for action values outside [0, N²].
var ErrInvalidAction = errors.New("invalid action")

// Evaluates a non-terminal state from the perspective of a color. Positive
// values favor that color.
type Evaluate func(gs GameState, perspective Color) float32

// EvaluateScore is the area score of the current board.
func EvaluateScore(gs GameState, perspective Color) float32 {
	return gs.FinalScore(gs.board, perspective)
}
