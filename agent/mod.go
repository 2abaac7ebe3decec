// Package agent holds the players that pick actions for a game.GameState.
package agent

import "goboard/game"

// Agent picks the next action for the player to move. Agents are called for one
// state at a time and need not be safe for concurrent use.
type Agent interface {
	SelectAction(state game.GameState) int
}
