// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// BOARD_SIZE defines the default board edge length.
const BOARD_SIZE = 9

// KOMI defines the default points credited to white.
const KOMI = 0.5

// HISTORY defines the default repetition window.
const HISTORY = 16

// GAMES defines the default number of self-play games per batch.
const GAMES = 64

// EPISODES defines the number of episodes for Monte-Carlo search.
const EPISODES = 150

// WITH_CUTOFF defines the rollout cutoff for Monte-Carlo search.
const WITH_CUTOFF = 100

// MAX_TURNS guards game loops; it exceeds 2·N² for every board up to 19x19.
const MAX_TURNS = 1000
