package game

import (
	"fmt"

	"github.com/chewxy/math32"
)

const (
	DefaultKomi    = 0.5
	DefaultHistory = 16
)

// Config holds the parameters fixed for the lifetime of a game.
type Config struct {
	Size    int     `json:"size"`
	Komi    float32 `json:"komi"`    // credited to white
	History int     `json:"history"` // boards kept for repetition checks
	// Clamp out-of-range actions onto the board, [0, N²-1], instead of rejecting them.
	ClampActions bool `json:"clamp_actions"`
}

type Option func(conf *Config)

func WithKomi(komi float32) Option {
	return func(conf *Config) {
		conf.Komi = komi
	}
}

func WithHistory(k int) Option {
	return func(conf *Config) {
		conf.History = k
	}
}

func WithActionClamping() Option {
	return func(conf *Config) {
		conf.ClampActions = true
	}
}

func NewConfig(size int, options ...Option) Config {
	conf := Config{ // Default values
		Size:    size,
		Komi:    DefaultKomi,
		History: DefaultHistory,
	}
	for _, option := range options {
		option(&conf)
	}
	return conf
}

func (conf Config) Validate() error {
	if conf.Size < 1 {
		return fmt.Errorf("board size must be positive, got %d", conf.Size)
	}
	if conf.History < 1 {
		return fmt.Errorf("history must keep at least one board, got %d", conf.History)
	}
	if math32.IsNaN(conf.Komi) || math32.IsInf(conf.Komi, 0) {
		return fmt.Errorf("komi must be finite, got %v", conf.Komi)
	}
	return nil
}

func (conf Config) NumActions() int { return conf.Size*conf.Size + 1 }
func (conf Config) PassAction() int { return conf.Size * conf.Size }
func (conf Config) MaxSteps() int   { return 2 * conf.Size * conf.Size }
