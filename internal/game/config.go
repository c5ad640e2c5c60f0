package game

import (
	"fmt"

	"github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/pkg/errors"
)

// MaxBoardSize is the largest height or width accepted by Config.Validate.
const MaxBoardSize = state.MaxSize

// Config of a match.
type Config struct {
	Height, Width  int
	WallsPerPlayer int

	// MaxMoves is the number of actions (counting both players) after which the match is a draw.
	// If 0 there is no limit.
	MaxMoves int
}

// DefaultConfig returns the standard 9x9 board, with 10 walls per player and no move limit.
func DefaultConfig() Config {
	return Config{
		Height:         state.DefaultSize,
		Width:          state.DefaultSize,
		WallsPerPlayer: state.DefaultWallsPerPlayer,
	}
}

// Validate returns an error if the configuration can't be played.
func (cfg Config) Validate() error {
	if cfg.Height < state.MinSize || cfg.Width < state.MinSize {
		return errors.Errorf("board %dx%d is too small, it must be at least %dx%d",
			cfg.Height, cfg.Width, state.MinSize, state.MinSize)
	}
	if cfg.Height > MaxBoardSize || cfg.Width > MaxBoardSize {
		return errors.Errorf("board %dx%d is too large, at most %dx%d is supported",
			cfg.Height, cfg.Width, MaxBoardSize, MaxBoardSize)
	}
	if cfg.WallsPerPlayer < 0 {
		return errors.Errorf("invalid number of walls per player %d", cfg.WallsPerPlayer)
	}
	if cfg.MaxMoves < 0 {
		return errors.Errorf("invalid max moves %d, use 0 for no limit", cfg.MaxMoves)
	}
	return nil
}

func (cfg Config) String() string {
	s := fmt.Sprintf("%dx%d board, %d walls per player", cfg.Height, cfg.Width, cfg.WallsPerPlayer)
	if cfg.MaxMoves > 0 {
		s += fmt.Sprintf(", draw after %d moves", cfg.MaxMoves)
	}
	return s
}
