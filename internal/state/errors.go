package state

import "github.com/pkg/errors"

// Errors returned, wrapped with more context, for illegal player input. Use errors.Is to test for them.
var (
	ErrIllegalMove        = errors.New("illegal pawn move")
	ErrWallConflict       = errors.New("wall conflicts with an existing wall")
	ErrWouldBlockAllPaths = errors.New("wall would block all paths to a goal")
	ErrNoWallsRemaining   = errors.New("no walls remaining")
	ErrGameIsOver         = errors.New("game is over")
	ErrOutOfTurn          = errors.New("not this player's turn")
)
