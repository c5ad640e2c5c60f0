// Package statetest provides helper functions to create tests using Quoridor state.
package statetest

import (
	"fmt"

	. "github.com/janpfeifer/quoridorGo/internal/state"
)

// WallOnBoard represents a wall placed on the board.
type WallOnBoard struct {
	Orientation Orientation
	Anchor      Pos
	Owner       PlayerNum
}

// Layout describes a board to be built for tests. Zero values take the defaults: a 9x9 board,
// 10 walls per player and pawns on their starting cells.
type Layout struct {
	Height, Width, WallsPerPlayer int
	Pawns                         *[NumPlayers]Pos
	Walls                         []WallOnBoard
}

// BuildBoard from a layout. Walls are placed without checking their legality, and are taken
// from the owners' reserves.
func BuildBoard(layout Layout) (b *Board) {
	height, width, walls := layout.Height, layout.Width, layout.WallsPerPlayer
	if height == 0 {
		height = DefaultSize
	}
	if width == 0 {
		width = DefaultSize
	}
	if walls == 0 {
		walls = DefaultWallsPerPlayer
	}
	b = NewBoard(height, width, walls)
	if layout.Pawns != nil {
		b.PlacePawns(*layout.Pawns)
	}
	for _, w := range layout.Walls {
		b.PlaceWall(w.Owner, w.Orientation, w.Anchor)
	}
	return
}

// Pawns is a shortcut to build the Layout.Pawns field.
func Pawns(first, second Pos) *[NumPlayers]Pos {
	return &[NumPlayers]Pos{first, second}
}

// PrintBoard prints the board to stdout, useful when debugging tests.
func PrintBoard(b *Board) {
	fmt.Println(b)
}
