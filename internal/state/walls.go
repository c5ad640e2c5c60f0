package state

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Orientation of a wall.
type Orientation uint8

const (
	// Horizontal walls block the south edges of the anchor and of its east neighbor.
	Horizontal Orientation = iota

	// Vertical walls block the east edges of the anchor and of its south neighbor.
	Vertical
)

// Orientations in enumeration order.
var Orientations = [2]Orientation{Horizontal, Vertical}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return fmt.Sprintf("Orientation(%d)", o)
}

// Letter returns "H" or "V".
func (o Orientation) Letter() string {
	return o.String()[:1]
}

// Wall is a barrier spanning two cell edges. The Anchor is the top-left cell of the 2x2 block
// whose central crossing the wall goes through.
type Wall struct {
	Orientation Orientation
	Anchor      Pos
	Owner       PlayerNum

	// Placed is false while the wall is held in reserve, and for the candidates listed by LegalWalls.
	Placed bool
}

func (w Wall) String() string {
	if !w.Placed {
		return fmt.Sprintf("%s wall in reserve", w.Owner)
	}
	return fmt.Sprintf("%s wall at %s", w.Orientation, w.Anchor)
}

// segments returns the two cells whose boundary flag the wall sets.
func (w Wall) segments() [2]Pos {
	if w.Orientation == Horizontal {
		return [2]Pos{w.Anchor, w.Anchor.Step(East)}
	}
	return [2]Pos{w.Anchor, w.Anchor.Step(South)}
}

// ValidAnchor returns whether a wall can be anchored at pos: walls never run along the board edge.
func (b *Board) ValidAnchor(anchor Pos) bool {
	return anchor[0] >= 0 && anchor[0] < b.height-1 && anchor[1] >= 0 && anchor[1] < b.width-1
}

// WallsLeft returns how many walls the player still holds in reserve.
func (b *Board) WallsLeft(player PlayerNum) int {
	count := 0
	for _, w := range b.reserves[player] {
		if !w.Placed {
			count++
		}
	}
	return count
}

// Reserve returns a copy of the ordered list of walls of the player, both placed and unplaced.
func (b *Board) Reserve(player PlayerNum) []Wall {
	return append([]Wall(nil), b.reserves[player]...)
}

// PlacedWalls returns all walls on the board, first player's first, in placement order.
func (b *Board) PlacedWalls() []Wall {
	var walls []Wall
	for p := PlayerFirst; p < NumPlayers; p++ {
		for _, w := range b.reserves[p] {
			if w.Placed {
				walls = append(walls, w)
			}
		}
	}
	return walls
}

// PlaceWall takes the next unplaced wall from the player's reserve and places it, setting the
// mirrored boundary flags on both cells and the wall origin on the anchor.
//
// It DOES NOT CHECK legality (see CheckWall), but it panics if the anchor is off the valid range
// or the player has no walls left.
func (b *Board) PlaceWall(player PlayerNum, orientation Orientation, anchor Pos) {
	if !b.ValidAnchor(anchor) {
		exceptions.Panicf("PlaceWall: invalid anchor %s on a %dx%d board", anchor, b.height, b.width)
	}
	idx := -1
	for ii, w := range b.reserves[player] {
		if !w.Placed {
			idx = ii
			break
		}
	}
	if idx < 0 {
		exceptions.Panicf("PlaceWall: %s has no walls left", player)
	}
	w := &b.reserves[player][idx]
	w.Orientation = orientation
	w.Anchor = anchor
	w.Placed = true
	b.setWallFlags(*w)
}

func (b *Board) setWallFlags(w Wall) {
	b.cellPtr(w.Anchor).wallOrigin = true
	for _, pos := range w.segments() {
		if w.Orientation == Horizontal {
			b.cellPtr(pos).blocksSouth = true
		} else {
			b.cellPtr(pos).blocksEast = true
		}
	}
}

// wallConflict returns a non-nil error if the wall overlaps geometrically with walls already placed.
func (b *Board) wallConflict(orientation Orientation, anchor Pos) error {
	if !b.ValidAnchor(anchor) {
		return errors.Wrapf(ErrWallConflict, "anchor %s is off the valid range for a %dx%d board",
			anchor, b.height, b.width)
	}
	if b.CellAt(anchor).wallOrigin {
		return errors.Wrapf(ErrWallConflict, "crossing at %s already has a wall", anchor)
	}
	w := Wall{Orientation: orientation, Anchor: anchor}
	for _, pos := range w.segments() {
		cell := b.CellAt(pos)
		if (orientation == Horizontal && cell.blocksSouth) || (orientation == Vertical && cell.blocksEast) {
			return errors.Wrapf(ErrWallConflict, "%s wall at %s overlaps an existing wall at %s",
				orientation, anchor, pos)
		}
	}
	return nil
}

// blocksAllPaths returns whether, with the wall placed, some player could no longer reach its goal row.
// It works on a clone, the board itself is not changed.
func (b *Board) blocksAllPaths(orientation Orientation, anchor Pos) (blocked PlayerNum, ok bool) {
	hypothetical := b.Clone()
	hypothetical.setWallFlags(Wall{Orientation: orientation, Anchor: anchor, Placed: true})
	for p := PlayerFirst; p < NumPlayers; p++ {
		if _, reachable := hypothetical.DistanceToGoal(p); !reachable {
			return p, true
		}
	}
	return PlayerInvalid, false
}

// CheckWall returns nil if the player can place a wall with the given orientation and anchor.
// Otherwise it returns an error wrapping one of ErrNoWallsRemaining, ErrWallConflict or
// ErrWouldBlockAllPaths.
func (b *Board) CheckWall(player PlayerNum, orientation Orientation, anchor Pos) error {
	if b.WallsLeft(player) == 0 {
		return errors.Wrapf(ErrNoWallsRemaining, "%s placed all its %d walls", player, len(b.reserves[player]))
	}
	if err := b.wallConflict(orientation, anchor); err != nil {
		return err
	}
	if blocked, ok := b.blocksAllPaths(orientation, anchor); ok {
		return errors.Wrapf(ErrWouldBlockAllPaths, "%s wall at %s leaves %s without a path to row %d",
			orientation, anchor, blocked, b.GoalRow(blocked))
	}
	return nil
}

// IsLegalWall returns whether a wall with the given orientation and anchor passes both the
// geometric check and the connectivity check. The reserve of the player is not considered.
func (b *Board) IsLegalWall(orientation Orientation, anchor Pos) bool {
	if b.wallConflict(orientation, anchor) != nil {
		return false
	}
	_, blocked := b.blocksAllPaths(orientation, anchor)
	return !blocked
}

// LegalWalls lists every wall the player can place now: all horizontal anchors in row-major
// order, followed by all vertical ones. It is empty if the player has no walls left.
// The returned walls are candidates, so Placed is false.
func (b *Board) LegalWalls(player PlayerNum) []Wall {
	if b.WallsLeft(player) == 0 {
		return nil
	}
	walls := make([]Wall, 0, 2*int(b.height-1)*int(b.width-1))
	for _, orientation := range Orientations {
		for row := int8(0); row < b.height-1; row++ {
			for col := int8(0); col < b.width-1; col++ {
				anchor := Pos{row, col}
				if b.IsLegalWall(orientation, anchor) {
					walls = append(walls, Wall{Orientation: orientation, Anchor: anchor, Owner: player})
				}
			}
		}
	}
	return walls
}
