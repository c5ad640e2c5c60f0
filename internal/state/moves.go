package state

import (
	"github.com/janpfeifer/quoridorGo/internal/generics"
	"github.com/pkg/errors"
)

// LegalPawnDestinations returns the cells the pawn at `from` may move to this turn.
//
// For each open orthogonal neighbor: an empty neighbor is a single step; a neighbor occupied by
// another pawn is jumped over in straight line if the cell behind it is on the board, empty and
// not walled off. Otherwise, the two cells beside the jumped pawn (perpendicular to the jump) are
// offered as diagonal side-steps, each only if on the board, empty and not walled off from it.
//
// Destinations are listed following Directions (North, East, South, West), side-steps left
// first. The result is empty if the pawn is boxed in.
func (b *Board) LegalPawnDestinations(from Pos) []Pos {
	destinations := make([]Pos, 0, NumDirections+1)
	for _, dir := range Directions {
		if !b.Open(from, dir) {
			continue
		}
		neighbor := from.Step(dir)
		if b.OccupantAt(neighbor) == PlayerInvalid {
			destinations = append(destinations, neighbor)
			continue
		}

		// Jump over the pawn in neighbor.
		if b.Open(neighbor, dir) {
			behind := neighbor.Step(dir)
			if b.OccupantAt(behind) == PlayerInvalid {
				destinations = append(destinations, behind)
				continue
			}
		}

		// Straight jump unavailable: side-steps.
		for _, sideDir := range dir.Perpendiculars() {
			if !b.Open(neighbor, sideDir) {
				continue
			}
			side := neighbor.Step(sideDir)
			if side != from && b.OccupantAt(side) == PlayerInvalid {
				destinations = append(destinations, side)
			}
		}
	}
	return destinations
}

// PawnDestinationsSet is like LegalPawnDestinations, but returns a set.
func (b *Board) PawnDestinationsSet(from Pos) generics.Set[Pos] {
	return generics.SetWith(b.LegalPawnDestinations(from)...)
}

// CheckPawnMove returns nil if the player's pawn can move to `to`, or an error wrapping ErrIllegalMove.
func (b *Board) CheckPawnMove(player PlayerNum, to Pos) error {
	from := b.PawnPos(player)
	if !b.OnBoard(to) {
		return errors.Wrapf(ErrIllegalMove, "%s is off the %dx%d board", to, b.height, b.width)
	}
	for _, dest := range b.LegalPawnDestinations(from) {
		if dest == to {
			return nil
		}
	}
	return errors.Wrapf(ErrIllegalMove, "%s cannot move from %s to %s", player, from, to)
}

// CanMovePawn returns whether the player's pawn can move to `to`.
func (b *Board) CanMovePawn(player PlayerNum, to Pos) bool {
	return b.CheckPawnMove(player, to) == nil
}
