package state

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// ActionKind is either a pawn move or a wall placement.
type ActionKind uint8

const (
	// SkipKind is only used by SkipAction.
	SkipKind ActionKind = iota
	PawnMove
	WallPlacement
)

// Action is a pawn move to Target, or the placement of a wall with the given Orientation
// anchored at Target.
type Action struct {
	Kind        ActionKind
	Target      Pos
	Orientation Orientation
}

// SkipAction is returned by searchers when the player has no legal action at all.
var SkipAction = Action{Kind: SkipKind}

// MoveAction creates a pawn move action.
func MoveAction(to Pos) Action {
	return Action{Kind: PawnMove, Target: to}
}

// WallAction creates a wall placement action.
func WallAction(orientation Orientation, anchor Pos) Action {
	return Action{Kind: WallPlacement, Target: anchor, Orientation: orientation}
}

// IsSkipAction returns whether a is the SkipAction.
func (a Action) IsSkipAction() bool {
	return a.Kind == SkipKind
}

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a.Kind {
	case PawnMove:
		return fmt.Sprintf("Move to %s", a.Target)
	case WallPlacement:
		return fmt.Sprintf("%s wall at %s", a.Orientation, a.Target)
	}
	return "Pass (no action)"
}

// Equal compares whether two actions are the same. The orientation of pawn moves is ignored.
func (a Action) Equal(a2 Action) bool {
	if a.Kind != a2.Kind || a.Target != a2.Target {
		return false
	}
	return a.Kind != WallPlacement || a.Orientation == a2.Orientation
}

// ValidActions returns the pawn moves of the player followed by its legal wall placements.
// The list is empty if the player is boxed in and has no walls to place.
func (b *Board) ValidActions(player PlayerNum) []Action {
	destinations := b.LegalPawnDestinations(b.PawnPos(player))
	walls := b.LegalWalls(player)
	actions := make([]Action, 0, len(destinations)+len(walls))
	for _, dest := range destinations {
		actions = append(actions, MoveAction(dest))
	}
	for _, w := range walls {
		actions = append(actions, WallAction(w.Orientation, w.Anchor))
	}
	return actions
}

// HasValidAction returns whether the player can do anything at all. It is cheaper than
// len(ValidActions(player)) > 0.
func (b *Board) HasValidAction(player PlayerNum) bool {
	if len(b.LegalPawnDestinations(b.PawnPos(player))) > 0 {
		return true
	}
	if b.WallsLeft(player) == 0 {
		return false
	}
	for _, orientation := range Orientations {
		for row := int8(0); row < b.height-1; row++ {
			for col := int8(0); col < b.width-1; col++ {
				if b.IsLegalWall(orientation, Pos{row, col}) {
					return true
				}
			}
		}
	}
	return false
}

// CheckAction returns nil if the player can take the action, or the error describing why not.
func (b *Board) CheckAction(player PlayerNum, action Action) error {
	switch action.Kind {
	case PawnMove:
		return b.CheckPawnMove(player, action.Target)
	case WallPlacement:
		return b.CheckWall(player, action.Orientation, action.Target)
	}
	return errors.Wrapf(ErrIllegalMove, "%s is not a playable action", action)
}

// Apply the action for the given player in place. It DOES NOT CHECK that the action is legal.
func (b *Board) Apply(player PlayerNum, action Action) {
	switch action.Kind {
	case PawnMove:
		b.MovePawn(player, action.Target)
	case WallPlacement:
		b.PlaceWall(player, action.Orientation, action.Target)
	case SkipKind:
		// Nothing to do.
	default:
		exceptions.Panicf("unknown action kind %d", action.Kind)
	}
}

// ActFor returns a clone of the board with the action applied for the given player.
// Turn information (NextPlayer, MoveNumber) is not changed.
func (b *Board) ActFor(player PlayerNum, action Action) *Board {
	newB := b.Clone()
	newB.Apply(player, action)
	return newB
}

// Act takes the given action for b.NextPlayer and returns a new board, with the turn passed to
// the opponent. The original board is not changed.
//
// It DOES NOT CHECK that the action is valid, and leaves that to the caller (see CheckAction).
func (b *Board) Act(action Action) *Board {
	newB := b.ActFor(b.NextPlayer, action)
	newB.NextPlayer = newB.NextPlayer.Opponent()
	newB.MoveNumber++
	return newB
}
