package state_test

import (
	"testing"

	. "github.com/janpfeifer/quoridorGo/internal/state"
	. "github.com/janpfeifer/quoridorGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovesFromStart(t *testing.T) {
	b := NewDefaultBoard()
	got := b.LegalPawnDestinations(Pos{8, 4})
	// South is off-board.
	assert.Equal(t, []Pos{{7, 4}, {8, 5}, {8, 3}}, got)
	assert.ElementsMatch(t, []Pos{{7, 4}, {8, 3}, {8, 5}}, got)
	assert.True(t, b.PawnDestinationsSet(Pos{8, 4}).Has(Pos{8, 3}))
}

func TestMovesBlockedByWall(t *testing.T) {
	b := BuildBoard(Layout{Walls: []WallOnBoard{{Horizontal, Pos{7, 4}, PlayerSecond}}})
	assert.ElementsMatch(t, []Pos{{8, 3}, {8, 5}}, b.LegalPawnDestinations(Pos{8, 4}))
	err := b.CheckPawnMove(PlayerFirst, Pos{7, 4})
	assert.True(t, errors.Is(err, ErrIllegalMove))
}

func TestStraightJump(t *testing.T) {
	b := BuildBoard(Layout{Pawns: Pawns(Pos{4, 4}, Pos{3, 4})})
	got := b.LegalPawnDestinations(Pos{4, 4})
	assert.Equal(t, []Pos{{2, 4}, {4, 5}, {5, 4}, {4, 3}}, got)
	assert.NotContains(t, got, Pos{3, 4})

	// Side-steps are never offered when the straight jump is available.
	assert.NotContains(t, got, Pos{3, 3})
	assert.NotContains(t, got, Pos{3, 5})

	// The pawn being jumped can jump back the other way.
	assert.Contains(t, b.LegalPawnDestinations(Pos{3, 4}), Pos{5, 4})
}

func TestSideStepWhenJumpBlockedByWall(t *testing.T) {
	// Horizontal wall at (2, 3) blocks the (2,4)<->(3,4) edge.
	b := BuildBoard(Layout{
		Pawns: Pawns(Pos{4, 4}, Pos{3, 4}),
		Walls: []WallOnBoard{{Horizontal, Pos{2, 3}, PlayerSecond}},
	})
	got := b.LegalPawnDestinations(Pos{4, 4})
	assert.Equal(t, []Pos{{3, 3}, {3, 5}, {4, 5}, {5, 4}, {4, 3}}, got)
	assert.NotContains(t, got, Pos{2, 4})
	assert.True(t, b.CanMovePawn(PlayerFirst, Pos{3, 5}))
	assert.False(t, b.CanMovePawn(PlayerFirst, Pos{2, 4}))

	// A vertical wall east of (3, 4) removes the right side-step only.
	b.PlaceWall(PlayerFirst, Vertical, Pos{2, 4})
	got = b.LegalPawnDestinations(Pos{4, 4})
	assert.Contains(t, got, Pos{3, 3})
	assert.NotContains(t, got, Pos{3, 5})
}

func TestSideStepAtBoardEdge(t *testing.T) {
	b := BuildBoard(Layout{Pawns: Pawns(Pos{1, 4}, Pos{0, 4})})
	got := b.LegalPawnDestinations(Pos{1, 4})
	assert.ElementsMatch(t, []Pos{{0, 3}, {0, 5}, {1, 5}, {2, 4}, {1, 3}}, got)

	// In the corner only one side-step is on the board.
	b = BuildBoard(Layout{Pawns: Pawns(Pos{0, 1}, Pos{0, 0})})
	got = b.LegalPawnDestinations(Pos{0, 1})
	assert.ElementsMatch(t, []Pos{{1, 0}, {0, 2}, {1, 1}}, got)
}

func TestBoxedIn(t *testing.T) {
	// Pawn in the corner (0,0) walled on the south and the east.
	b := BuildBoard(Layout{
		Height: 3, Width: 3,
		Pawns: Pawns(Pos{2, 2}, Pos{0, 0}),
		Walls: []WallOnBoard{
			{Horizontal, Pos{0, 0}, PlayerFirst},
			{Vertical, Pos{1, 0}, PlayerFirst},
		},
	})
	// (0,0) can still go east: only the south edge is blocked.
	assert.Equal(t, []Pos{{0, 1}}, b.LegalPawnDestinations(Pos{0, 0}))

	// The opponent in (0,1) can't be jumped (wall behind it) nor side-stepped (wall south,
	// board edge north).
	b = BuildBoard(Layout{
		Height: 3, Width: 4,
		Pawns: Pawns(Pos{0, 1}, Pos{0, 0}),
		Walls: []WallOnBoard{
			{Horizontal, Pos{0, 0}, PlayerFirst},
			{Vertical, Pos{0, 1}, PlayerSecond},
		},
	})
	assert.Empty(t, b.LegalPawnDestinations(Pos{0, 0}))
	assert.True(t, b.HasValidAction(PlayerSecond), "walls in reserve can still be placed")
}

// TestNoSelfDestination places the opponent around every cell and checks no pawn is ever
// offered its own cell, nor the same destination twice.
func TestNoSelfDestination(t *testing.T) {
	base := BuildBoard(Layout{Walls: []WallOnBoard{
		{Horizontal, Pos{3, 3}, PlayerFirst},
		{Vertical, Pos{4, 5}, PlayerFirst},
		{Horizontal, Pos{0, 0}, PlayerSecond},
		{Vertical, Pos{6, 1}, PlayerSecond},
	}})
	for row := int8(0); row < 9; row++ {
		for col := int8(0); col < 9; col++ {
			from := Pos{row, col}
			for _, dir := range Directions {
				opponentPos := from.Step(dir)
				if !base.OnBoard(opponentPos) {
					continue
				}
				b := base.Clone()
				b.PlacePawns([NumPlayers]Pos{from, opponentPos})
				got := b.LegalPawnDestinations(from)
				assert.NotContains(t, got, from)
				assert.NotContains(t, got, opponentPos)
				require.Len(t, b.PawnDestinationsSet(from), len(got), "duplicate destinations from %s: %v", from, got)
				for _, dest := range got {
					assert.True(t, b.OnBoard(dest))
				}
			}
		}
	}
}
