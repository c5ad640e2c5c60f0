package state_test

import (
	"testing"

	. "github.com/janpfeifer/quoridorGo/internal/state"
	. "github.com/janpfeifer/quoridorGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestDistancesEmptyBoard(t *testing.T) {
	b := NewDefaultBoard()
	toTop := b.DistancesTo(0)
	toBottom := b.DistancesTo(8)
	for row := int8(0); row < 9; row++ {
		for col := int8(0); col < 9; col++ {
			d, ok := toTop.At(Pos{row, col})
			assert.True(t, ok)
			assert.Equal(t, int(row), d)
			d, ok = toBottom.At(Pos{row, col})
			assert.True(t, ok)
			assert.Equal(t, 8-int(row), d)
		}
	}
	d, ok := b.DistanceToGoal(PlayerFirst)
	assert.True(t, ok)
	assert.Equal(t, 8, d)

	// Off-board positions don't wrap around to another row.
	assert.Panics(t, func() { toTop.At(Pos{1, -1}) })
	assert.Panics(t, func() { toTop.At(Pos{0, 9}) })
	assert.Panics(t, func() { toTop.At(Pos{9, 0}) })
}

func TestDistancesIgnorePawns(t *testing.T) {
	// Pawns in the way make no difference to the distance field.
	b := BuildBoard(Layout{Pawns: Pawns(Pos{2, 4}, Pos{1, 4})})
	d, _ := b.DistancesTo(0).At(Pos{2, 4})
	assert.Equal(t, 2, d)
}

func TestDistancesAroundWalls(t *testing.T) {
	b := BuildBoard(Layout{Walls: []WallOnBoard{{Horizontal, Pos{7, 4}, PlayerSecond}}})
	m := b.PlayerDistances(PlayerFirst)
	t.Logf("Distances:\n%s", m)
	d, _ := m.At(Pos{8, 4})
	assert.Equal(t, 9, d)
	d, _ = m.At(Pos{8, 5})
	assert.Equal(t, 9, d)
	d, _ = m.At(Pos{8, 3})
	assert.Equal(t, 8, d)
	d, _ = m.At(Pos{7, 4})
	assert.Equal(t, 7, d)
}

func TestDistancesUnreachable(t *testing.T) {
	// Seal rows 0..1 from the rest of a 4x4 board.
	b := BuildBoard(Layout{
		Height: 4, Width: 4,
		Walls: []WallOnBoard{
			{Horizontal, Pos{1, 0}, PlayerFirst},
			{Horizontal, Pos{1, 2}, PlayerFirst},
		},
	})
	m := b.DistancesTo(3)
	assert.False(t, m.Reachable(Pos{0, 0}))
	d, ok := m.At(Pos{1, 3})
	assert.False(t, ok)
	assert.Equal(t, Unreachable, d)
	assert.True(t, m.Reachable(Pos{2, 1}))
	_, ok = b.DistanceToGoal(PlayerSecond)
	assert.False(t, ok)
	_, ok = b.DistanceToGoal(PlayerFirst)
	assert.False(t, ok)
	assert.Contains(t, m.String(), " -")
}
