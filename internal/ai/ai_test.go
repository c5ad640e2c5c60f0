package ai_test

import (
	"testing"

	. "github.com/janpfeifer/quoridorGo/internal/ai"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	. "github.com/janpfeifer/quoridorGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestScorers(t *testing.T) {
	b := NewDefaultBoard()
	assert.Equal(t, float32(8), DistanceOnly{}.Score(b, PlayerFirst))
	assert.Equal(t, float32(0), DeltaRanking{}.Score(b, PlayerFirst))

	b = b.ActFor(PlayerFirst, MoveAction(Pos{7, 4}))
	assert.Equal(t, float32(7), DistanceOnly{}.Score(b, PlayerFirst))
	assert.Equal(t, float32(-1), DeltaRanking{}.Score(b, PlayerFirst))
	assert.Equal(t, float32(1), DeltaRanking{}.Score(b, PlayerSecond))

	assert.False(t, DistanceOnly{}.UseWalls())
	assert.True(t, DeltaRanking{}.UseWalls())
	assert.Equal(t, "delta", DeltaRanking{}.String())
}

func TestUnreachable(t *testing.T) {
	b := BuildBoard(Layout{
		Height: 4, Width: 4,
		Walls: []WallOnBoard{
			{Horizontal, Pos{1, 0}, PlayerFirst},
			{Horizontal, Pos{1, 2}, PlayerFirst},
		},
	})
	assert.Equal(t, 16, UnreachableDistance(b))
	assert.Equal(t, 16, Distance(b, PlayerFirst))
	assert.Equal(t, float32(16), DistanceOnly{}.Score(b, PlayerSecond))
}

func TestIsEndGameAndScore(t *testing.T) {
	b := BuildBoard(Layout{Pawns: Pawns(Pos{0, 3}, Pos{5, 5})})
	isEnd, score := IsEndGameAndScore(b, PlayerFirst)
	assert.True(t, isEnd)
	assert.Equal(t, WinGameScore, score)
	isEnd, _ = IsEndGameAndScore(b, PlayerSecond)
	assert.False(t, isEnd)
}
