package searchers

import (
	"testing"

	. "github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSearcher always picks the first pawn move, and scores candidates by their index.
type fixedSearcher struct{}

func (fixedSearcher) Candidates(board *Board) []Action {
	var actions []Action
	for _, dest := range board.LegalPawnDestinations(board.PawnPos(board.NextPlayer)) {
		actions = append(actions, MoveAction(dest))
	}
	return actions
}

func (f fixedSearcher) Search(board *Board) (action Action, nextBoard *Board, score float32, actionsScores []float32) {
	actions := f.Candidates(board)
	actionsScores = make([]float32, len(actions))
	for ii := range actionsScores {
		actionsScores[ii] = float32(ii)
	}
	return actions[0], board.Act(actions[0]), 0, actionsScores
}

func TestSoftmax(t *testing.T) {
	probs := softmax([]float32{1, 1, 1, 1})
	assert.InDeltaSlice(t, []float32{0.25, 0.25, 0.25, 0.25}, probs, 1e-6)
	probs = softmax([]float32{-1000, 0})
	assert.InDelta(t, float32(1), probs[1], 1e-6)

	assert.Equal(t, 0, sample([]float32{0.5, 0.5}, 0.2))
	assert.Equal(t, 1, sample([]float32{0.5, 0.5}, 0.7))
	assert.Equal(t, 1, sample([]float32{0.5, 0.5}, 0.99999999))
}

func TestRandomizedSearcher(t *testing.T) {
	base := fixedSearcher{}
	assert.Equal(t, Searcher(base), NewRandomizedSearcher(base, 0, 10))

	// With a lot of randomness, all three moves from the start should be picked eventually.
	rs := NewRandomizedSearcher(base, 1000, 0)
	b := NewDefaultBoard()
	seen := make(map[Action]int)
	for range 300 {
		action, next, _, _ := rs.Search(b)
		require.NotNil(t, next)
		assert.Equal(t, action.Target, next.PawnPos(PlayerFirst))
		seen[action]++
	}
	assert.Len(t, seen, 3)

	// After maxMoveRandomness, the base searcher's choice is kept.
	rs = NewRandomizedSearcher(base, 1000, 2)
	b = b.Act(MoveAction(Pos{7, 4})).Act(MoveAction(Pos{1, 4}))
	for range 20 {
		action, _, _, _ := rs.Search(b)
		assert.Equal(t, MoveAction(Pos{6, 4}), action)
	}
}
