package searchers

import (
	"math/rand/v2"
	"slices"

	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	"k8s.io/klog/v2"
)

// NewRandomizedSearcher adds randomness to the action taken by an existing Searcher.
// Args:
//
//   - searcher: Baseline Searcher.
//   - randomness (>=0): Amount of randomness to use: it is applied as a divisor to the scores
//     returned by the Searcher, except if there is a winning move.
//     The larger the value the more it leads to randomness (exploration), and lower values
//     lead to "pick the best scoring move" (exploitation), with zero meaning no randomness.
//   - maxMoveRandomness: starting at this move no more randomness is used. This allows
//     randomness to be used only earlier in the match. If 0, randomness is used for the whole match.
func NewRandomizedSearcher(searcher Searcher, randomness float32, maxMoveRandomness int) Searcher {
	if randomness <= 0 {
		// Without randomness, simply return the original Searcher.
		return searcher
	}
	return &randomizedSearcher{
		searcher:          searcher,
		randomness:        randomness,
		maxMoveRandomness: maxMoveRandomness,
	}
}

// randomizedSearcher is a meta Searcher, that introduces randomness to its scorer.
type randomizedSearcher struct {
	searcher          Searcher
	randomness        float32
	maxMoveRandomness int
}

// Assert randomizedSearcher is a Searcher.
var _ Searcher = &randomizedSearcher{}

// Candidates implements Searcher.
func (rs *randomizedSearcher) Candidates(board *Board) []Action {
	return rs.searcher.Candidates(board)
}

// Search implements the Searcher interface.
func (rs *randomizedSearcher) Search(board *Board) (chosenAction Action, nextBoard *Board, score float32, actionsScores []float32) {
	// Get scores from base searcher for current board.
	chosenAction, nextBoard, score, actionsScores = rs.searcher.Search(board)

	// If we reached the max move number for randomness, or if the searcher doesn't return scores for the
	// different actions, or if there is only one action possible, or if it is a winning move,
	// we don't add any randomness.
	if (rs.maxMoveRandomness > 0 && board.MoveNumber >= rs.maxMoveRandomness) ||
		nextBoard == nil || nextBoard.IsWon(board.NextPlayer) || len(actionsScores) <= 1 {
		return
	}
	actions := rs.searcher.Candidates(board)
	if len(actionsScores) != len(actions) {
		exceptions.Panicf("randomizedSearcher: Searcher returned %d actionsScores, but there are %d candidate actions!?",
			len(actionsScores), len(actions))
	}

	// Calculate probability for each action: lower scores are better.
	logits := make([]float32, len(actionsScores))
	for ii, score := range actionsScores {
		logits[ii] = -score / rs.randomness
	}
	probabilities := softmax(logits)
	actionIdx := sample(probabilities, rand.Float32())
	if klog.V(2).Enabled() {
		klog.Infof("randomizedSearcher selection: action=%s, score=%.2f, probability=%.3f",
			actions[actionIdx], actionsScores[actionIdx], probabilities[actionIdx])
	}
	if actions[actionIdx].Equal(chosenAction) {
		// randomizedSearcher chose the same as the base searcher.
		return
	}
	chosenAction = actions[actionIdx]
	nextBoard = board.Act(chosenAction)
	score = actionsScores[actionIdx]
	return
}

// sample returns the index selected by chance (in [0, 1)) from the probabilities.
func sample(probabilities []float32, chance float32) int {
	for idx, value := range probabilities {
		if chance < value {
			return idx
		}
		chance -= value
	}
	// Rounding errors may leave a tiny remainder of chance: take the last non-zero probability.
	for idx := len(probabilities) - 1; idx >= 0; idx-- {
		if probabilities[idx] > 0 {
			return idx
		}
	}
	exceptions.Panicf("nothing selected!? probabilities=%v", probabilities)
	return -1
}

func softmax(values []float32) (probs []float32) {
	probs = make([]float32, len(values))
	var sum float32

	// Subtract maxValue from all values keep the probability the same, but makes for more numerically stable
	// values.
	maxValue := slices.Max(values)
	for ii, value := range values {
		probs[ii] = math32.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
