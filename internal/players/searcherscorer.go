package players

import (
	"fmt"

	"github.com/janpfeifer/quoridorGo/internal/ai"
	"github.com/janpfeifer/quoridorGo/internal/parameters"
	"github.com/janpfeifer/quoridorGo/internal/searchers"
	"github.com/janpfeifer/quoridorGo/internal/searchers/greedy"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	"k8s.io/klog/v2"
)

// SearcherScorer is a standard set up for an AI: a searcher and a scorer.
// It implements the Player interface.
type SearcherScorer struct {
	Searcher searchers.Searcher
	Scorer   ai.Scorer

	matchName string
	playerNum PlayerNum
}

// NewSearcherScorer creates a greedy player for the given scorer, configured by params.
//
// Parameters popped from params:
//
//   - parallelism (int): number of goroutines used to score candidate actions. Default is 1.
//   - randomness (float): Adds a layer of randomness in the search: the choice is
//     distributed according to a softmax of the scores of each candidate, divided by this value.
//     So lower values (closer to 0) means less randomness, higher value means more randomness,
//     hence more exploration. Default is 0.
//   - max_move_randomness (int): if randomness is set, it is only used up to this move number.
//     Default is 0, meaning randomness is used the whole match.
func NewSearcherScorer(scorer ai.Scorer, matchName string, playerNum PlayerNum, params parameters.Params) (*SearcherScorer, error) {
	parallelism, err := parameters.PopParamOr(params, "parallelism", 1)
	if err != nil {
		return nil, err
	}
	randomness, err := parameters.PopParamOr(params, "randomness", float32(0))
	if err != nil {
		return nil, err
	}
	maxMoveRandomness, err := parameters.PopParamOr(params, "max_move_randomness", 0)
	if err != nil {
		return nil, err
	}
	searcher := searchers.NewRandomizedSearcher(
		greedy.New(scorer).WithParallelism(parallelism), randomness, maxMoveRandomness)
	return &SearcherScorer{
		Searcher:  searcher,
		Scorer:    scorer,
		matchName: matchName,
		playerNum: playerNum,
	}, nil
}

// Assert that SearchScorer is a Player.
var _ Player = &SearcherScorer{}

// Play implements the Player interface: it chooses an action given a Board.
func (s *SearcherScorer) Play(b *Board) (action Action, nextBoard *Board, score float32, actionsScores []float32) {
	action, nextBoard, score, actionsScores = s.Searcher.Search(b)
	if klog.V(2).Enabled() {
		klog.Infof("%s: move #%d: AI (%s) playing %s, score=%.1f",
			s.matchName, b.MoveNumber, s, action, score)
	}
	return
}

// Finalize is called at the end of a match.
func (s *SearcherScorer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("%s: player %s (scorer=%s) finalized", s.matchName, s.playerNum, s.Scorer)
	}
}

func (s *SearcherScorer) String() string {
	return fmt.Sprintf("greedy/%s", s.Scorer)
}
