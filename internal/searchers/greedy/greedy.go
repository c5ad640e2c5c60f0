// Package greedy implements a single-ply searcher: every candidate action is applied to a clone of
// the board and the resulting position is scored. The best scoring candidate is chosen.
//
// There is no look-ahead on the opponent's replies.
package greedy

import (
	"github.com/janpfeifer/quoridorGo/internal/ai"
	"github.com/janpfeifer/quoridorGo/internal/generics"
	"github.com/janpfeifer/quoridorGo/internal/searchers"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Searcher implements searchers.Searcher with a single-ply greedy search.
type Searcher struct {
	scorer      ai.Scorer
	parallelism int
}

var _ searchers.Searcher = (*Searcher)(nil)

// New creates a greedy searcher that ranks candidates with the given scorer, sequentially.
func New(scorer ai.Scorer) *Searcher {
	return &Searcher{scorer: scorer, parallelism: 1}
}

// WithParallelism sets the number of goroutines used to score candidates. Values <= 1 mean sequential.
// The choice of action doesn't depend on it.
func (s *Searcher) WithParallelism(parallelism int) *Searcher {
	s.parallelism = max(parallelism, 1)
	return s
}

// Scorer used to rank candidates.
func (s *Searcher) Scorer() ai.Scorer { return s.scorer }

func (s *Searcher) String() string {
	return "greedy(" + s.scorer.String() + ")"
}

// CandidatesFor lists the actions considered for the player: its pawn moves, followed by every legal
// wall if the scorer uses walls and the player has any left.
func (s *Searcher) CandidatesFor(board *Board, player PlayerNum) []Action {
	destinations := board.LegalPawnDestinations(board.PawnPos(player))
	candidates := generics.SliceMap(destinations, MoveAction)
	if s.scorer.UseWalls() && board.WallsLeft(player) > 0 {
		for _, w := range board.LegalWalls(player) {
			candidates = append(candidates, WallAction(w.Orientation, w.Anchor))
		}
	}
	return candidates
}

// Candidates implements searchers.Searcher, for board.NextPlayer.
func (s *Searcher) Candidates(board *Board) []Action {
	return s.CandidatesFor(board, board.NextPlayer)
}

// ChooseAction returns the best action for the player, its score, and the scores of all candidates
// (in the order given by CandidatesFor). Ties are broken by the candidates order, so pawn moves
// are preferred to walls.
//
// A candidate that puts the player on its goal row scores ai.WinGameScore, whatever the scorer says.
// So an immediate win is always taken, even where a plain DeltaRanking (self - opponent distance)
// would rate some wall better.
//
// The board is not modified: each candidate is evaluated on its own clone. If the player has no
// candidates it returns SkipAction.
func (s *Searcher) ChooseAction(board *Board, player PlayerNum) (action Action, score float32, scores []float32) {
	candidates := s.CandidatesFor(board, player)
	if len(candidates) == 0 {
		klog.Warningf("%s: %s has no action available at move #%d", s, player, board.MoveNumber)
		return SkipAction, 0, nil
	}
	scores = s.scoreCandidates(board, player, candidates)
	bestIdx, score := generics.ArgMin(scores)
	action = candidates[bestIdx]
	if klog.V(2).Enabled() {
		klog.Infof("%s: move #%d, %s chose %s (score=%.1f) among %d candidates",
			s, board.MoveNumber, player, action, score, len(candidates))
	}
	return
}

// Search implements searchers.Searcher.
func (s *Searcher) Search(board *Board) (action Action, nextBoard *Board, score float32, actionsScores []float32) {
	action, score, actionsScores = s.ChooseAction(board, board.NextPlayer)
	if action.IsSkipAction() {
		return
	}
	nextBoard = board.Act(action)
	return
}

// scoreCandidates returns the score of each candidate, indexed as candidates.
func (s *Searcher) scoreCandidates(board *Board, player PlayerNum, candidates []Action) []float32 {
	scores := make([]float32, len(candidates))
	if s.parallelism <= 1 {
		for ii, action := range candidates {
			scores[ii] = s.scoreAction(board, player, action)
		}
		return scores
	}

	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for ii, action := range candidates {
		g.Go(func() error {
			scores[ii] = s.scoreAction(board, player, action)
			return nil
		})
	}
	_ = g.Wait()
	return scores
}

// scoreAction of the player on a hypothetical board.
func (s *Searcher) scoreAction(board *Board, player PlayerNum, action Action) float32 {
	hypothetical := board.ActFor(player, action)
	if isEnd, score := ai.IsEndGameAndScore(hypothetical, player); isEnd {
		return score
	}
	return s.scorer.Score(hypothetical, player)
}
