// Package searchers defines the interface of the search algorithms that choose an action for
// the player to move, and meta-searchers that build on top of them.
package searchers

import (
	. "github.com/janpfeifer/quoridorGo/internal/state"
)

// Searcher is the interface that any of the search algorithms must adhere to be valid.
type Searcher interface {
	// Search returns the next action to take on the given board by board.NextPlayer, along with the
	// updated Board (after taking the action) and the score of taking that action. Lower scores are better.
	//
	// Optionally, it can also return the score for each of the actions returned by Candidates,
	// in the same order.
	//
	// If the player has no action available, it returns SkipAction and a nil nextBoard.
	Search(board *Board) (action Action, nextBoard *Board, score float32, actionsScores []float32)

	// Candidates returns the actions considered by Search for board.NextPlayer.
	Candidates(board *Board) []Action
}
