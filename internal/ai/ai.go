// Package ai (Artificial Intelligence) defines the interface of board scorers used by the searchers,
// and the heuristic scorers based on the distance field of each player to its goal row.
package ai

import (
	. "github.com/janpfeifer/quoridorGo/internal/state"
)

// WinGameScore is the score of a board where the player already reached its goal row.
// Scores are "lower is better", and no distance based score can get this low.
const WinGameScore = float32(-1_000_000)

// Scorer evaluates a board from the point of view of one player, typically the one who just acted.
// Lower scores are better for the player.
type Scorer interface {
	// Score the board for the player.
	Score(board *Board, player PlayerNum) float32

	// UseWalls returns whether wall placements should be considered as candidate actions.
	// Scorers that only look at the player's own distance never benefit from a wall.
	UseWalls() bool

	String() string
}

// UnreachableDistance is the distance used in scores for a player with no path to its goal row.
// It is larger than any real distance on the board.
func UnreachableDistance(board *Board) int {
	return board.Height() * board.Width()
}

// Distance returns the distance of the player's pawn to its goal row, or UnreachableDistance.
func Distance(board *Board, player PlayerNum) int {
	dist, ok := board.DistanceToGoal(player)
	if !ok {
		return UnreachableDistance(board)
	}
	return dist
}

// IsEndGameAndScore returns whether the player has won on the given board, and if so the
// hard-coded score of a win.
// If isEnd is false, the score should be ignored.
func IsEndGameAndScore(board *Board, player PlayerNum) (isEnd bool, score float32) {
	if board.IsWon(player) {
		return true, WinGameScore
	}
	return false, 0
}
