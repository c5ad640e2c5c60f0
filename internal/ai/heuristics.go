package ai

import (
	. "github.com/janpfeifer/quoridorGo/internal/state"
)

// DistanceOnly scores a board by the player's own shortest distance to its goal row.
// It ignores the opponent entirely, and so it never places walls.
type DistanceOnly struct{}

var _ Scorer = DistanceOnly{}

// Score implements Scorer.
func (DistanceOnly) Score(board *Board, player PlayerNum) float32 {
	return float32(Distance(board, player))
}

// UseWalls implements Scorer.
func (DistanceOnly) UseWalls() bool { return false }

func (DistanceOnly) String() string { return "distance" }

// DeltaRanking scores a board by the player's distance to its goal minus the opponent's distance
// to its own goal: getting closer and pushing the opponent away are worth the same.
type DeltaRanking struct{}

var _ Scorer = DeltaRanking{}

// Score implements Scorer.
func (DeltaRanking) Score(board *Board, player PlayerNum) float32 {
	return float32(Distance(board, player) - Distance(board, player.Opponent()))
}

// UseWalls implements Scorer.
func (DeltaRanking) UseWalls() bool { return true }

func (DeltaRanking) String() string { return "delta" }
