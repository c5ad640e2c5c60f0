// Package _default registers the default players that can be included in any
// front-end for quoridorGo.
//
// Currently, it includes the greedy "distance" and "delta" players.
package _default

import (
	"github.com/janpfeifer/quoridorGo/internal/ai"
	"github.com/janpfeifer/quoridorGo/internal/parameters"
	"github.com/janpfeifer/quoridorGo/internal/players"
	"github.com/janpfeifer/quoridorGo/internal/state"
)

func init() {
	players.RegisterModule("distance", &Greedy{Scorer: ai.DistanceOnly{}})
	players.RegisterModule("delta", &Greedy{Scorer: ai.DeltaRanking{}})
}

// Greedy implements players.Module for a greedy searcher with the given scorer.
type Greedy struct {
	Scorer ai.Scorer
}

// Assert Greedy implements Module.
var _ players.Module = (*Greedy)(nil)

// NewPlayer implements players.Module.
func (g *Greedy) NewPlayer(matchId uint64, matchName string, playerNum state.PlayerNum, params parameters.Params) (players.Player, error) {
	player, err := players.NewSearcherScorer(g.Scorer, matchName, playerNum, params)
	if err != nil {
		return nil, err
	}
	return player, nil
}
