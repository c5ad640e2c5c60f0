package game

import (
	"testing"

	. "github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct{ from, to Phase }

func recordPhases(s *Session) *[]transition {
	var transitions []transition
	s.onPhase = func(from, to Phase) {
		transitions = append(transitions, transition{from, to})
	}
	return &transitions
}

func TestPhaseTransitions(t *testing.T) {
	s, err := NewSession(Config{Height: 3, Width: 3})
	require.NoError(t, err)
	transitions := recordPhases(s)

	// A rejected command goes through no transition.
	require.Error(t, s.ApplyPawnMove(PlayerFirst, Pos{0, 0}))
	assert.Empty(t, *transitions)

	require.NoError(t, s.ApplyPawnMove(PlayerFirst, Pos{1, 1}))
	assert.Equal(t, []transition{
		{PhaseAwaitingAction, PhaseActionValidated},
		{PhaseActionValidated, PhaseActionApplied},
		{PhaseActionApplied, PhaseWinCheck},
		{PhaseWinCheck, PhaseAwaitingAction},
	}, *transitions)

	// Player 2 jumps over player 1 onto its goal row.
	*transitions = nil
	require.NoError(t, s.ApplyPawnMove(PlayerSecond, Pos{2, 1}))
	assert.Equal(t, []transition{
		{PhaseAwaitingAction, PhaseActionValidated},
		{PhaseActionValidated, PhaseActionApplied},
		{PhaseActionApplied, PhaseWinCheck},
		{PhaseWinCheck, PhaseGameOver},
	}, *transitions)
	assert.Equal(t, PlayerSecond, s.Winner())
}
