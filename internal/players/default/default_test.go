package _default

import (
	"testing"

	"github.com/janpfeifer/quoridorGo/internal/players"
	"github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayers(t *testing.T) {
	assert.Equal(t, []string{"delta", "distance"}, players.RegisteredModules())

	p, err := players.New(0, "test", state.PlayerFirst, "")
	require.NoError(t, err)
	assert.Equal(t, "greedy/delta", p.String())

	p, err = players.New(0, "test", state.PlayerSecond, "distance:parallelism=2")
	require.NoError(t, err)
	assert.Equal(t, "greedy/distance", p.String())
	b := state.NewDefaultBoard().Act(state.MoveAction(state.Pos{7, 4}))
	action, next, score, _ := p.Play(b)
	assert.Equal(t, state.MoveAction(state.Pos{1, 4}), action)
	assert.Equal(t, float32(7), score)
	assert.Equal(t, state.Pos{1, 4}, next.PawnPos(state.PlayerSecond))
	p.Finalize()

	_, err = players.New(0, "test", state.PlayerFirst, "delta:randomness=0.5,max_move_randomness=10")
	assert.NoError(t, err)

	_, err = players.New(0, "test", state.PlayerFirst, "minimax")
	assert.Error(t, err)
	_, err = players.New(0, "test", state.PlayerFirst, "delta:max_depth=3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")
	_, err = players.New(0, "test", state.PlayerFirst, "delta:parallelism=many")
	assert.Error(t, err)
}
