package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/janpfeifer/quoridorGo/internal/game"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	. "github.com/janpfeifer/quoridorGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	for _, tc := range []struct {
		text string
		want Command
	}{
		{"7 4", Command{Kind: CommandAction, Action: MoveAction(Pos{7, 4})}},
		{"  m 7,4 ", Command{Kind: CommandAction, Action: MoveAction(Pos{7, 4})}},
		{"h 3 2", Command{Kind: CommandAction, Action: WallAction(Horizontal, Pos{3, 2})}},
		{"V0 7", Command{Kind: CommandAction, Action: WallAction(Vertical, Pos{0, 7})}},
		{"hint", Command{Kind: CommandHint}},
		{"Walls", Command{Kind: CommandWalls}},
		{"?", Command{Kind: CommandHelp}},
		{"quit\n", Command{Kind: CommandQuit}},
	} {
		got, err := ParseCommand(tc.text)
		require.NoError(t, err, "parsing %q", tc.text)
		assert.Equal(t, tc.want, got, "parsing %q", tc.text)
	}

	for _, text := range []string{"", "x 1 2", "1", "1 2 3", "m", "300 1"} {
		_, err := ParseCommand(text)
		assert.Error(t, err, "parsing %q", text)
	}
}

func TestRenderBoard(t *testing.T) {
	b := BuildBoard(Layout{
		Height: 3, Width: 3,
		Walls: []WallOnBoard{{Horizontal, Pos{0, 0}, PlayerFirst}, {Vertical, Pos{1, 1}, PlayerSecond}},
	})
	ui := NewWithIO(false, false, strings.NewReader(""), &bytes.Buffer{})
	lines := strings.Split(ui.RenderBoard(b, b.PawnDestinationsSet(b.PawnPos(PlayerFirst))), "\n")
	require.Len(t, lines, 7) // Header, 3 rows, 2 separators and the final empty line.
	assert.Equal(t, "    0   1   2  ", lines[0])
	assert.Equal(t, " 0  .   2   . ", lines[1])
	assert.Equal(t, "   ━━━╋━━━·   ", lines[2])
	assert.Equal(t, " 1  .   * ┃ . ", lines[3])
	assert.Equal(t, "      ·   ╋   ", lines[4])
	assert.Equal(t, " 2  *   1 ┃ . ", lines[5])
}

func TestRunNextMove(t *testing.T) {
	session, err := game.NewSession(game.DefaultConfig())
	require.NoError(t, err)
	var out bytes.Buffer
	input := "x\nhint\nwalls\n9 9\nh 8 8\n7 4\n"
	ui := NewWithIO(false, false, strings.NewReader(input), &out)
	require.NoError(t, ui.RunNextMove(session))
	assert.Equal(t, PlayerSecond, session.Turn())
	assert.Equal(t, []game.Move{{Player: PlayerFirst, Action: MoveAction(Pos{7, 4})}}, session.History())

	printed := out.String()
	assert.Contains(t, printed, "Pawn moves: (7, 4), (8, 3), (8, 5)")
	assert.Contains(t, printed, "Hint: Move to (7, 4)")
	assert.Contains(t, printed, "128 legal walls: H 0 0, H 0 1")
	assert.Contains(t, printed, "Move to (9, 9) is not valid")
	assert.Contains(t, printed, "Horizontal wall at (8, 8) is not valid")

	// Quitting, or running out of input.
	ui = NewWithIO(false, false, strings.NewReader("quit\n"), &out)
	assert.True(t, errors.Is(ui.RunNextMove(session), ErrQuit))
	ui = NewWithIO(false, false, strings.NewReader(""), &out)
	assert.Error(t, ui.RunNextMove(session))
	assert.Equal(t, PlayerSecond, session.Turn())
}

func TestPrintWinner(t *testing.T) {
	session, err := game.NewSession(game.Config{Height: 3, Width: 3})
	require.NoError(t, err)
	require.NoError(t, session.ApplyPawnMove(PlayerFirst, Pos{1, 1}))
	require.NoError(t, session.ApplyPawnMove(PlayerSecond, Pos{2, 1}))
	var out bytes.Buffer
	ui := NewWithIO(false, false, strings.NewReader(""), &out)
	ui.Print(session, true)
	ui.PrintWinner(session)
	assert.Contains(t, out.String(), "Player2  WINS!!")
	assert.NotContains(t, out.String(), "turn to play")
}
