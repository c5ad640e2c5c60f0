package cli

import (
	"regexp"
	"strconv"
	"strings"

	. "github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/pkg/errors"
)

// CommandKind enumerates what the user can type.
type CommandKind int

const (
	CommandAction CommandKind = iota
	CommandHint
	CommandWalls
	CommandHelp
	CommandQuit
)

// Command parsed from the user's input. Action is only set for CommandAction.
type Command struct {
	Kind   CommandKind
	Action Action
}

// ErrQuit is returned by RunNextMove if the user asked to quit.
var ErrQuit = errors.New("user quit")

var (
	actionParser = regexp.MustCompile(`^(?:([MHV])[\s,]*)?(-?\d+)[\s,]+(-?\d+)$`)

	keywordCommands = map[string]CommandKind{
		"HINT":  CommandHint,
		"WALLS": CommandWalls,
		"HELP":  CommandHelp,
		"?":     CommandHelp,
		"QUIT":  CommandQuit,
		"EXIT":  CommandQuit,
	}
)

// ParseCommand parses one line typed by the user (case-insensitive):
//
//   - "m <row> <col>" or simply "<row> <col>": move the pawn.
//   - "h <row> <col>" or "v <row> <col>": place a horizontal or vertical wall anchored at (row, col).
//   - "hint", "walls", "help" (or "?") and "quit".
//
// It only checks the syntax: the legality of the action is for the game session to decide.
func ParseCommand(text string) (cmd Command, err error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if kind, found := keywordCommands[text]; found {
		cmd.Kind = kind
		return
	}
	matches := actionParser.FindStringSubmatch(text)
	if len(matches) != 4 {
		err = errors.Errorf("failed to parse %q, type \"help\" for the list of commands", text)
		return
	}
	var pos Pos
	for ii := range 2 {
		var i64 int64
		i64, err = strconv.ParseInt(matches[2+ii], 10, 8)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse position %q in %q", matches[2+ii], text)
			return
		}
		pos[ii] = int8(i64)
	}
	cmd.Kind = CommandAction
	switch matches[1] {
	case "", "M":
		cmd.Action = MoveAction(pos)
	case "H":
		cmd.Action = WallAction(Horizontal, pos)
	case "V":
		cmd.Action = WallAction(Vertical, pos)
	}
	return
}

// Instructions printed on "help".
const Instructions = `Commands:
  - "<row> <col>" or "m <row> <col>": move your pawn to (row, col). Cells marked with "*" are reachable.
  - "h <row> <col>": place a horizontal wall under the cells (row, col) and (row, col+1).
  - "v <row> <col>": place a vertical wall to the right of the cells (row, col) and (row+1, col).
  - "hint": ask the AI for a suggestion.
  - "walls": list the walls you can place.
  - "quit": leave the game.
Walls can't cross or overlap other walls, and can't close the last path of any player to its goal row.`
