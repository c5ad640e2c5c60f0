// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/quoridorGo/internal/ai"
	"github.com/janpfeifer/quoridorGo/internal/game"
	"github.com/janpfeifer/quoridorGo/internal/generics"
	"github.com/janpfeifer/quoridorGo/internal/searchers/greedy"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"k8s.io/klog/v2"
)

const (
	// CharsPerCell is the width of a cell in the board display.
	CharsPerCell = 3

	// MaxErrors is the number of unparseable commands in a row before RunNextMove gives up.
	MaxErrors = 3

	// maxWallsListed on the "walls" command.
	maxWallsListed = 12
)

var parsingErrorMsg = "failed to read command 3 times"

// UI holds the state of the terminal user interface.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer

	// hinter is used for the "hint" command.
	hinter *greedy.Searcher

	styles styles
}

type styles struct {
	players   [NumPlayers]lipgloss.Style
	wall      lipgloss.Style
	highlight lipgloss.Style
	title     lipgloss.Style
	draw      lipgloss.Style
}

// New creates a UI reading from stdin and printing to stdout.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(color, clearScreen, os.Stdin, os.Stdout)
}

// NewWithIO creates a UI reading commands from in, and printing to out.
func NewWithIO(color bool, clearScreen bool, in io.Reader, out io.Writer) *UI {
	ui := &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
		hinter:      greedy.New(ai.DeltaRanking{}),
	}
	ui.styles = ui.newStyles()
	return ui
}

func (ui *UI) newStyles() (s styles) {
	base := lipgloss.NewStyle()
	s = styles{
		players:   [NumPlayers]lipgloss.Style{base, base},
		wall:      base,
		highlight: base,
		title:     base,
		draw:      base.Padding(1, 2),
	}
	if !ui.color {
		return
	}
	s.players[PlayerFirst] = base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")).Bold(true)
	s.players[PlayerSecond] = base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")).Bold(true)
	s.wall = base.Foreground(lipgloss.Color("11")).Bold(true)
	s.highlight = base.Foreground(lipgloss.Color("13")).Bold(true)
	s.title = base.Foreground(lipgloss.Color("7")).Italic(true).Bold(true)
	s.draw = s.draw.Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0"))
	return
}

func (ui *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ui.out, format, args...)
}

func (ui *UI) println(args ...any) {
	_, _ = fmt.Fprintln(ui.out, args...)
}

// printCentered prints the block of text centered in the terminal, if out is a terminal.
func (ui *UI) printCentered(block string) {
	terminalWidth := 0
	if f, ok := ui.out.(*os.File); ok {
		terminalWidth, _, _ = term.GetSize(int(f.Fd()))
	}
	indent := max((terminalWidth-lipgloss.Width(block))/2, 0)
	for _, line := range strings.Split(block, "\n") {
		if len(line) == 0 {
			ui.println()
			continue
		}
		ui.printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// Player returns the player name, colored.
func (ui *UI) Player(player PlayerNum) string {
	return ui.styles.players[player].Render(" " + player.String() + " ")
}

// Print the session: move number, the board and the walls left of each player.
// If highlightMoves is set, the destinations of the player to move are highlighted.
func (ui *UI) Print(session *game.Session, highlightMoves bool) {
	if ui.clearScreen {
		ui.printf("\033c")
	}
	board := session.Board()
	ui.printf("\n%s\n\n", ui.styles.title.Render(fmt.Sprintf("Move #%d", board.MoveNumber)))

	var highlights generics.Set[Pos]
	var destinations []Pos
	if highlightMoves && !session.IsFinished() {
		destinations = board.LegalPawnDestinations(board.PawnPos(session.Turn()))
		highlights = generics.SetWith(destinations...)
	}
	ui.printCentered(ui.RenderBoard(board, highlights))
	ui.println()
	ui.PrintPlayersInfo(board)

	if !session.IsFinished() {
		ui.println()
		ui.printf("%s turn to play\n", ui.Player(session.Turn()))
	}
	if len(destinations) > 0 {
		SortPositions(destinations)
		ui.printf("Pawn moves: %s\n", strings.Join(PosStrings(destinations), ", "))
	}
}

// PrintPlayersInfo prints for each player its position, distance to the goal and walls left.
func (ui *UI) PrintPlayersInfo(board *Board) {
	for p := PlayerFirst; p < NumPlayers; p++ {
		dist, ok := board.DistanceToGoal(p)
		distStr := fmt.Sprintf("%d steps", dist)
		if !ok {
			distStr = "no path"
		}
		ui.printf("%s at %s, goal row %d (%s), walls left: %d\n",
			ui.Player(p), board.PawnPos(p), board.GoalRow(p), distStr, board.WallsLeft(p))
	}
}

// RenderBoard returns the board drawn with the pawns, the walls and the highlighted cells, with the
// row and column numbers around it.
func (ui *UI) RenderBoard(board *Board, highlights generics.Set[Pos]) string {
	var sb strings.Builder
	height, width := int8(board.Height()), int8(board.Width())

	// Header with column numbers.
	sb.WriteString("   ")
	for col := int8(0); col < width; col++ {
		sb.WriteString(fmt.Sprintf("%2d ", col) + " ")
	}
	sb.WriteString("\n")

	for row := int8(0); row < height; row++ {
		sb.WriteString(fmt.Sprintf("%2d ", row))
		for col := int8(0); col < width; col++ {
			pos := Pos{row, col}
			sb.WriteString(ui.renderCell(board, pos, highlights.Has(pos)))
			switch {
			case col == width-1:
			case board.CellAt(pos).BlocksEast():
				sb.WriteString(ui.styles.wall.Render("┃"))
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
		if row == height-1 {
			break
		}
		sb.WriteString("   ")
		for col := int8(0); col < width; col++ {
			cell := board.CellAt(Pos{row, col})
			if cell.BlocksSouth() {
				sb.WriteString(ui.styles.wall.Render(strings.Repeat("━", CharsPerCell)))
			} else {
				sb.WriteString(strings.Repeat(" ", CharsPerCell))
			}
			if col == width-1 {
				continue
			}
			if cell.WallOrigin() {
				sb.WriteString(ui.styles.wall.Render("╋"))
			} else {
				sb.WriteString("·")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (ui *UI) renderCell(board *Board, pos Pos, highlight bool) string {
	occupant := board.OccupantAt(pos)
	if occupant != PlayerInvalid {
		return ui.styles.players[occupant].Render(" " + PawnGlyphs[occupant] + " ")
	}
	if highlight {
		return ui.styles.highlight.Render(" * ")
	}
	return " " + PawnGlyphs[NumPlayers] + " "
}

// PrintWinner prints the end of the match.
func (ui *UI) PrintWinner(session *game.Session) {
	winner := session.Winner()
	ui.println()
	if winner == PlayerInvalid {
		ui.printCentered(ui.styles.draw.Render(fmt.Sprintf("*** DRAW: %s! ***", session.FinishReason())))
	} else {
		ui.printCentered(fmt.Sprintf("*** %s WINS!! Congratulations! *** (%s)",
			ui.Player(winner), session.FinishReason()))
	}
	ui.println()
}

// PrintAction taken by a player.
func (ui *UI) PrintAction(player PlayerNum, action Action) {
	ui.printf("%s: %s\n", ui.Player(player), action)
}

// ReadCommand reads the next command from the user. It gives up after MaxErrors unparseable lines.
func (ui *UI) ReadCommand(player PlayerNum) (cmd Command, err error) {
	for range MaxErrors {
		ui.printf("    %s command > ", ui.Player(player))
		var text string
		text, err = ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return
		}
		cmd, err = ParseCommand(text)
		if err == nil {
			return
		}
		ui.printf("    * %s\n", err)
	}
	err = errors.New(parsingErrorMsg)
	return
}

// RunNextMove reads commands from the user until one action is successfully applied to the session.
// Illegal actions are reported and the user is asked again.
func (ui *UI) RunNextMove(session *game.Session) error {
	player := session.Turn()
	ui.Print(session, true)
	ui.println()
	for {
		cmd, err := ui.ReadCommand(player)
		if err != nil && err.Error() == parsingErrorMsg {
			ui.println(Instructions)
			continue
		}
		if err != nil {
			return errors.WithMessage(err, "reading command")
		}
		switch cmd.Kind {
		case CommandQuit:
			return ErrQuit
		case CommandHelp:
			ui.println(Instructions)
		case CommandHint:
			action, score, _ := ui.hinter.ChooseAction(session.Board(), player)
			ui.printf("    Hint: %s (%s score %.0f)\n", action, ui.hinter, score)
		case CommandWalls:
			ui.printLegalWalls(session, player)
		case CommandAction:
			err = session.Apply(player, cmd.Action)
			if err == nil {
				klog.V(1).Infof("%s played %s", player, cmd.Action)
				return nil
			}
			ui.printf("    * %s is not valid: %s\n", cmd.Action, err)
		}
	}
}

func (ui *UI) printLegalWalls(session *game.Session, player PlayerNum) {
	walls := session.LegalWalls(player)
	if len(walls) == 0 {
		ui.printf("    %s has no walls to place.\n", ui.Player(player))
		return
	}
	strs := make([]string, 0, maxWallsListed)
	for _, w := range walls[:min(len(walls), maxWallsListed)] {
		strs = append(strs, fmt.Sprintf("%s %d %d", w.Orientation.Letter(), w.Anchor.Row(), w.Anchor.Col()))
	}
	more := ""
	if len(walls) > maxWallsListed {
		more = fmt.Sprintf(", ... (%d more)", len(walls)-maxWallsListed)
	}
	ui.printf("    %d legal walls: %s%s\n", len(walls), strings.Join(strs, ", "), more)
}
