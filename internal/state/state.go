// Package state holds the Quoridor board state and its rules: pawn moves, wall placement
// and the distance field used both to validate walls and by the AIs.
package state

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
)

const (
	// NumPlayers is fixed to 2.
	NumPlayers = 2

	// DefaultSize is the height and width of the standard board.
	DefaultSize = 9

	// DefaultWallsPerPlayer is the standard number of walls in each player's reserve.
	DefaultWallsPerPlayer = 10

	// MinSize is the smallest board height or width supported.
	MinSize = 3

	// MaxSize is the largest board height or width supported.
	MaxSize = 99
)

// PlayerNum is either PlayerFirst or PlayerSecond.
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents an invalid PlayerNum. It is also used as "no occupant" in a cell.
	PlayerInvalid
)

var playerNames = [...]string{"Player1", "Player2", "Invalid"}

// String implements fmt.Stringer.
func (p PlayerNum) String() string {
	if int(p) >= len(playerNames) {
		return fmt.Sprintf("PlayerNum(%d)", p)
	}
	return playerNames[p]
}

// Opponent returns the other player.
func (p PlayerNum) Opponent() PlayerNum {
	return 1 - p
}

// Pos packages the (row, col) position of a cell. Row 0 is the top of the board.
type Pos [2]int8

// Row of the position.
func (pos Pos) Row() int8 {
	return pos[0]
}

// Col of the position.
func (pos Pos) Col() int8 {
	return pos[1]
}

// Step returns the position one step in the given direction. It may be off-board.
func (pos Pos) Step(dir Direction) Pos {
	delta := dir.Delta()
	return Pos{pos[0] + delta[0], pos[1] + delta[1]}
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// SortPositions sorts in row-major order.
func SortPositions(positions []Pos) {
	slices.SortFunc(positions, func(a, b Pos) int {
		if a[0] != b[0] {
			return int(a[0]) - int(b[0])
		}
		return int(a[1]) - int(b[1])
	})
}

// PosStrings converts the positions to strings.
func PosStrings(positions []Pos) []string {
	strs := make([]string, len(positions))
	for ii, pos := range positions {
		strs[ii] = pos.String()
	}
	return strs
}

// Direction of an orthogonal step.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
	NumDirections
)

// Directions in enumeration order: clockwise starting from North.
var Directions = [NumDirections]Direction{North, East, South, West}

var (
	directionDeltas = [NumDirections]Pos{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	directionNames  = [NumDirections]string{"North", "East", "South", "West"}
)

// Delta returns the (row, col) displacement of one step in the direction.
func (dir Direction) Delta() Pos {
	return directionDeltas[dir]
}

// Perpendiculars returns the two directions perpendicular to dir, turning left first
// and then right.
func (dir Direction) Perpendiculars() [2]Direction {
	return [2]Direction{(dir + 3) % NumDirections, (dir + 1) % NumDirections}
}

func (dir Direction) String() string {
	return directionNames[dir]
}

// Cell of the board. Boundary flags can only be set by Board.PlaceWall, which always sets
// them in mirrored pairs on two adjacent cells.
type Cell struct {
	blocksSouth, blocksEast bool

	// wallOrigin is set if a wall (of any orientation) is anchored on this cell.
	wallOrigin bool

	occupant PlayerNum
}

// BlocksSouth returns whether moving between this cell and its south neighbor is blocked.
func (c Cell) BlocksSouth() bool { return c.blocksSouth }

// BlocksEast returns whether moving between this cell and its east neighbor is blocked.
func (c Cell) BlocksEast() bool { return c.blocksEast }

// WallOrigin returns whether a wall is anchored at this cell's crossing.
func (c Cell) WallOrigin() bool { return c.wallOrigin }

// Occupant returns the player whose pawn is on this cell, or PlayerInvalid if it is empty.
func (c Cell) Occupant() PlayerNum { return c.occupant }

// PlayerState holds the per-player information.
type PlayerState struct {
	ID      PlayerNum
	Pos     Pos
	GoalRow int8
}

// Board is the full game state. It is cheap to Clone for hypothetical analysis.
type Board struct {
	height, width int8
	cells         []Cell
	players       [NumPlayers]PlayerState
	reserves      [NumPlayers][]Wall

	MoveNumber int
	NextPlayer PlayerNum
}

// NewBoard creates a board with both pawns centered on their own edge and all walls in reserve.
// PlayerFirst starts at the bottom row and must reach row 0, PlayerSecond the opposite.
//
// It panics if the dimensions are not playable: callers validate user configuration first.
func NewBoard(height, width, wallsPerPlayer int) *Board {
	if height < MinSize || width < MinSize || height > MaxSize || width > MaxSize {
		exceptions.Panicf("state.NewBoard: invalid board size %dx%d", height, width)
	}
	if wallsPerPlayer < 0 {
		exceptions.Panicf("state.NewBoard: invalid number of walls %d", wallsPerPlayer)
	}
	b := &Board{
		height:     int8(height),
		width:      int8(width),
		cells:      make([]Cell, height*width),
		MoveNumber: 1,
		NextPlayer: PlayerFirst,
	}
	for ii := range b.cells {
		b.cells[ii].occupant = PlayerInvalid
	}
	center := int8(width / 2)
	b.players[PlayerFirst] = PlayerState{ID: PlayerFirst, Pos: Pos{b.height - 1, center}, GoalRow: 0}
	b.players[PlayerSecond] = PlayerState{ID: PlayerSecond, Pos: Pos{0, center}, GoalRow: b.height - 1}
	for p := PlayerFirst; p < NumPlayers; p++ {
		b.cellPtr(b.players[p].Pos).occupant = p
		b.reserves[p] = make([]Wall, wallsPerPlayer)
		for ii := range b.reserves[p] {
			b.reserves[p][ii] = Wall{Owner: p}
		}
	}
	return b
}

// NewDefaultBoard creates a standard 9x9 board with 10 walls per player.
func NewDefaultBoard() *Board {
	return NewBoard(DefaultSize, DefaultSize, DefaultWallsPerPlayer)
}

// Clone makes a deep copy of the board.
func (b *Board) Clone() *Board {
	newB := &Board{}
	*newB = *b
	newB.cells = slices.Clone(b.cells)
	for p := range b.reserves {
		newB.reserves[p] = slices.Clone(b.reserves[p])
	}
	return newB
}

// Height of the board in rows.
func (b *Board) Height() int { return int(b.height) }

// Width of the board in columns.
func (b *Board) Width() int { return int(b.width) }

// OnBoard returns whether pos is within the board.
func (b *Board) OnBoard(pos Pos) bool {
	return pos[0] >= 0 && pos[0] < b.height && pos[1] >= 0 && pos[1] < b.width
}

func (b *Board) index(pos Pos) int {
	if !b.OnBoard(pos) {
		exceptions.Panicf("position %s is off the %dx%d board", pos, b.height, b.width)
	}
	return int(pos[0])*int(b.width) + int(pos[1])
}

func (b *Board) cellPtr(pos Pos) *Cell {
	return &b.cells[b.index(pos)]
}

// CellAt returns a copy of the cell at the given position. It panics if pos is off-board.
func (b *Board) CellAt(pos Pos) Cell {
	return b.cells[b.index(pos)]
}

// OccupantAt returns the player at pos, or PlayerInvalid if empty.
func (b *Board) OccupantAt(pos Pos) PlayerNum {
	return b.CellAt(pos).occupant
}

// Player returns the state of the given player.
func (b *Board) Player(player PlayerNum) PlayerState {
	return b.players[player]
}

// PawnPos returns where the player's pawn is.
func (b *Board) PawnPos(player PlayerNum) Pos {
	return b.players[player].Pos
}

// GoalRow returns the row the player has to reach.
func (b *Board) GoalRow(player PlayerNum) int8 {
	return b.players[player].GoalRow
}

// IsWon returns whether the player's pawn is on its goal row.
func (b *Board) IsWon(player PlayerNum) bool {
	return b.players[player].Pos[0] == b.players[player].GoalRow
}

// Winner returns the player on its goal row, or PlayerInvalid.
func (b *Board) Winner() PlayerNum {
	for p := PlayerFirst; p < NumPlayers; p++ {
		if b.IsWon(p) {
			return p
		}
	}
	return PlayerInvalid
}

// Open returns whether a pawn can cross from pos to its neighbor in direction dir: the neighbor
// must be on the board and no wall may block the edge between them. Occupants are not considered.
func (b *Board) Open(pos Pos, dir Direction) bool {
	to := pos.Step(dir)
	if !b.OnBoard(to) {
		return false
	}
	switch dir {
	case North:
		return !b.CellAt(to).blocksSouth
	case South:
		return !b.CellAt(pos).blocksSouth
	case West:
		return !b.CellAt(to).blocksEast
	case East:
		return !b.CellAt(pos).blocksEast
	}
	exceptions.Panicf("invalid direction %d", dir)
	return false
}

// MovePawn moves the player's pawn to the given position.
//
// It DOES NOT CHECK that the move is legal (useful for tests and hypothetical boards); see
// LegalPawnDestinations.
func (b *Board) MovePawn(player PlayerNum, to Pos) {
	from := b.players[player].Pos
	b.cellPtr(from).occupant = PlayerInvalid
	b.cellPtr(to).occupant = player
	b.players[player].Pos = to
}

// PlacePawns puts the pawns on the given positions, indexed by PlayerNum, regardless of the rules.
// It is meant to set up positions for tests and analysis, and panics if both positions are the same.
func (b *Board) PlacePawns(positions [NumPlayers]Pos) {
	if positions[PlayerFirst] == positions[PlayerSecond] {
		exceptions.Panicf("PlacePawns: both pawns at %s", positions[PlayerFirst])
	}
	for p := PlayerFirst; p < NumPlayers; p++ {
		b.cellPtr(b.players[p].Pos).occupant = PlayerInvalid
	}
	for p := PlayerFirst; p < NumPlayers; p++ {
		b.cellPtr(positions[p]).occupant = p
		b.players[p].Pos = positions[p]
	}
}
