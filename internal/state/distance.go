package state

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

// Unreachable is the value stored in a DistanceMap for cells with no path to the goal.
const Unreachable = -1

// DistanceMap holds, for every cell, the number of steps to a goal row, or Unreachable.
// It is produced fresh by Board.DistancesTo and never shared with the board.
type DistanceMap struct {
	height, width int8
	dist          []int16
}

// At returns the distance from pos to the goal, and whether the goal is reachable at all.
// It panics if pos is off the board.
func (m *DistanceMap) At(pos Pos) (dist int, reachable bool) {
	if pos[0] < 0 || pos[0] >= m.height || pos[1] < 0 || pos[1] >= m.width {
		exceptions.Panicf("position %s is off the %dx%d distance map", pos, m.height, m.width)
	}
	d := m.dist[int(pos[0])*int(m.width)+int(pos[1])]
	if d == Unreachable {
		return Unreachable, false
	}
	return int(d), true
}

// Reachable returns whether there is a path from pos to the goal.
func (m *DistanceMap) Reachable(pos Pos) bool {
	_, reachable := m.At(pos)
	return reachable
}

// String prints the map as a grid, with "-" for unreachable cells.
func (m *DistanceMap) String() string {
	var sb strings.Builder
	for row := int8(0); row < m.height; row++ {
		for col := int8(0); col < m.width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			d, ok := m.At(Pos{row, col})
			if ok {
				_, _ = fmt.Fprintf(&sb, "%2d", d)
			} else {
				sb.WriteString(" -")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DistancesTo runs a multi-source breadth-first search from every cell of goalRow.
// Adjacency is only gated by walls and the board edges: pawns are ignored, since the distance
// models a hypothetical lone pawn.
func (b *Board) DistancesTo(goalRow int8) *DistanceMap {
	m := &DistanceMap{height: b.height, width: b.width, dist: make([]int16, len(b.cells))}
	for ii := range m.dist {
		m.dist[ii] = Unreachable
	}
	frontier := make([]Pos, 0, b.width)
	for col := int8(0); col < b.width; col++ {
		pos := Pos{goalRow, col}
		m.dist[b.index(pos)] = 0
		frontier = append(frontier, pos)
	}
	var next []Pos
	for dist := int16(1); len(frontier) > 0; dist++ {
		next = next[:0]
		for _, pos := range frontier {
			for _, dir := range Directions {
				if !b.Open(pos, dir) {
					continue
				}
				neighborIdx := b.index(pos.Step(dir))
				if m.dist[neighborIdx] != Unreachable {
					continue
				}
				m.dist[neighborIdx] = dist
				next = append(next, pos.Step(dir))
			}
		}
		frontier, next = next, frontier
	}
	return m
}

// PlayerDistances returns the distance field to the player's goal row.
func (b *Board) PlayerDistances(player PlayerNum) *DistanceMap {
	return b.DistancesTo(b.GoalRow(player))
}

// DistanceToGoal returns the shortest number of steps from the player's pawn to its goal row,
// ignoring pawns, and whether the goal is reachable.
func (b *Board) DistanceToGoal(player PlayerNum) (int, bool) {
	return b.PlayerDistances(player).At(b.PawnPos(player))
}
