package state

import (
	"fmt"
	"strings"
)

// PawnGlyphs used in text rendering of the board, indexed by PlayerNum. The last one is for empty cells.
var PawnGlyphs = [NumPlayers + 1]string{"1", "2", "."}

// String renders the board as plain text: pawns as "1" and "2", walls as "|" between columns and
// "-" between rows, and "+" on the crossing where a wall is anchored.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := int8(0); col < b.width; col++ {
		_, _ = fmt.Fprintf(&sb, "%-2d", col%100)
	}
	sb.WriteByte('\n')
	for row := int8(0); row < b.height; row++ {
		_, _ = fmt.Fprintf(&sb, "%2d ", row)
		for col := int8(0); col < b.width; col++ {
			cell := b.CellAt(Pos{row, col})
			sb.WriteString(PawnGlyphs[cell.occupant])
			if col < b.width-1 {
				if cell.blocksEast {
					sb.WriteByte('|')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
		if row == b.height-1 {
			break
		}
		sb.WriteString("   ")
		for col := int8(0); col < b.width; col++ {
			cell := b.CellAt(Pos{row, col})
			if cell.blocksSouth {
				sb.WriteByte('-')
			} else {
				sb.WriteByte(' ')
			}
			if col < b.width-1 {
				if cell.wallOrigin {
					sb.WriteByte('+')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
	}
	for p := PlayerFirst; p < NumPlayers; p++ {
		_, _ = fmt.Fprintf(&sb, "%s at %s, goal row %d, %d walls left\n",
			p, b.PawnPos(p), b.GoalRow(p), b.WallsLeft(p))
	}
	return sb.String()
}
