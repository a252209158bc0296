package domain

import "strings"

const (
	boardHeader = " 1 2 3 4 5 6 7"
	boardFooter = "==============="
)

// String draws the grid top row first, one glyph per cell.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(boardHeader)
	sb.WriteByte('\n')
	for row := 0; row < Rows; row++ {
		sb.WriteByte('|')
		for col := 0; col < Columns; col++ {
			sb.WriteString(b.cells[row][col].String())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(boardFooter)
	return sb.String()
}
