package engine

import "fmt"

// Board coordinate system:
// - Index: 0-8, row-major (index = row*3 + col)
// - Label: column letter A-C, row number 1-3 from the top
// - Example: index 0 -> A1, index 4 -> B2, index 7 -> B3

// Index converts a row and column (0-2) to a board index.
func Index(row, col int) int {
	return row*3 + col
}

// RowCol converts a board index to its row and column.
func RowCol(index int) (row, col int) {
	return index / 3, index % 3
}

// CellLabel returns the human readable coordinate of a cell, or "?" for
// an index outside the board.
func CellLabel(index int) string {
	if index < 0 || index >= BoardSize {
		return "?"
	}
	row, col := RowCol(index)
	return fmt.Sprintf("%c%d", 'A'+rune(col), row+1)
}

// Step moves a cursor index by dRow rows and dCol columns. A move that
// would cross the board edge leaves the index unchanged.
func Step(index, dRow, dCol int) int {
	row, col := RowCol(index)
	row += dRow
	col += dCol
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return index
	}
	return Index(row, col)
}
