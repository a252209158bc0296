package domain

import "fmt"

// Board is a plain value: copying it copies the whole grid.
// Outcome is never mutated after it is set, so copies may share it.
type Board struct {
	cells       [Rows][Columns]Piece
	CurrentTurn Piece
	Outcome     *Outcome
}

// columns are tried from the center outwards, the search relies on this order
var moveOrder = [Columns]int{3, 2, 4, 1, 5, 0, 6}

func NewBoard() Board {
	return Board{CurrentTurn: First}
}

// Insert drops the current player's disk into column (1..7).
// A column outside that range is a programming error and panics.
func (b *Board) Insert(column int) error {
	if column < 1 || column > Columns {
		panic(fmt.Sprintf("domain: column %d out of range", column))
	}

	if b.Outcome != nil {
		return ErrGameFinished
	}

	col := column - 1
	row, err := b.dropRow(col)
	if err != nil {
		return err
	}

	b.cells[row][col] = b.CurrentTurn
	b.updateOutcome()

	// the turn stays with the player who finished the game
	if b.Outcome == nil {
		b.CurrentTurn = b.CurrentTurn.Opponent()
	}
	return nil
}

// dropRow finds the lowest empty row of col
// here row 0 is the top and row 5 the floor
func (b *Board) dropRow(col int) (int, error) {
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			return row, nil
		}
	}
	return -1, ErrFilledSlot
}

func (b *Board) isSlotEmpty(col int) bool {
	return b.cells[0][col] == Empty
}

func (b *Board) isFull() bool {
	for c := 0; c < Columns; c++ {
		if b.isSlotEmpty(c) {
			return false
		}
	}
	return true
}

// ValidMoves returns the playable columns (1-indexed) in center-first order.
func (b *Board) ValidMoves() []int {
	moves := make([]int, 0, Columns)
	for _, col := range moveOrder {
		if b.isSlotEmpty(col) {
			moves = append(moves, col+1)
		}
	}
	return moves
}

func (b *Board) IsFinished() bool {
	return b.Outcome != nil
}

// Cell returns the piece at (row, col), both 0-indexed with row 0 at the top.
func (b *Board) Cell(row, col int) Piece {
	return b.cells[row][col]
}

// Height returns how many disks are stacked in column (1..7).
func (b *Board) Height(column int) int {
	h := 0
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column-1] == Empty {
			break
		}
		h++
	}
	return h
}

func (b *Board) MoveCount() int {
	count := 0
	for row := range b.cells {
		for _, p := range b.cells[row] {
			if p != Empty {
				count++
			}
		}
	}
	return count
}

// Grid exports the cells as 0 (empty), 1 (First) and 2 (Second).
func (b *Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for row := range b.cells {
		grid[row] = make([]int, Columns)
		for col, p := range b.cells[row] {
			grid[row][col] = int(p)
		}
	}
	return grid
}

// Replay rebuilds a board from a list of played columns.
// Unlike Insert it reports bad columns as errors since the list usually comes from storage.
func Replay(columns []int) (Board, error) {
	board := NewBoard()
	for i, column := range columns {
		if column < 1 || column > Columns {
			return board, fmt.Errorf("move %d (column %d): %w", i+1, column, ErrInvalidColumn)
		}
		if err := board.Insert(column); err != nil {
			return board, fmt.Errorf("move %d (column %d): %w", i+1, column, err)
		}
	}
	return board, nil
}
