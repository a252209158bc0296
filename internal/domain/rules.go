package domain

type line struct {
	x, y   int
	dx, dy int
}

// every 4-cell line of the grid: 24 horizontal, 21 vertical, 12 per diagonal
var lines = buildLines()

func buildLines() []line {
	all := make([]line, 0, 69)

	// Horizontal
	for y := 0; y < Rows; y++ {
		for x := 0; x <= Columns-ToWin; x++ {
			all = append(all, line{x, y, 1, 0})
		}
	}

	// Vertical
	for y := 0; y <= Rows-ToWin; y++ {
		for x := 0; x < Columns; x++ {
			all = append(all, line{x, y, 0, 1})
		}
	}

	// Diagonal going down to the right
	for y := 0; y <= Rows-ToWin; y++ {
		for x := 0; x <= Columns-ToWin; x++ {
			all = append(all, line{x, y, 1, 1})
		}
	}

	// Diagonal going up to the right
	for y := ToWin - 1; y < Rows; y++ {
		for x := 0; x <= Columns-ToWin; x++ {
			all = append(all, line{x, y, 1, -1})
		}
	}

	return all
}

// Score evaluates the 4-cell line starting at column x, row y, stepping by (dx, dy).
// The result is from First's perspective. Once the board has a winner every line
// reports the winner's sentinel.
func (b *Board) Score(x, y, dx, dy int) int {
	if s, ok := b.winnerScore(); ok {
		return s
	}
	return b.lineScore(x, y, dx, dy)
}

func (b *Board) winnerScore() (int, bool) {
	if b.Outcome == nil {
		return 0, false
	}
	winner, ok := b.Outcome.Winner()
	if !ok {
		return 0, false
	}
	return MaxGameScore * winner.Value(), true
}

func (b *Board) lineScore(x, y, dx, dy int) int {
	firstCount, secondCount := 0, 0
	for i := 0; i < ToWin; i++ {
		switch b.cells[y][x] {
		case First:
			firstCount++
		case Second:
			secondCount++
		}
		x += dx
		y += dy
	}

	if firstCount == ToWin {
		return MaxGameScore
	}
	if secondCount == ToWin {
		return -MaxGameScore
	}
	return firstCount - secondCount
}

// TotalScore is the static evaluation of the board from First's perspective.
// It returns ±MaxGameScore as soon as any line is complete.
func (b *Board) TotalScore() int {
	if s, ok := b.winnerScore(); ok {
		return s
	}

	total := 0
	for _, l := range lines {
		s := b.lineScore(l.x, l.y, l.dx, l.dy)
		if s == MaxGameScore || s == -MaxGameScore {
			return s
		}
		total += s
	}
	return total
}

// updateOutcome runs after every successful insertion.
// A winning line overrides the draw set for a full board.
func (b *Board) updateOutcome() {
	if b.Outcome != nil {
		return
	}

	if b.isFull() {
		b.Outcome = Draw()
	}

	switch b.TotalScore() {
	case MaxGameScore:
		b.Outcome = Win(First)
	case -MaxGameScore:
		b.Outcome = Win(Second)
	}
}
