package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCount(t *testing.T) {
	assert.Len(t, lines, 69)

	counts := map[[2]int]int{}
	for _, l := range lines {
		counts[[2]int{l.dx, l.dy}]++
	}
	assert.Equal(t, 24, counts[[2]int{1, 0}])
	assert.Equal(t, 21, counts[[2]int{0, 1}])
	assert.Equal(t, 12, counts[[2]int{1, 1}])
	assert.Equal(t, 12, counts[[2]int{1, -1}])
}

func TestScoreCountsPieces(t *testing.T) {
	// bottom row: F S F . . . .
	b := play(t, 1, 2, 3)

	assert.Equal(t, 1, b.Score(0, Rows-1, 1, 0))
	assert.Equal(t, 0, b.Score(1, Rows-1, 1, 0))
	assert.Equal(t, 1, b.Score(2, Rows-1, 1, 0))
	assert.Equal(t, 0, b.Score(3, Rows-1, 1, 0))
	assert.Equal(t, 0, b.Score(0, 0, 1, 0))
}

func TestScoreCompleteLine(t *testing.T) {
	b := NewBoard()
	for col := 0; col < ToWin; col++ {
		b.cells[Rows-1][col] = Second
	}

	assert.Equal(t, -MaxGameScore, b.Score(0, Rows-1, 1, 0))
	assert.Equal(t, -3, b.Score(1, Rows-1, 1, 0))
	assert.Equal(t, -MaxGameScore, b.TotalScore())
}

func TestScoreWinnerOverridesEveryLine(t *testing.T) {
	b := play(t, 1, 7, 1, 7, 1, 7, 1)
	require.NotNil(t, b.Outcome)

	// the top-left line is empty but still reports the winner
	assert.Equal(t, MaxGameScore, b.Score(0, 0, 1, 0))
	assert.Equal(t, MaxGameScore, b.Score(6, 0, 0, 1))
	assert.Equal(t, MaxGameScore, b.Score(3, 5, 1, -1))
}

func TestTotalScore(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, b.TotalScore())

	// a center disk on the floor sits on 7 lines
	require.NoError(t, b.Insert(4))
	assert.Equal(t, 7, b.TotalScore())

	// Second on top of it cancels the shared vertical line and adds its own
	require.NoError(t, b.Insert(4))
	assert.Less(t, b.TotalScore(), 7)
}

func TestTotalScoreBounded(t *testing.T) {
	b := play(t, drawMoves...)
	b.Outcome = nil

	score := b.TotalScore()
	assert.LessOrEqual(t, score, len(lines)*ToWin)
	assert.GreaterOrEqual(t, score, -len(lines)*ToWin)
}

func TestWinBeatsDrawOnFullBoard(t *testing.T) {
	b := play(t, drawMoves...)
	require.True(t, b.Outcome.IsDraw())

	b.Outcome = nil
	for col := 0; col < ToWin; col++ {
		b.cells[Rows-1][col] = First
	}
	b.updateOutcome()

	require.NotNil(t, b.Outcome)
	winner, ok := b.Outcome.Winner()
	assert.True(t, ok)
	assert.Equal(t, First, winner)
}

func TestRender(t *testing.T) {
	b := play(t, 4, 3)

	want := " 1 2 3 4 5 6 7\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | |●|■| | | |\n" +
		"==============="
	assert.Equal(t, want, b.String())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "The game was a draw", Draw().String())
	assert.Equal(t, "Winner is: ■", Win(First).String())
	assert.Equal(t, "Winner is: ●", Win(Second).String())
}

func TestPiece(t *testing.T) {
	assert.Equal(t, 1, First.Value())
	assert.Equal(t, -1, Second.Value())
	assert.Equal(t, Second, First.Opponent())
	assert.Equal(t, First, Second.Opponent())
}
