package domain

// Piece is the tag of a disk. The zero value is an empty cell.
type Piece int

const (
	Empty  Piece = 0
	First  Piece = 1
	Second Piece = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// MaxGameScore is the sentinel score of a won position.
const MaxGameScore = 100000

// Value returns the sign the piece contributes to scores (+1 First, -1 Second).
func (p Piece) Value() int {
	switch p {
	case First:
		return 1
	case Second:
		return -1
	}
	return 0
}

// Opponent returns the other piece.
func (p Piece) Opponent() Piece {
	if p == First {
		return Second
	}
	return First
}

func (p Piece) String() string {
	switch p {
	case First:
		return "■"
	case Second:
		return "●"
	}
	return " "
}

// Outcome is attached to a board once the game has ended.
// An Empty winner means the game was a draw.
type Outcome struct {
	winner Piece
}

func Win(p Piece) *Outcome {
	return &Outcome{winner: p}
}

func Draw() *Outcome {
	return &Outcome{winner: Empty}
}

func (o Outcome) IsDraw() bool {
	return o.winner == Empty
}

// Winner reports the winning piece, false for a draw.
func (o Outcome) Winner() (Piece, bool) {
	return o.winner, o.winner != Empty
}

func (o Outcome) String() string {
	if o.IsDraw() {
		return "The game was a draw"
	}
	return "Winner is: " + o.winner.String()
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrFilledSlot    Error = "column is full"
	ErrGameFinished  Error = "game is already finished"
	ErrInvalidColumn Error = "column out of range"
)
