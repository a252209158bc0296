package domain

import "time"

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// GameRecord is the stored form of a game: the board is rebuilt from Moves.
type GameRecord struct {
	GameID     string     `json:"game_id"`
	Moves      []int      `json:"moves"`
	HumanPiece Piece      `json:"human_piece"`
	Depth      int        `json:"depth"`
	Status     GameStatus `json:"status"`
	Winner     Piece      `json:"winner"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt time.Time  `json:"finished_at,omitzero"`
}

// StatusOf maps a board's outcome to a status and winner.
func StatusOf(b *Board) (GameStatus, Piece) {
	if b.Outcome == nil {
		return StatusActive, Empty
	}
	if winner, ok := b.Outcome.Winner(); ok {
		return StatusWon, winner
	}
	return StatusDraw, Empty
}

// Board replays the record's moves.
func (r GameRecord) Board() (Board, error) {
	return Replay(r.Moves)
}
