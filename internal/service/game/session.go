package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/connect4-negamax/internal/domain"
	"github.com/iamasit07/connect4-negamax/internal/service/bot"
	"github.com/iamasit07/connect4-negamax/pkg/uid"
)

var (
	ErrNotYourTurn = errors.New("it is the bot's turn")
	ErrNotBotTurn  = errors.New("it is the human's turn")
)

// Session is one game between a human and the bot, or between two bots when
// HumanPiece is domain.Empty.
type Session struct {
	GameID     string
	Board      domain.Board
	Moves      []int
	HumanPiece domain.Piece
	Depth      int
	CreatedAt  time.Time
	FinishedAt time.Time
	searcher   *bot.Searcher
}

func NewSession(depth int, humanPiece domain.Piece) (*Session, error) {
	if err := bot.ValidateDepth(depth); err != nil {
		return nil, err
	}

	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	return &Session{
		GameID:     gameID,
		Board:      domain.NewBoard(),
		HumanPiece: humanPiece,
		Depth:      depth,
		CreatedAt:  time.Now(),
		searcher:   bot.NewSearcher(),
	}, nil
}

// SessionFromRecord rebuilds a session by replaying the stored moves.
func SessionFromRecord(rec domain.GameRecord) (*Session, error) {
	if err := bot.ValidateDepth(rec.Depth); err != nil {
		return nil, fmt.Errorf("game %s: %w", rec.GameID, err)
	}

	board, err := rec.Board()
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", rec.GameID, err)
	}

	return &Session{
		GameID:     rec.GameID,
		Board:      board,
		Moves:      append([]int(nil), rec.Moves...),
		HumanPiece: rec.HumanPiece,
		Depth:      rec.Depth,
		CreatedAt:  rec.CreatedAt,
		FinishedAt: rec.FinishedAt,
		searcher:   bot.NewSearcher(),
	}, nil
}

func (s *Session) IsFinished() bool {
	return s.Board.IsFinished()
}

func (s *Session) IsBotTurn() bool {
	return s.HumanPiece == domain.Empty || s.Board.CurrentTurn != s.HumanPiece
}

// PlayHuman applies the human's move. Board errors are returned unchanged
// so callers can match domain.ErrFilledSlot and domain.ErrGameFinished.
func (s *Session) PlayHuman(column int) error {
	if s.IsFinished() {
		return domain.ErrGameFinished
	}
	if s.IsBotTurn() {
		return ErrNotYourTurn
	}
	return s.apply(column)
}

// PlayBot searches the current position and plays the chosen column.
func (s *Session) PlayBot() (bot.Result, error) {
	if s.IsFinished() {
		return bot.Result{}, domain.ErrGameFinished
	}
	if !s.IsBotTurn() {
		return bot.Result{}, ErrNotBotTurn
	}

	result, err := s.searcher.Search(s.Board, s.Depth)
	if err != nil {
		return result, err
	}

	if err := s.apply(result.Column); err != nil {
		// the searcher only returns playable columns
		return result, fmt.Errorf("bot move %d rejected: %w", result.Column, err)
	}

	log.Printf("[BOT] Game %s: played column %d (value %d, nodes %d, %v)",
		s.GameID, result.Column, result.Value, result.Nodes, result.Elapsed)
	return result, nil
}

func (s *Session) apply(column int) error {
	if err := s.Board.Insert(column); err != nil {
		return err
	}
	s.Moves = append(s.Moves, column)
	if s.IsFinished() {
		s.FinishedAt = time.Now()
	}
	return nil
}

func (s *Session) Record() domain.GameRecord {
	status, winner := domain.StatusOf(&s.Board)
	return domain.GameRecord{
		GameID:     s.GameID,
		Moves:      append([]int(nil), s.Moves...),
		HumanPiece: s.HumanPiece,
		Depth:      s.Depth,
		Status:     status,
		Winner:     winner,
		CreatedAt:  s.CreatedAt,
		FinishedAt: s.FinishedAt,
	}
}
