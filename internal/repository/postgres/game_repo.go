package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iamasit07/connect4-negamax/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// gameRow is a games table row with the JSON columns already encoded
type gameRow struct {
	GameID          string
	Moves           []byte
	HumanPiece      int
	Depth           int
	Status          string
	Winner          int
	TotalMoves      int
	DurationSeconds int
	BoardState      []byte
	CreatedAt       time.Time
	FinishedAt      time.Time
}

func toRow(rec domain.GameRecord) (gameRow, error) {
	movesJSON, err := json.Marshal(rec.Moves)
	if err != nil {
		return gameRow{}, fmt.Errorf("failed to marshal moves: %v", err)
	}

	board, err := rec.Board()
	if err != nil {
		return gameRow{}, err
	}
	boardJSON, err := json.Marshal(board.Grid())
	if err != nil {
		return gameRow{}, fmt.Errorf("failed to marshal board state: %v", err)
	}

	finishedAt := rec.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	return gameRow{
		GameID:          rec.GameID,
		Moves:           movesJSON,
		HumanPiece:      int(rec.HumanPiece),
		Depth:           rec.Depth,
		Status:          string(rec.Status),
		Winner:          int(rec.Winner),
		TotalMoves:      len(rec.Moves),
		DurationSeconds: int(finishedAt.Sub(rec.CreatedAt).Seconds()),
		BoardState:      boardJSON,
		CreatedAt:       rec.CreatedAt,
		FinishedAt:      finishedAt,
	}, nil
}

func (row gameRow) record() (domain.GameRecord, error) {
	var moves []int
	if err := json.Unmarshal(row.Moves, &moves); err != nil {
		return domain.GameRecord{}, fmt.Errorf("failed to unmarshal moves of game %s: %v", row.GameID, err)
	}

	return domain.GameRecord{
		GameID:     row.GameID,
		Moves:      moves,
		HumanPiece: domain.Piece(row.HumanPiece),
		Depth:      row.Depth,
		Status:     domain.GameStatus(row.Status),
		Winner:     domain.Piece(row.Winner),
		CreatedAt:  row.CreatedAt,
		FinishedAt: row.FinishedAt,
	}, nil
}

// SaveGame upserts a finished game.
func (r *GameRepo) SaveGame(ctx context.Context, rec domain.GameRecord) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO games (game_id, moves, human_piece, depth, status, winner, total_moves, duration_seconds, board_state, created_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (game_id) DO UPDATE SET
		moves = EXCLUDED.moves,
		status = EXCLUDED.status,
		winner = EXCLUDED.winner,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		board_state = EXCLUDED.board_state,
		finished_at = EXCLUDED.finished_at;
	`

	_, err = r.DB.ExecContext(ctx, query, row.GameID, row.Moves, row.HumanPiece, row.Depth, row.Status,
		row.Winner, row.TotalMoves, row.DurationSeconds, row.BoardState, row.CreatedAt, row.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %v", err)
	}
	return nil
}

const selectGame = `
	SELECT game_id, moves, human_piece, depth, status, winner, total_moves,
	       duration_seconds, board_state, created_at, finished_at
	FROM games`

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (gameRow, error) {
	var row gameRow
	err := s.Scan(
		&row.GameID,
		&row.Moves,
		&row.HumanPiece,
		&row.Depth,
		&row.Status,
		&row.Winner,
		&row.TotalMoves,
		&row.DurationSeconds,
		&row.BoardState,
		&row.CreatedAt,
		&row.FinishedAt,
	)
	return row, err
}

// GetGameByID returns nil, nil when the game is not archived.
func (r *GameRepo) GetGameByID(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	row, err := scanRow(r.DB.QueryRowContext(ctx, selectGame+` WHERE game_id = $1;`, gameID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %v", err)
	}

	rec, err := row.record()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecentGames returns the latest finished games, newest first.
func (r *GameRepo) ListRecentGames(ctx context.Context, limit int) ([]domain.GameRecord, error) {
	rows, err := r.DB.QueryContext(ctx, selectGame+` ORDER BY finished_at DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %v", err)
	}
	defer rows.Close()

	var games []domain.GameRecord
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %v", err)
		}
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		games = append(games, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game history: %v", err)
	}
	return games, nil
}

// CleanupOldGames deletes games that finished more than olderThanDays ago.
func (r *GameRepo) CleanupOldGames(ctx context.Context, olderThanDays int) (int64, error) {
	query := `
	DELETE FROM games
	WHERE finished_at < NOW() - INTERVAL '1 day' * $1;
	`
	result, err := r.DB.ExecContext(ctx, query, olderThanDays)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old games: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %v", err)
	}

	return rowsAffected, nil
}
