package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/iamasit07/connect4-negamax/internal/domain"
)

var (
	ErrSnapshotNotFound = errors.New("no saved game with that id")
	ErrNoSnapshotStore  = errors.New("snapshot store is not configured")
)

// GameRepository archives finished games.
type GameRepository interface {
	SaveGame(ctx context.Context, rec domain.GameRecord) error
}

// SnapshotStore keeps games in progress so they can be resumed.
type SnapshotStore interface {
	Save(ctx context.Context, rec domain.GameRecord) error
	Load(ctx context.Context, gameID string) (*domain.GameRecord, error)
	Delete(ctx context.Context, gameID string) error
}

// Service is the entry point for game logic. Both stores are optional.
type Service struct {
	Repo      GameRepository
	Snapshots SnapshotStore
}

func NewService(repo GameRepository, snapshots SnapshotStore) *Service {
	return &Service{
		Repo:      repo,
		Snapshots: snapshots,
	}
}

func (svc *Service) Start(depth int, humanPiece domain.Piece) (*Session, error) {
	s, err := NewSession(depth, humanPiece)
	if err != nil {
		return nil, err
	}
	log.Printf("[GAME] Started game %s (depth %d, human %v)", s.GameID, s.Depth, s.HumanPiece)
	return s, nil
}

// Resume loads a game in progress from the snapshot store.
func (svc *Service) Resume(ctx context.Context, gameID string) (*Session, error) {
	if svc.Snapshots == nil {
		return nil, ErrNoSnapshotStore
	}

	rec, err := svc.Snapshots.Load(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game %s: %w", gameID, err)
	}
	if rec == nil {
		return nil, ErrSnapshotNotFound
	}

	s, err := SessionFromRecord(*rec)
	if err != nil {
		return nil, err
	}
	log.Printf("[GAME] Resumed game %s after %d moves", s.GameID, len(s.Moves))
	return s, nil
}

// Checkpoint persists the session after a move: a snapshot while the game is
// running, the archive once it has finished. Store failures are logged only.
func (svc *Service) Checkpoint(ctx context.Context, s *Session) {
	rec := s.Record()

	if !s.IsFinished() {
		if svc.Snapshots == nil {
			return
		}
		if err := svc.Snapshots.Save(ctx, rec); err != nil {
			log.Printf("[GAME] Error saving snapshot of game %s: %v", s.GameID, err)
		}
		return
	}

	if svc.Snapshots != nil {
		if err := svc.Snapshots.Delete(ctx, s.GameID); err != nil {
			log.Printf("[GAME] Error deleting snapshot of game %s: %v", s.GameID, err)
		}
	}

	if svc.Repo == nil {
		return
	}
	if err := svc.Repo.SaveGame(ctx, rec); err != nil {
		log.Printf("[GAME] Error saving game %s: %v", s.GameID, err)
		return
	}
	log.Printf("[GAME] Game %s saved successfully", s.GameID)
}
