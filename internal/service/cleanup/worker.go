package cleanup

import (
	"context"
	"log"
	"time"
)

// GameArchive is the part of the archive the worker needs.
type GameArchive interface {
	CleanupOldGames(ctx context.Context, olderThanDays int) (int64, error)
}

type Worker struct {
	Archive    GameArchive
	DaysToKeep int
}

func NewWorker(archive GameArchive, daysToKeep int) *Worker {
	return &Worker{Archive: archive, DaysToKeep: daysToKeep}
}

// Start runs a cleanup now and then every interval until ctx is done.
func (w *Worker) Start(ctx context.Context, interval time.Duration) {
	go w.RunCleanup(ctx)

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.RunCleanup(ctx)
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// RunCleanup deletes archived games older than DaysToKeep.
func (w *Worker) RunCleanup(ctx context.Context) (int64, error) {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")

	deletedCount, err := w.Archive.CleanupOldGames(ctx, w.DaysToKeep)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up archived games: %v", err)
		return 0, err
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d archived games older than %d days", deletedCount, w.DaysToKeep)
	}
	return deletedCount, nil
}
