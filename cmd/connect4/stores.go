package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iamasit07/connect4-negamax/internal/config"
	"github.com/iamasit07/connect4-negamax/internal/repository/postgres"
	"github.com/iamasit07/connect4-negamax/internal/repository/redis"
	"github.com/iamasit07/connect4-negamax/internal/service/cleanup"
	"github.com/iamasit07/connect4-negamax/internal/service/game"
)

var errNoDatabase = errors.New("DATABASE_URL is not set")

func openArchive(cfg *config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errNoDatabase
	}

	db, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
	if err != nil {
		return nil, err
	}

	log.Println("[DB] Running database migrations...")
	if err := postgres.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// newService wires whichever stores are configured. Missing or unreachable
// stores are logged and the game runs without them.
func newService(ctx context.Context, cfg *config.Config) (*game.Service, func()) {
	svc := game.NewService(nil, nil)
	var closers []func() error

	if cfg.DatabaseURL != "" {
		db, err := openArchive(cfg)
		if err != nil {
			log.Printf("[DB] Archive disabled: %v", err)
		} else {
			repo := postgres.NewGameRepo(db)
			svc.Repo = repo
			closers = append(closers, db.Close)

			if cfg.ArchiveRetentionDays > 0 {
				cleanup.NewWorker(repo, cfg.ArchiveRetentionDays).Start(ctx, time.Hour)
			}
		}
	}

	if cfg.RedisURL != "" {
		if client := redis.InitRedis(ctx, cfg.RedisURL, cfg.RedisPassword); client != nil {
			svc.Snapshots = redis.NewSnapshotStore(client)
			closers = append(closers, client.Close)
		}
	}

	return svc, func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("[GAME] Error closing store: %v", err)
			}
		}
	}
}

func startMetrics(addr string) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		log.Printf("[METRICS] Serving on %s/metrics", addr)
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Printf("[METRICS] Server error: %v", err)
		}
	}()
}
