package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iamasit07/connect4-negamax/internal/domain"
)

const snapshotKeyPrefix = "game:snapshot:"
const snapshotTTL = 7 * 24 * time.Hour

// SnapshotStore keeps games in progress as JSON records.
type SnapshotStore struct {
	client *redis.Client
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func snapshotKey(gameID string) string {
	return snapshotKeyPrefix + gameID
}

func encodeSnapshot(rec domain.GameRecord) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (*domain.GameRecord, error) {
	var rec domain.GameRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &rec, nil
}

func (s *SnapshotStore) Save(ctx context.Context, rec domain.GameRecord) error {
	data, err := encodeSnapshot(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey(rec.GameID), data, snapshotTTL).Err()
}

// Load returns nil, nil when no snapshot exists.
func (s *SnapshotStore) Load(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	data, err := s.client.Get(ctx, snapshotKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(data)
}

func (s *SnapshotStore) Delete(ctx context.Context, gameID string) error {
	return s.client.Del(ctx, snapshotKey(gameID)).Err()
}
