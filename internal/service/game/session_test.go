package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-negamax/internal/domain"
	"github.com/iamasit07/connect4-negamax/internal/service/bot"
)

type memoryRepo struct {
	saved []domain.GameRecord
	err   error
}

func (m *memoryRepo) SaveGame(_ context.Context, rec domain.GameRecord) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, rec)
	return nil
}

type memorySnapshots struct {
	records map[string]domain.GameRecord
	deleted []string
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{records: map[string]domain.GameRecord{}}
}

func (m *memorySnapshots) Save(_ context.Context, rec domain.GameRecord) error {
	m.records[rec.GameID] = rec
	return nil
}

func (m *memorySnapshots) Load(_ context.Context, gameID string) (*domain.GameRecord, error) {
	rec, ok := m.records[gameID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memorySnapshots) Delete(_ context.Context, gameID string) error {
	delete(m.records, gameID)
	m.deleted = append(m.deleted, gameID)
	return nil
}

func TestNewSessionValidatesDepth(t *testing.T) {
	_, err := NewSession(1, domain.First)
	assert.ErrorIs(t, err, bot.ErrDepthOutOfRange)

	s, err := NewSession(bot.MinDepth, domain.First)
	require.NoError(t, err)
	assert.Len(t, s.GameID, 32)
	assert.False(t, s.IsBotTurn())
}

func TestSessionAlternatesHumanAndBot(t *testing.T) {
	s, err := NewSession(2, domain.First)
	require.NoError(t, err)

	require.NoError(t, s.PlayHuman(4))
	assert.True(t, s.IsBotTurn())
	assert.ErrorIs(t, s.PlayHuman(3), ErrNotYourTurn)

	result, err := s.PlayBot()
	require.NoError(t, err)
	assert.Contains(t, []int{1, 2, 3, 4, 5, 6, 7}, result.Column)
	assert.Equal(t, []int{4, result.Column}, s.Moves)

	_, err = s.PlayBot()
	assert.ErrorIs(t, err, ErrNotBotTurn)
}

func TestSessionFilledSlotKeepsState(t *testing.T) {
	s, err := NewSession(2, domain.Empty)
	require.NoError(t, err)
	for _, column := range []int{1, 1, 1, 2, 1, 1, 1} {
		require.NoError(t, s.apply(column))
	}

	s.HumanPiece = s.Board.CurrentTurn
	before := s.Board
	err = s.PlayHuman(1)

	assert.ErrorIs(t, err, domain.ErrFilledSlot)
	assert.Equal(t, before, s.Board)
	assert.Len(t, s.Moves, 7)
}

func TestSessionBotVersusBotFinishes(t *testing.T) {
	s, err := NewSession(2, domain.Empty)
	require.NoError(t, err)

	for i := 0; i < domain.Rows*domain.Columns && !s.IsFinished(); i++ {
		_, err := s.PlayBot()
		require.NoError(t, err)
	}

	require.True(t, s.IsFinished())
	assert.False(t, s.FinishedAt.IsZero())

	_, err = s.PlayBot()
	assert.ErrorIs(t, err, domain.ErrGameFinished)
	assert.ErrorIs(t, s.PlayHuman(1), domain.ErrGameFinished)

	rec := s.Record()
	assert.NotEqual(t, domain.StatusActive, rec.Status)
	replayed, err := rec.Board()
	require.NoError(t, err)
	assert.Equal(t, s.Board.Grid(), replayed.Grid())
}

func TestSessionBotTakesWin(t *testing.T) {
	s, err := NewSession(2, domain.First)
	require.NoError(t, err)

	// human stacks column 1, the bot already holds three in column 7
	for _, column := range []int{1, 7, 2, 7, 1, 7} {
		require.NoError(t, s.apply(column))
	}
	require.NoError(t, s.PlayHuman(3))

	result, err := s.PlayBot()
	require.NoError(t, err)
	assert.Equal(t, 7, result.Column)

	status, winner := domain.StatusOf(&s.Board)
	assert.Equal(t, domain.StatusWon, status)
	assert.Equal(t, domain.Second, winner)
}

func TestServiceCheckpointAndResume(t *testing.T) {
	repo := &memoryRepo{}
	snaps := newMemorySnapshots()
	svc := NewService(repo, snaps)
	ctx := context.Background()

	s, err := svc.Start(2, domain.First)
	require.NoError(t, err)
	require.NoError(t, s.PlayHuman(4))
	svc.Checkpoint(ctx, s)

	require.Contains(t, snaps.records, s.GameID)
	assert.Empty(t, repo.saved)

	resumed, err := svc.Resume(ctx, s.GameID)
	require.NoError(t, err)
	assert.Equal(t, s.Moves, resumed.Moves)
	assert.Equal(t, s.Board, resumed.Board)
	assert.True(t, resumed.IsBotTurn())

	_, err = svc.Resume(ctx, "missing")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestServiceArchivesFinishedGame(t *testing.T) {
	repo := &memoryRepo{}
	snaps := newMemorySnapshots()
	svc := NewService(repo, snaps)
	ctx := context.Background()

	s, err := svc.Start(2, domain.Empty)
	require.NoError(t, err)
	for !s.IsFinished() {
		_, err := s.PlayBot()
		require.NoError(t, err)
		svc.Checkpoint(ctx, s)
	}

	assert.NotContains(t, snaps.records, s.GameID)
	assert.Contains(t, snaps.deleted, s.GameID)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, s.Moves, repo.saved[0].Moves)
}

func TestServiceWithoutStores(t *testing.T) {
	svc := NewService(nil, nil)

	s, err := svc.Start(2, domain.First)
	require.NoError(t, err)
	require.NoError(t, s.PlayHuman(4))
	svc.Checkpoint(context.Background(), s)

	_, err = svc.Resume(context.Background(), s.GameID)
	assert.ErrorIs(t, err, ErrNoSnapshotStore)
}

func TestServiceRepoErrorIsNotFatal(t *testing.T) {
	repo := &memoryRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nil)

	s, err := svc.Start(2, domain.First)
	require.NoError(t, err)
	for _, column := range []int{1, 7, 1, 7, 1, 7, 1} {
		require.NoError(t, s.apply(column))
	}
	require.True(t, s.IsFinished())

	assert.NotPanics(t, func() { svc.Checkpoint(context.Background(), s) })
	assert.Empty(t, repo.saved)
}
