package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guinchoja/backend/internal/pkg/database"
)

func setupRepo(t *testing.T) (*DispatchRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDispatchRepo(database.NewRedisClientFrom(client)), mr
}

func TestAcquireActive_OnlyFirstWins(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	ok, err := repo.AcquireActive(ctx, "req-1", "pending")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireActive(ctx, "req-1", "pending")
	require.NoError(t, err)
	assert.False(t, ok)

	// A different requester is unaffected.
	ok, err = repo.AcquireActive(ctx, "req-2", "pending")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecordActive_RekeysSlot(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AcquireActive(ctx, "req-1", "pending")
	require.NoError(t, err)
	require.NoError(t, repo.RecordActive(ctx, "req-1", "42"))

	id, err := repo.ActiveRequestID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestActiveRequestID_EmptyWhenFree(t *testing.T) {
	repo, _ := setupRepo(t)

	id, err := repo.ActiveRequestID(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestReleaseActive_FreesSlot(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AcquireActive(ctx, "req-1", "42")
	require.NoError(t, err)
	require.NoError(t, repo.ReleaseActive(ctx, "req-1"))

	ok, err := repo.AcquireActive(ctx, "req-1", "43")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAcquireActive_SlotExpires(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	_, err := repo.AcquireActive(ctx, "req-1", "42")
	require.NoError(t, err)

	// A crashed client cannot hold the slot past the backstop TTL.
	mr.FastForward(activeSlotTTL + time.Minute)

	ok, err := repo.AcquireActive(ctx, "req-1", "43")
	require.NoError(t, err)
	assert.True(t, ok)
}
