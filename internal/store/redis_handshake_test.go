package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func newTestRedisHandshakeRepo(t *testing.T, now time.Time) (*redisHandshakeRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewRedisHandshakeRepository(client, fixedIDs{id: "h-1"}, logger.Nop()).(*redisHandshakeRepository)
	repo.now = func() time.Time { return now }
	return repo, mr
}

func TestRedisHandshake_CreateSetsTTL(t *testing.T) {
	now := time.Now()
	repo, mr := newTestRedisHandshakeRepo(t, now)

	h, err := repo.CreateHandshake(context.Background(), models.Handshake{
		SenderID:  "u-1",
		ExpiresAt: now.Add(5 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "h-1", h.ID)

	assert.True(t, mr.Exists("handshake:h-1"))
	assert.Equal(t, 5*time.Minute, mr.TTL("handshake:h-1"))
}

func TestRedisHandshake_FindRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	repo, _ := newTestRedisHandshakeRepo(t, now)
	ctx := context.Background()

	_, err := repo.CreateHandshake(ctx, models.Handshake{SenderID: "u-1", ExpiresAt: now.Add(time.Minute)})
	require.NoError(t, err)

	found, err := repo.FindHandshakeByID(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.SenderID)
	assert.True(t, found.ExpiresAt.Equal(now.Add(time.Minute)))
}

func TestRedisHandshake_ExpiresNatively(t *testing.T) {
	now := time.Now()
	repo, mr := newTestRedisHandshakeRepo(t, now)
	ctx := context.Background()

	_, err := repo.CreateHandshake(ctx, models.Handshake{SenderID: "u-1", ExpiresAt: now.Add(5 * time.Minute)})
	require.NoError(t, err)

	mr.FastForward(5*time.Minute + time.Second)

	_, err = repo.FindHandshakeByID(ctx, "h-1")
	assert.ErrorIs(t, err, ErrHandshakeNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRedisHandshake_FindRejectsPastExpiry(t *testing.T) {
	now := time.Now()
	repo, _ := newTestRedisHandshakeRepo(t, now)
	ctx := context.Background()

	_, err := repo.CreateHandshake(ctx, models.Handshake{SenderID: "u-1", ExpiresAt: now.Add(time.Minute)})
	require.NoError(t, err)

	// the key is still there but the clock has moved past ExpiresAt
	repo.now = func() time.Time { return now.Add(time.Minute) }

	_, err = repo.FindHandshakeByID(ctx, "h-1")
	assert.ErrorIs(t, err, ErrHandshakeNotFound)
}

func TestRedisHandshake_CreateRejectsPastExpiry(t *testing.T) {
	now := time.Now()
	repo, mr := newTestRedisHandshakeRepo(t, now)

	_, err := repo.CreateHandshake(context.Background(), models.Handshake{SenderID: "u-1", ExpiresAt: now})
	assert.ErrorIs(t, err, ErrHandshakeAlreadyExpired)
	assert.False(t, mr.Exists("handshake:h-1"))
}

func TestRedisHandshake_Delete(t *testing.T) {
	now := time.Now()
	repo, mr := newTestRedisHandshakeRepo(t, now)
	ctx := context.Background()

	_, err := repo.CreateHandshake(ctx, models.Handshake{SenderID: "u-1", ExpiresAt: now.Add(time.Minute)})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteHandshake(ctx, "h-1"))
	assert.False(t, mr.Exists("handshake:h-1"))

	// deleting twice is fine
	require.NoError(t, repo.DeleteHandshake(ctx, "h-1"))
}

func TestRedisHandshake_DeleteExpiredIsNoop(t *testing.T) {
	repo, _ := newTestRedisHandshakeRepo(t, time.Now())

	removed, err := repo.DeleteExpiredHandshakes(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRedisHandshake_BackendError(t *testing.T) {
	repo, mr := newTestRedisHandshakeRepo(t, time.Now())
	mr.SetError("server down")

	_, err := repo.FindHandshakeByID(context.Background(), "h-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrHandshakeNotFound)
}
