package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T) (SessionStore, *miniredis.Miniredis) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSessionStore(client, log), mr
}

func TestRedisSessionStore_SaveAndRevoke(t *testing.T) {
	store, mr := newTestSessionStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, userID, "token-a", 30*time.Minute))
	assert.Equal(t, 30*time.Minute, mr.TTL(sessionKey(userID, "token-a")))

	ok, err := store.Exists(ctx, userID, "token-a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, uuid.New(), "token-a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Revoke(ctx, userID, "token-a"))
	ok, err = store.Exists(ctx, userID, "token-a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSessionStore_Expiry(t *testing.T) {
	store, mr := newTestSessionStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, userID, "short", time.Minute))
	mr.FastForward(2 * time.Minute)

	ok, err := store.Exists(ctx, userID, "short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSessionStore_RevokeAll(t *testing.T) {
	store, mr := newTestSessionStore(t)
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	// more keys than one SCAN page
	for i := 0; i < 250; i++ {
		require.NoError(t, store.Save(ctx, userID, uuid.NewString(), time.Hour))
	}
	require.NoError(t, store.Save(ctx, userID, "kept-until-revoke", time.Hour))
	require.NoError(t, store.Save(ctx, otherID, "other-token", time.Hour))

	require.NoError(t, store.RevokeAll(ctx, userID))

	ok, err := store.Exists(ctx, userID, "kept-until-revoke")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{sessionKey(otherID, "other-token")}, mr.Keys())

	ok, err = store.Exists(ctx, otherID, "other-token")
	require.NoError(t, err)
	assert.True(t, ok)

	// a user without sessions is a no-op
	require.NoError(t, store.RevokeAll(ctx, uuid.New()))
}

func TestRedisSessionStore_ServerDown(t *testing.T) {
	store, mr := newTestSessionStore(t)
	mr.Close()

	_, err := store.Exists(context.Background(), uuid.New(), "token")
	assert.Error(t, err)
	assert.Error(t, store.RevokeAll(context.Background(), uuid.New()))
}
