package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewIdempotencyStore(client, ttl), mr
}

func TestIdempotencyStore_ReserveOnce(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	ok, err := store.Reserve(ctx, "POST:/api/patients:k1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "POST:/api/patients:k1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdempotencyStore_PendingLoadsNothing(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "k")
	require.NoError(t, err)

	resp, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestIdempotencyStore_SaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	want := StoredResponse{Status: 201, ContentType: "application/json", Body: []byte(`{"id":"x"}`)}
	require.NoError(t, store.Save(ctx, "k", want))

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestIdempotencyStore_ReleaseAllowsRetry(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	ok, err := store.Reserve(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, store.Release(ctx, "k"))

	ok, err = store.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIdempotencyStore_KeysExpire(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", StoredResponse{Status: 200}))
	mr.FastForward(2 * time.Minute)

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}
