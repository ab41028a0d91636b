package session

import (
	"context"
	"testing"

	"craft-planner/core/pool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s, err := store.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.True(t, s.Pool.IsEmpty())

	updated, err := store.SavePool(ctx, s.ID, pool.New(map[string]float64{"Planks": 3}))
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.Pool.Get("Planks"))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Pool.Get("Planks"))

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, s.ID), ErrNotFound)
	_, err = store.SavePool(ctx, s.ID, pool.Pool{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNew(t *testing.T) {
	store, err := New(Config{Store: StoreMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = New(Config{Store: StoreRedis, RedisAddr: "localhost:6379", TTLHours: 1}, nil)
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, store)

	_, err = New(Config{Store: StoreDatabase}, nil)
	assert.Error(t, err)

	_, err = New(Config{Store: "etcd"}, nil)
	assert.EqualError(t, err, "unknown session store: etcd")
}
