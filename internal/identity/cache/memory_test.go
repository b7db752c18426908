package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/metorial/identity-core/internal/identity/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundtrip(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	got, err = m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), -time.Second))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryInvalidate(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, m.Invalidate(ctx, "k"))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryInvalidateTag(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute, "user:1"))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Minute, "user:1", "user:2"))
	require.NoError(t, m.Set(ctx, "c", []byte("3"), time.Minute, "user:2"))

	require.NoError(t, m.InvalidateTag(ctx, "user:1"))

	for key, want := range map[string][]byte{"a": nil, "b": nil, "c": []byte("3")} {
		got, err := m.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}
}
