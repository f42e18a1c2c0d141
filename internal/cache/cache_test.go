package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient_SetGet(t *testing.T) {
	client := NewMemoryClient(10)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", []byte("v1"), time.Minute))

	got, err := client.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}

func TestMemoryClient_MissReturnsErrCacheMiss(t *testing.T) {
	client := NewMemoryClient(10)

	_, err := client.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_Expiry(t *testing.T) {
	client := NewMemoryClient(10)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", []byte("v1"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := client.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_Delete(t *testing.T) {
	client := NewMemoryClient(10)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", []byte("v1"), time.Minute))
	require.NoError(t, client.Delete(ctx, "k1"))

	_, err := client.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_EvictsWhenFull(t *testing.T) {
	client := NewMemoryClient(2)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", []byte("v1"), time.Minute))
	require.NoError(t, client.Set(ctx, "k2", []byte("v2"), time.Minute))
	require.NoError(t, client.Set(ctx, "k3", []byte("v3"), time.Minute))

	assert.LessOrEqual(t, client.Len(), 2)

	// The newest entry always survives.
	got, err := client.Get(ctx, "k3")
	require.NoError(t, err)
	assert.Equal(t, []byte("v3"), got)
}

func TestKey_DeterministicAndDistinct(t *testing.T) {
	a := Key("answer", "query", "en")
	b := Key("answer", "query", "en")
	c := Key("answer", "query", "ta")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
