package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Unreachable(t *testing.T) {
	rc := NewRedisCache("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rc.Connect(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")

	assert.Error(t, rc.Ping(ctx))

	var dest []string
	found, err := rc.Get(ctx, "timeline:entries:list", &dest)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	rc := NewRedisCache("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	// No round trip for an empty key list.
	assert.NoError(t, rc.Delete(context.Background()))
}

func TestRedisCache_SetRejectsUnencodable(t *testing.T) {
	rc := NewRedisCache("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	err := rc.Set(context.Background(), "k", make(chan int), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis encode")
}
