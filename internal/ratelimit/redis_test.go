package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a real Redis, e.g. TEST_REDIS_ADDRESS=localhost:6379.
func TestRedisLimiter(t *testing.T) {
	address := os.Getenv("TEST_REDIS_ADDRESS")
	if address == "" {
		t.Skip("TEST_REDIS_ADDRESS is not set")
	}

	ctx := context.Background()
	l, err := NewRedisLimiter(ctx, address, 2, time.Minute)
	require.NoError(t, err)
	defer l.Close()

	key := uuid.NewString()
	defer l.client.Del(ctx, redisKeyPrefix+key)

	for i := 0; i < 2; i++ {
		allowed, _, err := l.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := l.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)
}

func TestNewRedisLimiter_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisLimiter(ctx, "127.0.0.1:1", 1, time.Minute)
	assert.Error(t, err)
}
