package ratelimit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, cfg Config) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, cfg), mr
}

func TestLimiter_BlocksAfterBudget(t *testing.T) {
	ctx := context.Background()
	l, _ := newLimiter(t, Config{MaxAttempts: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Allow(ctx, ScopeLogin, "alice@example.com"))
	}
	require.ErrorIs(t, l.Allow(ctx, ScopeLogin, "alice@example.com"), common.ErrRateLimited)

	require.NoError(t, l.Allow(ctx, ScopeLogin, "bob@example.com"), "keys are independent")
	require.NoError(t, l.Allow(ctx, ScopeTwoFactor, "alice@example.com"), "scopes are independent")
}

func TestLimiter_ConcurrentAttemptsShareBudget(t *testing.T) {
	ctx := context.Background()
	l, _ := newLimiter(t, Config{MaxAttempts: 2, Window: time.Minute})

	const callers = 40
	var allowed, limited atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.Allow(ctx, ScopeTwoFactor, "u1")
			switch {
			case err == nil:
				allowed.Add(1)
			case errors.Is(err, common.ErrRateLimited):
				limited.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 2, allowed.Load())
	assert.EqualValues(t, callers-2, limited.Load())
}

func TestLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	l, mr := newLimiter(t, Config{MaxAttempts: 1, Window: time.Minute})

	require.NoError(t, l.Allow(ctx, ScopeForgot, "k"))
	require.ErrorIs(t, l.Allow(ctx, ScopeForgot, "k"), common.ErrRateLimited)

	assert.Equal(t, time.Minute, mr.TTL("sk:att:forgot:k"))
	mr.FastForward(time.Minute + time.Second)

	require.NoError(t, l.Allow(ctx, ScopeForgot, "k"))
}

func TestLimiter_RestoresMissingTTL(t *testing.T) {
	ctx := context.Background()
	l, mr := newLimiter(t, Config{MaxAttempts: 5, Window: time.Minute})

	require.NoError(t, mr.Set("sk:att:login:k", "3"))
	assert.Zero(t, mr.TTL("sk:att:login:k"))

	require.NoError(t, l.Allow(ctx, ScopeLogin, "k"))
	assert.Equal(t, time.Minute, mr.TTL("sk:att:login:k"))
}

func TestLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	l, _ := newLimiter(t, Config{MaxAttempts: 1})

	require.NoError(t, l.Allow(ctx, ScopeTwoFactor, "u1"))
	require.ErrorIs(t, l.Allow(ctx, ScopeTwoFactor, "u1"), common.ErrRateLimited)

	require.NoError(t, l.Reset(ctx, ScopeTwoFactor, "u1"))
	require.NoError(t, l.Allow(ctx, ScopeTwoFactor, "u1"))
}

func TestLimiter_RedisDown(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	l := New(client, Config{})

	require.ErrorIs(t, l.Allow(ctx, ScopeLogin, "k"), common.ErrDependency)
	require.ErrorIs(t, l.Reset(ctx, ScopeLogin, "k"), common.ErrDependency)
}

func TestLimiter_NilAllowsEverything(t *testing.T) {
	var l *Limiter
	ctx := context.Background()

	assert.NoError(t, l.Allow(ctx, ScopeLogin, "k"))
	assert.NoError(t, l.Reset(ctx, ScopeLogin, "k"))
}

func TestNew_Defaults(t *testing.T) {
	l := New(nil, Config{})
	assert.EqualValues(t, defaultMaxAttempts, l.maxAttempts)
	assert.Equal(t, defaultWindow, l.window)
	assert.Equal(t, "sk:att:login:x", l.key(ScopeLogin, "x"))
}
