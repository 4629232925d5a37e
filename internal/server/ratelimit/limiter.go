// Package ratelimit counts sensitive attempts per scope and key in Redis
// fixed windows. A nil *Limiter allows everything.
package ratelimit

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/redis/go-redis/v9"
)

type Scope string

const (
	ScopeLogin     Scope = "login"
	ScopeTwoFactor Scope = "tfa"
	ScopeForgot    Scope = "forgot"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

type Config struct {
	MaxAttempts int
	Window      time.Duration
	Prefix      string
}

type Limiter struct {
	redis       redis.UniversalClient
	maxAttempts int64
	window      time.Duration
	prefix      string
}

// New creates a limiter. Zero-value fields in cfg fall back to 5 attempts
// per 15 minutes under the "sk" key prefix.
func New(client redis.UniversalClient, cfg Config) *Limiter {
	max := cfg.MaxAttempts
	if max <= 0 {
		max = defaultMaxAttempts
	}
	window := cfg.Window
	if window <= 0 {
		window = defaultWindow
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "sk"
	}
	return &Limiter{redis: client, maxAttempts: int64(max), window: window, prefix: prefix}
}

func (l *Limiter) key(scope Scope, key string) string {
	return l.prefix + ":att:" + string(scope) + ":" + key
}

// allowScript counts one attempt and starts the window when the key has
// no TTL yet, in a single round trip.
var allowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// Allow spends one attempt from the budget for key and returns
// common.ErrRateLimited once more than MaxAttempts were spent in the
// current window.
func (l *Limiter) Allow(ctx context.Context, scope Scope, key string) error {
	if l == nil {
		return nil
	}
	count, err := allowScript.Run(ctx, l.redis, []string{l.key(scope, key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return common.Dependency("ratelimit.allow", err)
	}
	if count > l.maxAttempts {
		return common.ErrRateLimited
	}
	return nil
}

// Reset forgets all attempts for key, typically after a success.
func (l *Limiter) Reset(ctx context.Context, scope Scope, key string) error {
	if l == nil {
		return nil
	}
	if err := l.redis.Del(ctx, l.key(scope, key)).Err(); err != nil {
		return common.Dependency("ratelimit.reset", err)
	}
	return nil
}
