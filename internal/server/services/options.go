package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/ratelimit"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dmitrijs2005/sessionkeeper/internal/server/services"

// PasswordHasher is satisfied by *password.Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TwoFactor is satisfied by *totp.Verifier.
type TwoFactor interface {
	GenerateSecret(account string) (secret string, uri string, err error)
	// Match reports whether code is valid for secret and which time step
	// it belongs to.
	Match(secret, code string) (step int64, ok bool)
}

// AttemptLimiter is satisfied by *ratelimit.Limiter, including a nil one.
type AttemptLimiter interface {
	Allow(ctx context.Context, scope ratelimit.Scope, key string) error
	Reset(ctx context.Context, scope ratelimit.Scope, key string) error
}

type options struct {
	now    func() time.Time
	tracer trace.Tracer
}

type Option func(*options)

// WithClock replaces time.Now for storage-side time comparisons.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

func buildOptions(opts []Option) options {
	o := options{
		now:    time.Now,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
