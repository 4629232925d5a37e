// Package logging is the project's structured logger: a small ctx-aware
// interface over log/slog. Records written under a context that carries a
// request id (see WithRequestID) are tagged with it, so service logs line
// up with the transport's access log.
package logging

import "context"

// Logger takes key/value pairs after the message:
//
//	log.Info(ctx, "Logged in", "user_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always adds args.
	With(args ...any) Logger
}

type requestIDKey struct{}

// WithRequestID returns ctx tagged with id. An empty id leaves ctx as is.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id set by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
