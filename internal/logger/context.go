package logger

import (
	"context"

	"github.com/google/uuid"
)

type scopeKey struct{}

// scope is what one request carries: its ID and the logger serving it
type scope struct {
	requestID string
	log       Logger
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// WithRequestID stores requestID on ctx, generating a UUID when it is empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	s := scopeFrom(ctx)
	s.requestID = requestID
	return context.WithValue(ctx, scopeKey{}, s)
}

// RequestIDFromContext returns the request ID, or "" outside a request
func RequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// WithLogger stores l on ctx
func WithLogger(ctx context.Context, l Logger) context.Context {
	s := scopeFrom(ctx)
	s.log = l
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the request's logger, or Default
func FromContext(ctx context.Context) Logger {
	if l := scopeFrom(ctx).log; l != nil {
		return l
	}
	return Default()
}

// Ctx is FromContext plus the request ID
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
