// Package requestid carries the per-request correlation ID through contexts
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header used to propagate the request ID
const Header = "X-Request-ID"

type contextKey struct{}

// New returns a fresh request ID
func New() string {
	return uuid.NewString()
}

// WithRequestID returns a copy of ctx carrying id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request ID stored in ctx, or an empty string
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Valid reports whether an incoming header value can be reused as the request ID
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
