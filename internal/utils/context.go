// Package utils provides general-purpose helpers shared across the
// backend: typed context keys, JSON responses, the outbound HTTP client and
// identifier generation.
package utils

import (
	"context"

	"github.com/MarkAnthonyM/BlockPlot/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key the session middleware stores the resolved
// [models.Principal] under.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// PrincipalFromContext returns the principal attached by WithPrincipal.
// ok is false when the request was not authenticated.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}
