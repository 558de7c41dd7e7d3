package utils

import (
	"context"

	"github.com/MKhiriev/go-social/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	principalCtxKey   = contextKey("principal")
	authFailureCtxKey = contextKey("authFailure")
)

// WithPrincipal returns a copy of ctx carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, principal)
}

// PrincipalFromContext returns the principal stored by [WithPrincipal].
// ok is false for anonymous requests.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(principalCtxKey).(models.Principal)
	return principal, ok
}

// WithAuthFailure records why a presented credential was rejected, so a later
// authorization step can explain its 401.
func WithAuthFailure(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, authFailureCtxKey, err)
}

// AuthFailureFromContext returns the error stored by [WithAuthFailure], or nil.
func AuthFailureFromContext(ctx context.Context) error {
	err, _ := ctx.Value(authFailureCtxKey).(error)
	return err
}
