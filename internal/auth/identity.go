// Package auth gates the quiz pages behind an external identity provider.
// Identities arrive as HMAC-signed JWTs, either in a session cookie set by
// the OAuth2 callback or as a bearer token.
package auth

import "context"

// GuestUserID identifies everyone when authentication is disabled.
const GuestUserID = "guest"

// Identity is the signed-in user.
type Identity struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Guest  bool   `json:"guest,omitempty"`
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity attached by Middleware.Authenticate.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
