package grpc

import "context"

// contextKey is an unexported type for context keys to prevent collisions
// with other packages.
type contextKey int

const (
	tokenKey contextKey = iota
)

// SetToken stores a JWT in the context. HTTP edge middleware calls this
// after extracting the token from a request; server interceptors call it
// after reassembling the token from incoming metadata.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext retrieves the JWT stored in the context, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// HasToken checks whether a non-empty token exists in the context.
func HasToken(ctx context.Context) bool {
	_, ok := TokenFromContext(ctx)
	return ok
}
