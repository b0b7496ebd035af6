package visitor

import "context"

type tokenContextKey struct{}

// WithToken stores the visitor token in ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// FromContext returns the visitor token stored by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}
