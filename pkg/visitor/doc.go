// Package visitor identifies anonymous shoppers with an opaque token so each
// one gets their own persisted cart.
//
// Tokens are 32 random bytes, base64url encoded. Manager.Ensure reads the
// token from the request through a Transport and mints a new one when none
// is present or the value is malformed; the token is written back on every
// response so its lifetime slides. Two transports are provided:
// CookieTransport keeps the token in an HMAC-signed cookie and
// HeaderTransport uses a request/response header (X-Cart-Token by default).
// NewFromConfig combines them, header first.
//
//	visitors := visitor.NewFromConfig(cfg, cookies, visitor.WithLogger(log))
//	r.Use(visitors.Middleware)
//	...
//	key, _ := visitor.FromContext(r.Context())
package visitor
