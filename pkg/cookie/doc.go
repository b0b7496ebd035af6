// Package cookie manages HTTP cookies with shared defaults and HMAC-SHA256
// signing.
//
// A Manager is created from one or more secrets of at least 32 characters.
// The first secret signs; every secret verifies, so secrets can be rotated
// by prepending a new one and dropping the old one after a cookie lifetime.
//
//	mgr, err := cookie.NewFromConfig(cfg)
//	mgr.SetSigned(w, "cart_token", token, cookie.WithMaxAge(30*24*3600))
//	token, err := mgr.GetSigned(r, "cart_token")
//
// Defaults are Path "/", HttpOnly and SameSite=Lax. Signature comparison is
// constant-time.
package cookie
