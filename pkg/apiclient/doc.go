// Package apiclient is the storefront's gateway to the furniture REST API.
//
// A Client covers every endpoint the storefront consumes: the product catalog
// (listing, detail, featured, on sale, grouped by category), order creation,
// home page sliders and videos, the about page, contact messages and the
// session-based auth endpoints.
//
//	client, err := apiclient.NewFromConfig(cfg, apiclient.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	created, err := client.CreateOrder(ctx, order)
//	switch {
//	case apiclient.IsRateLimited(err):
//		// surface apiclient.RateLimitMessage
//	case err != nil:
//		// surface apiclient.Detail(err) or a generic message
//	}
//
// # Requests
//
// Endpoint paths are resolved under the configured base URL, which must be an
// absolute http or https URL. Every request is bounded by the configured
// timeout (15s by default) and is never retried. Requests carry X-CSRFToken
// when a token is configured and X-Request-Id when the context holds a chi
// request id.
//
// # Errors
//
// Non-2xx responses are returned as *Error carrying the status and the
// server's "detail" (or "error"/"message") text. *Error matches
// ErrTooManyRequests, ErrNotFound and ErrUnauthorized through errors.Is.
// Network failures wrap ErrTransport; deadline expiry wraps ErrTimeout;
// undecodable bodies wrap ErrDecode.
package apiclient
