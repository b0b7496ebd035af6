// Package ratelimiter throttles storefront writes with token buckets so a
// single shopper or address cannot flood the furniture API with orders or
// contact messages.
//
//	store := ratelimiter.NewMemoryStore(5 * time.Minute)
//	defer store.Close()
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByRemoteIP, deny, log)).Post("/api/messages", h)
package ratelimiter
