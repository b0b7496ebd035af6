// Package redis connects to Redis and backs the storefront's shared state
// with it: cart snapshots (CartStore) and the cross-replica checkout guard
// (CheckoutGuard).
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := redis.NewCartStoreFromConfig(client, cfg)
//	guard := redis.NewCheckoutGuardFromConfig(client, cfg)
//
// Connection errors are joined with the package sentinels, so callers can
// match them with errors.Is.
package redis
