package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds our token, so a
// release after expiry never drops another replica's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CheckoutGuard admits one checkout per cart key across all replicas.
// It satisfies checkout.Guard.
type CheckoutGuard struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewCheckoutGuard(client redis.UniversalClient, prefix string, ttl time.Duration) *CheckoutGuard {
	if client == nil {
		panic(ErrNilClient)
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CheckoutGuard{client: client, prefix: prefix, ttl: ttl}
}

// NewCheckoutGuardFromConfig uses cfg.LockPrefix and cfg.LockTTL.
func NewCheckoutGuardFromConfig(client redis.UniversalClient, cfg Config) *CheckoutGuard {
	return NewCheckoutGuard(client, cfg.LockPrefix, cfg.LockTTL)
}

// TryAcquire sets the lock key if absent. ok is false when another
// checkout for key is in flight.
func (g *CheckoutGuard) TryAcquire(ctx context.Context, key string) (func(), bool, error) {
	token := uuid.NewString()
	lockKey := g.prefix + key

	ok, err := g.client.SetNX(ctx, lockKey, token, g.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, g.client, []string{lockKey}, token).Err()
	}
	return release, true, nil
}
