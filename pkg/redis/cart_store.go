package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pieglobal/storefront/pkg/cart"
)

// CartStore keeps encoded cart snapshots in Redis strings. Each save
// refreshes the key's expiry, so carts only expire after a quiet period.
type CartStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewCartStore panics on a nil client.
func NewCartStore(client redis.UniversalClient, prefix string, ttl time.Duration) *CartStore {
	if client == nil {
		panic(ErrNilClient)
	}
	return &CartStore{client: client, prefix: prefix, ttl: ttl}
}

// NewCartStoreFromConfig uses cfg.CartPrefix and cfg.CartTTL.
func NewCartStoreFromConfig(client redis.UniversalClient, cfg Config) *CartStore {
	return NewCartStore(client, cfg.CartPrefix, cfg.CartTTL)
}

func (s *CartStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, cart.ErrEmptyKey
	}
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cart.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *CartStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return cart.ErrEmptyKey
	}
	return s.client.Set(ctx, s.prefix+key, data, s.ttl).Err()
}

func (s *CartStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return cart.ErrEmptyKey
	}
	return s.client.Del(ctx, s.prefix+key).Err()
}

var _ cart.Store = (*CartStore)(nil)
