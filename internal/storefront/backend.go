package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/checkout"
	"github.com/pieglobal/storefront/pkg/httpserver"
	"github.com/pieglobal/storefront/pkg/logger"
	"github.com/pieglobal/storefront/pkg/mongo"
	"github.com/pieglobal/storefront/pkg/pg"
	"github.com/pieglobal/storefront/pkg/redis"
)

var ErrUnknownStore = errors.New("storefront: unknown cart store driver")

// Backend is the cart persistence selected by CART_STORE.
type Backend struct {
	Store  cart.Store
	Guard  checkout.Guard
	Checks map[string]httpserver.Check

	// Prune removes carts idle since before; nil when the driver expires
	// carts on its own.
	Prune func(ctx context.Context, before time.Time) (int64, error)

	closers []func()
}

// Close releases every connection the backend opened.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// OpenBackend connects the configured cart store. The memory driver keeps
// carts in process and is meant for development and tests.
func OpenBackend(ctx context.Context, cfg Config, log *slog.Logger) (*Backend, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("cart_store"), slog.String("driver", cfg.CartStore))

	switch cfg.CartStore {
	case StoreMemory, "":
		mem := cart.NewMemoryStore()
		return &Backend{
			Store:  mem,
			Guard:  checkout.NewMemoryGuard(),
			Checks: map[string]httpserver.Check{"cart_store": mem.Healthcheck},
		}, nil

	case StoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "cart store connected")
		store := redis.NewCartStoreFromConfig(client, cfg.Redis)
		return &Backend{
			Store:   store,
			Guard:   redis.NewCheckoutGuardFromConfig(client, cfg.Redis),
			Checks:  map[string]httpserver.Check{"redis": store.Healthcheck},
			closers: []func(){func() { _ = client.Close() }},
		}, nil

	case StorePostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
			pool.Close()
			return nil, err
		}
		log.InfoContext(ctx, "cart store connected and migrated")
		store := pg.NewCartStore(pool)
		return &Backend{
			Store:   store,
			Guard:   checkout.NewMemoryGuard(),
			Checks:  map[string]httpserver.Check{"postgres": store.Healthcheck},
			Prune:   store.PruneExpired,
			closers: []func(){pool.Close},
		}, nil

	case StoreMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		store := mongo.NewCartStore(client.Database(cfg.Mongo.Database), cfg.Mongo.CartCollection)
		if err := store.EnsureIndexes(ctx, cfg.Mongo.CartTTL); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, err
		}
		log.InfoContext(ctx, "cart store connected")
		return &Backend{
			Store:   store,
			Guard:   checkout.NewMemoryGuard(),
			Checks:  map[string]httpserver.Check{"mongo": store.Healthcheck},
			closers: []func(){func() { _ = client.Disconnect(context.Background()) }},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.CartStore)
}

// RunPruner calls b.Prune every interval until ctx is done, removing carts
// idle for longer than ttl. It returns at once when the backend expires
// carts itself.
func (b *Backend) RunPruner(ctx context.Context, interval, ttl time.Duration, log *slog.Logger) {
	if b.Prune == nil || interval <= 0 || ttl <= 0 {
		return
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := b.Prune(ctx, time.Now().Add(-ttl))
			if err != nil {
				log.WarnContext(ctx, "cart prune failed", logger.Component("cart_store"), logger.Error(err))
				continue
			}
			if n > 0 {
				log.InfoContext(ctx, "expired carts pruned", logger.Component("cart_store"), slog.Int64("carts", n))
			}
		}
	}
}
