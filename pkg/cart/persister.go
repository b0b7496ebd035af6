package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Persister is an Observer that writes every snapshot to a Store under a
// fixed key.
type Persister struct {
	store Store
	key   string
}

// NewPersister creates a Persister for key.
func NewPersister(store Store, key string) *Persister {
	return &Persister{store: store, key: key}
}

// CartChanged encodes snap and saves it.
func (p *Persister) CartChanged(ctx context.Context, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if err := p.store.Save(ctx, p.key, data); err != nil {
		return fmt.Errorf("save cart %q: %w", p.key, err)
	}
	return nil
}

// Restore reads the snapshot saved under key and returns a cart holding its
// items. A missing, unreadable or corrupt record yields an empty cart; the
// failure is logged and never returned.
func Restore(ctx context.Context, store Store, key string, opts ...Option) *Cart {
	c := New(opts...)

	data, err := store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.WarnContext(ctx, "cart snapshot unavailable, starting empty",
				slog.String("cart_key", key),
				slog.Any("error", err),
			)
		}
		return c
	}

	snap, err := Decode(data)
	if err != nil {
		c.logger.WarnContext(ctx, "cart snapshot corrupt, starting empty",
			slog.String("cart_key", key),
			slog.Any("error", err),
		)
		return c
	}

	c.items = snap.Items
	return c
}

// Open restores the cart saved under key and subscribes a Persister for the
// same key, so every later mutation is written back before it returns.
func Open(ctx context.Context, store Store, key string, opts ...Option) *Cart {
	opts = append(opts, WithObserver(NewPersister(store, key)))
	return Restore(ctx, store, key, opts...)
}
