package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Cart holds the line items of one shopper and notifies observers after every
// mutation. The zero value is not usable; use New or Restore.
type Cart struct {
	mu        sync.Mutex
	items     []LineItem
	observers []Observer
	logger    *slog.Logger
}

// New creates an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{items: []LineItem{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Add appends a new line item with quantity 1, or increments the quantity of
// the existing line item with the same product id.
func (c *Cart) Add(ctx context.Context, ref ProductRef) error {
	return c.mutate(ctx, func(items []LineItem) []LineItem {
		return applyAdd(items, ref)
	})
}

// Remove deletes the line item for id. Removing an absent id is a no-op.
func (c *Cart) Remove(ctx context.Context, id ProductID) error {
	return c.mutate(ctx, func(items []LineItem) []LineItem {
		return applyRemove(items, id)
	})
}

// SetQuantity replaces the quantity of the line item for id.
// A quantity <= 0 removes the item. No upper bound is enforced here.
func (c *Cart) SetQuantity(ctx context.Context, id ProductID, quantity int) error {
	return c.mutate(ctx, func(items []LineItem) []LineItem {
		return applySetQuantity(items, id, quantity)
	})
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	return c.mutate(ctx, func([]LineItem) []LineItem {
		return []LineItem{}
	})
}

// Snapshot returns a copy of the current items with derived totals.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewSnapshot(c.items)
}

// Subscribe registers an observer for subsequent mutations.
// Observers must not call back into the cart.
func (c *Cart) Subscribe(o Observer) {
	if o == nil {
		return
	}
	c.mu.Lock()
	c.observers = append(c.observers, o)
	c.mu.Unlock()
}

// mutate applies a transition and runs every observer with the new snapshot.
// The in-memory state keeps the transition even when an observer fails; the
// caller decides whether to discard the cart.
func (c *Cart) mutate(ctx context.Context, transition func([]LineItem) []LineItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = transition(c.items)
	snap := NewSnapshot(c.items)

	var errs []error
	for _, o := range c.observers {
		if err := o.CartChanged(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		err := errors.Join(append([]error{ErrPersistFailed}, errs...)...)
		c.logger.WarnContext(ctx, "cart observer failed",
			slog.Any("error", err),
			slog.Int("total_items", snap.TotalItems),
		)
		return err
	}
	return nil
}

