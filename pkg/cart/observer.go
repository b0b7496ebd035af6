package cart

import "context"

// Observer is notified with the resulting snapshot after each mutation.
type Observer interface {
	CartChanged(ctx context.Context, snap Snapshot) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, snap Snapshot) error

// CartChanged calls f.
func (f ObserverFunc) CartChanged(ctx context.Context, snap Snapshot) error {
	return f(ctx, snap)
}
