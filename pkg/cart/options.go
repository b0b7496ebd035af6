package cart

import "log/slog"

// Option configures a Cart.
type Option func(*Cart)

// WithObserver registers an observer at construction time.
func WithObserver(o Observer) Option {
	return func(c *Cart) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithLogger sets the logger used for observer failures and restore warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cart) {
		if l != nil {
			c.logger = l
		}
	}
}
