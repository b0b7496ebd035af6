package cart

import "context"

// Store persists encoded snapshots under a key. Implementations must return
// ErrNotFound (possibly wrapped) for a key that has never been saved or has
// been deleted.
type Store interface {
	// Load returns the record saved under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the record under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the record under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
