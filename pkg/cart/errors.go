package cart

import "errors"

var (
	// ErrNotFound is returned by a Store when no snapshot exists under a key.
	ErrNotFound = errors.New("cart.not_found")

	// ErrEmptyKey indicates a Store operation without a key.
	ErrEmptyKey = errors.New("cart.empty_key")

	// ErrCorruptSnapshot indicates a persisted record that cannot be decoded
	// or that violates the line item invariants.
	ErrCorruptSnapshot = errors.New("cart.corrupt_snapshot")

	// ErrUnsupportedVersion indicates a persisted record written by an
	// incompatible encoder.
	ErrUnsupportedVersion = errors.New("cart.unsupported_version")

	// ErrPersistFailed wraps observer failures returned from mutators.
	ErrPersistFailed = errors.New("cart.persist_failed")
)
