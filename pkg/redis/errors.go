package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection url")
	ErrParseConnString    = errors.New("redis: failed to parse connection string")
	ErrNotReady           = errors.New("redis: server did not become ready")
	ErrHealthcheckFailed  = errors.New("redis: healthcheck failed")
	ErrNilClient          = errors.New("redis: nil client")
)
