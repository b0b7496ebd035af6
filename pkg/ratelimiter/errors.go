package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("ratelimiter: capacity, refill rate and refill interval must be positive")
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")
)
