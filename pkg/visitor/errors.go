package visitor

import "errors"

var (
	ErrTokenNotFound   = errors.New("visitor.token_not_found")
	ErrInvalidToken    = errors.New("visitor.invalid_token")
	ErrTokenGeneration = errors.New("visitor.token_generation_failed")
)
