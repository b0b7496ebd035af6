package binder

import "errors"

var (
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrBodyTooLarge         = errors.New("binder: request body too large")
	ErrInvalidJSON          = errors.New("binder: invalid JSON request body")
	ErrInvalidPath          = errors.New("binder: invalid path parameter")
	ErrInvalidQuery         = errors.New("binder: invalid query parameter")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil pointer to struct")
)
