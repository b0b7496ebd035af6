package mongo

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("mongo: empty connection url")
	ErrConnect            = errors.New("mongo: failed to connect")
	ErrHealthcheckFailed  = errors.New("mongo: healthcheck failed")
	ErrCreateIndex        = errors.New("mongo: failed to create cart index")
	ErrNilDatabase        = errors.New("mongo: nil database")
)
