package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler: nil response")

// HTTPError is an error with a status code and a client-safe message.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e HTTPError) Error() string { return e.Message }

// WithMessage returns a copy of e with msg as its message.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

var (
	ErrBadRequest          = HTTPError{Status: http.StatusBadRequest, Code: "bad_request", Message: "The request could not be understood."}
	ErrNotFound            = HTTPError{Status: http.StatusNotFound, Code: "not_found", Message: "Not found."}
	ErrConflict            = HTTPError{Status: http.StatusConflict, Code: "conflict", Message: "The request conflicts with one in progress."}
	ErrTooManyRequests     = HTTPError{Status: http.StatusTooManyRequests, Code: "rate_limited", Message: "Too many requests. Please try again later."}
	ErrBadGateway          = HTTPError{Status: http.StatusBadGateway, Code: "upstream_error", Message: "The catalog service is unavailable. Please try again."}
	ErrGatewayTimeout      = HTTPError{Status: http.StatusGatewayTimeout, Code: "upstream_timeout", Message: "The catalog service took too long to respond."}
	ErrServiceUnavailable  = HTTPError{Status: http.StatusServiceUnavailable, Code: "unavailable", Message: "Service temporarily unavailable."}
	ErrInternalServerError = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "Something went wrong."}
)
