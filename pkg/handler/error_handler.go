package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pieglobal/storefront/pkg/binder"
	"github.com/pieglobal/storefront/pkg/logger"
	"github.com/pieglobal/storefront/pkg/validator"
)

// Classify maps err to the HTTPError sent to the client and any per-field
// validation details.
func Classify(err error) (HTTPError, map[string][]string) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		details := make(map[string][]string, len(verrs))
		for _, field := range verrs.Fields() {
			details[field] = verrs.Get(field)
		}
		msg := "Validation failed."
		if first, ok := verrs.First(); ok {
			msg = first.Message
		}
		return HTTPError{Status: http.StatusUnprocessableEntity, Code: "validation_failed", Message: msg}, details
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, nil
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "body_too_large", Message: "The request body is too large."}, nil
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return HTTPError{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type", Message: "Send the request body as application/json."}, nil
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidPath),
		errors.Is(err, binder.ErrInvalidQuery):
		return ErrBadRequest, nil
	}
	return ErrInternalServerError, nil
}

// Error renders err through Classify.
func Error(err error) Response {
	httpErr, details := Classify(err)
	return JSONError(httpErr.Status, ErrorDetail{Code: httpErr.Code, Message: httpErr.Message, Details: details}, nil)
}

// NewErrorHandler renders errors as JSON envelopes. Server errors are
// logged at ERROR, client errors at DEBUG. A nil log discards.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(ctx Context, err error) {
		httpErr, _ := Classify(err)
		level := slog.LevelDebug
		if httpErr.Status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r := ctx.Request()
		log.Log(ctx, level, "request failed",
			logger.Handler(r.Method+" "+r.URL.Path),
			logger.StatusCode(httpErr.Status),
			logger.Error(err),
		)

		if renderErr := Error(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}
