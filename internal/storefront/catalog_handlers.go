package storefront

import (
	"context"
	"net/http"
	"strings"

	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/handler"
	"github.com/pieglobal/storefront/pkg/logger"
	"github.com/pieglobal/storefront/pkg/sanitizer"
	"github.com/pieglobal/storefront/pkg/validator"
)

const (
	MsgMessageSent   = "Thank you! We will get back to you soon."
	MsgMessageFailed = "Failed to send message. Please try again."

	maxContactNameLen    = 100
	maxContactPhoneLen   = 20
	maxContactMessageLen = 2000
)

type productRequest struct {
	Slug string `path:"slug"`
}

// listProducts forwards the shopper's filters as they are.
func (s *Server) listProducts(ctx handler.Context, _ struct{}) handler.Response {
	page, err := s.catalog.ListProducts(ctx, ctx.Request().URL.Query())
	if err != nil {
		return upstreamError(err, handler.ErrNotFound)
	}
	return handler.JSONWithMeta(page.Results, map[string]any{
		"count":    page.Count,
		"next":     page.Next,
		"previous": page.Previous,
	})
}

func (s *Server) getProduct(ctx handler.Context, req productRequest) handler.Response {
	product, err := s.catalog.Product(ctx, req.Slug)
	if err != nil {
		return upstreamError(err, errProductNotFound)
	}
	return handler.JSON(product)
}

// passthrough serves a parameterless catalog read.
func passthrough[T any](fetch func(ctx context.Context) (T, error)) handler.HandlerFunc[struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		data, err := fetch(ctx)
		if err != nil {
			return upstreamError(err, handler.ErrNotFound)
		}
		return handler.JSON(data)
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r contactRequest) sanitized() apiclient.ContactMessage {
	return apiclient.ContactMessage{
		Name:    sanitizer.Apply(r.Name, sanitizer.StripHTML, sanitizer.SingleLine, sanitizer.Trim, sanitizer.Truncate(maxContactNameLen)),
		Email:   sanitizer.Apply(r.Email, sanitizer.TrimToLower, sanitizer.Truncate(254)),
		Phone:   sanitizer.Apply(r.Phone, sanitizer.SingleLine, sanitizer.Trim, sanitizer.Truncate(maxContactPhoneLen)),
		Message: sanitizer.Apply(r.Message, sanitizer.StripHTML, sanitizer.RemoveControlChars, strings.TrimSpace, sanitizer.Truncate(maxContactMessageLen)),
	}
}

func (s *Server) sendMessage(ctx handler.Context, req contactRequest) handler.Response {
	msg := req.sanitized()
	if err := validator.Apply(
		validator.RequiredString("name", msg.Name).WithMessage("Please tell us your name."),
		validator.OptionalEmail("email", msg.Email).WithMessage("Please provide a valid email address."),
		validator.RequiredString("message", msg.Message).WithMessage("Please write a message."),
	); err != nil {
		return handler.Error(err)
	}

	created, err := s.catalog.SendMessage(ctx, msg)
	if err != nil {
		s.logger.WarnContext(ctx, "contact message failed", logger.Component("contact"), logger.Error(err))
		if apiclient.IsRateLimited(err) {
			return handler.Error(handler.ErrTooManyRequests)
		}
		return handler.Error(handler.ErrBadGateway.WithMessage(MsgMessageFailed))
	}

	return handler.JSONWithStatus(map[string]any{
		"message": MsgMessageSent,
		"id":      created.Data.ID,
	}, http.StatusCreated)
}
