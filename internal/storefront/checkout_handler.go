package storefront

import (
	"context"
	"net/http"

	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/checkout"
	"github.com/pieglobal/storefront/pkg/handler"
	"github.com/pieglobal/storefront/pkg/visitor"
)

var outcomeStatus = map[checkout.Outcome]int{
	checkout.OutcomeSucceeded:   http.StatusCreated,
	checkout.OutcomeInvalid:     http.StatusUnprocessableEntity,
	checkout.OutcomeBusy:        http.StatusConflict,
	checkout.OutcomeRateLimited: http.StatusTooManyRequests,
	checkout.OutcomeFailed:      http.StatusBadGateway,
}

// placeOrder submits the shopper's cart. The Result is always sent as data
// so the UI can show its message and follow its redirect.
func (s *Server) placeOrder(ctx handler.Context, req checkout.Details) handler.Response {
	key, ok := visitor.FromContext(ctx)
	if !ok {
		return handler.Error(errNoVisitor)
	}

	// The cart lock is held from snapshot to clear, so items added while the
	// order is in flight land after the clear instead of being wiped by it.
	res := s.submitter.SubmitWith(ctx, key, func(ctx context.Context) (*cart.Cart, func()) {
		unlock := s.locks.lock(key)
		return s.openCart(ctx, key), unlock
	}, req)

	status, ok := outcomeStatus[res.Outcome]
	if !ok {
		status = http.StatusInternalServerError
	}
	if res.OK() {
		return handler.JSONWithStatus(res, status)
	}

	var details map[string][]string
	if len(res.Errors) > 0 {
		details = make(map[string][]string, len(res.Errors))
		for _, field := range res.Errors.Fields() {
			details[field] = res.Errors.Get(field)
		}
	}
	return handler.JSONError(status, handler.ErrorDetail{
		Code:    string(res.Outcome),
		Message: res.Message,
		Details: details,
	}, res)
}
