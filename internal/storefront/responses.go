package storefront

import (
	"errors"

	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/handler"
	"github.com/pieglobal/storefront/pkg/uistate"
)

const (
	msgCartUnavailable = "Your cart could not be saved. Please try again."
	msgNoVisitor       = "Your session could not be identified. Please reload the page."
)

var (
	errCartUnavailable = handler.ErrServiceUnavailable.WithMessage(msgCartUnavailable)
	errNoVisitor       = handler.ErrBadRequest.WithMessage(msgNoVisitor)
	errProductNotFound = handler.ErrNotFound.WithMessage("This product is no longer available.")
)

// cartView is the cart as the storefront UI renders it.
type cartView struct {
	Items        []cart.LineItem `json:"items"`
	TotalItems   int             `json:"total_items"`
	TotalPrice   float64         `json:"total_price"`
	TotalDisplay string          `json:"total_display"`
	UI           uistate.State   `json:"ui"`
}

func newCartView(snap cart.Snapshot, flags uistate.Flags) cartView {
	return cartView{
		Items:        snap.Items,
		TotalItems:   snap.TotalItems,
		TotalPrice:   snap.TotalPrice,
		TotalDisplay: cart.FormatPrice(snap.TotalPrice),
		UI:           flags.State(),
	}
}

// upstreamError maps a furniture API failure to the client response.
func upstreamError(err error, notFound handler.HTTPError) handler.Response {
	switch {
	case apiclient.IsRateLimited(err):
		return handler.Error(handler.ErrTooManyRequests)
	case errors.Is(err, apiclient.ErrNotFound):
		return handler.Error(notFound)
	case errors.Is(err, apiclient.ErrTimeout):
		return handler.Error(handler.ErrGatewayTimeout)
	}
	if detail := apiclient.Detail(err); detail != "" {
		return handler.Error(handler.ErrBadGateway.WithMessage(detail))
	}
	return handler.Error(handler.ErrBadGateway)
}

// cartError maps a failed cart mutation. The stored cart is unchanged, so
// the client keeps its last view.
func cartError(err error) handler.Response {
	if errors.Is(err, cart.ErrPersistFailed) {
		return handler.Error(errCartUnavailable)
	}
	return handler.Error(err)
}
