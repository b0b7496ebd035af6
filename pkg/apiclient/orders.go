package apiclient

import (
	"context"
	"net/http"
)

// CreateOrder submits an order. It is never retried; a 429 surfaces as an
// error satisfying IsRateLimited.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (OrderCreated, error) {
	var out OrderCreated
	if err := c.do(ctx, http.MethodPost, "orders/", nil, order, &out); err != nil {
		return OrderCreated{}, err
	}
	return out, nil
}
