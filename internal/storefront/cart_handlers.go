package storefront

import (
	"strings"

	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/handler"
	"github.com/pieglobal/storefront/pkg/logger"
	"github.com/pieglobal/storefront/pkg/uistate"
	"github.com/pieglobal/storefront/pkg/validator"
	"github.com/pieglobal/storefront/pkg/visitor"
)

type addItemRequest struct {
	Slug string `json:"slug"`
}

type itemRequest struct {
	ID cart.ProductID `path:"id" json:"-"`
}

type setQuantityRequest struct {
	ID       cart.ProductID `path:"id" json:"-"`
	Quantity int            `json:"quantity"`
}

func (s *Server) getCart(ctx handler.Context, _ struct{}) handler.Response {
	key, ok := visitor.FromContext(ctx)
	if !ok {
		return handler.Error(errNoVisitor)
	}
	c := cart.Restore(ctx, s.store, key, cart.WithLogger(s.logger))
	return handler.JSON(newCartView(c.Snapshot(), uistate.Flags{}))
}

// addItem resolves the product through the catalog so prices always come
// from the API, never from the client. Adding opens the cart panel.
func (s *Server) addItem(ctx handler.Context, req addItemRequest) handler.Response {
	key, ok := visitor.FromContext(ctx)
	if !ok {
		return handler.Error(errNoVisitor)
	}
	slug := strings.TrimSpace(req.Slug)
	if err := validator.Apply(validator.RequiredString("slug", slug).WithMessage("Choose a product to add.")); err != nil {
		return handler.Error(err)
	}

	product, err := s.catalog.Product(ctx, slug)
	if err != nil {
		return upstreamError(err, errProductNotFound)
	}
	ref, err := product.Ref()
	if err != nil {
		s.logger.WarnContext(ctx, "catalog returned unusable product",
			logger.ProductID(product.ID),
			logger.Error(err),
		)
		return handler.Error(errProductNotFound)
	}

	unlock := s.locks.lock(key)
	defer unlock()

	c := s.openCart(ctx, key)
	if err := c.Add(ctx, ref); err != nil {
		return cartError(err)
	}

	var flags uistate.Flags
	flags.CartPanel.Open()
	return handler.JSON(newCartView(c.Snapshot(), flags))
}

func (s *Server) setQuantity(ctx handler.Context, req setQuantityRequest) handler.Response {
	return s.mutateItem(ctx, func(c *cart.Cart) error {
		return c.SetQuantity(ctx, req.ID, req.Quantity)
	})
}

func (s *Server) removeItem(ctx handler.Context, req itemRequest) handler.Response {
	return s.mutateItem(ctx, func(c *cart.Cart) error {
		return c.Remove(ctx, req.ID)
	})
}

// mutateItem applies fn to the shopper's cart. An id that is not in the
// cart is a no-op and answers with the unchanged cart.
func (s *Server) mutateItem(ctx handler.Context, fn func(*cart.Cart) error) handler.Response {
	key, ok := visitor.FromContext(ctx)
	if !ok {
		return handler.Error(errNoVisitor)
	}

	unlock := s.locks.lock(key)
	defer unlock()

	c := s.openCart(ctx, key)
	if err := fn(c); err != nil {
		return cartError(err)
	}
	return handler.JSON(newCartView(c.Snapshot(), uistate.Flags{}))
}

func (s *Server) clearCart(ctx handler.Context, _ struct{}) handler.Response {
	key, ok := visitor.FromContext(ctx)
	if !ok {
		return handler.Error(errNoVisitor)
	}

	unlock := s.locks.lock(key)
	defer unlock()

	c := s.openCart(ctx, key)
	if err := c.Clear(ctx); err != nil {
		return cartError(err)
	}
	return handler.JSON(newCartView(c.Snapshot(), uistate.Flags{}))
}
