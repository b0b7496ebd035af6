package storefront

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pieglobal/storefront/pkg/binder"
	"github.com/pieglobal/storefront/pkg/checkout"
	"github.com/pieglobal/storefront/pkg/handler"
	"github.com/pieglobal/storefront/pkg/httpserver"
	"github.com/pieglobal/storefront/pkg/ratelimiter"
	"github.com/pieglobal/storefront/pkg/visitor"
)

// Routes builds the storefront router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.Error(handler.ErrNotFound).Render(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.Error(handler.HTTPError{
			Status:  http.StatusMethodNotAllowed,
			Code:    "method_not_allowed",
			Message: "Method not allowed.",
		}).Render(w, req)
	})

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(s.logger, s.readyTimeout, s.checks))

	errs := handler.NewErrorHandler(s.logger)
	pathID := binder.Path(chi.URLParam)

	r.Route("/api", func(r chi.Router) {
		if s.requestTimeout > 0 {
			r.Use(middleware.Timeout(s.requestTimeout))
		}

		r.Group(func(r chi.Router) {
			r.Use(s.visitors.Middleware)

			r.Get("/cart", handler.Wrap(s.getCart,
				handler.WithErrorHandler[struct{}](errs)))
			r.Delete("/cart", handler.Wrap(s.clearCart,
				handler.WithErrorHandler[struct{}](errs)))
			r.Post("/cart/items", handler.Wrap(s.addItem,
				handler.WithBinders[addItemRequest](binder.JSON()),
				handler.WithErrorHandler[addItemRequest](errs)))
			r.Put("/cart/items/{id}", handler.Wrap(s.setQuantity,
				handler.WithBinders[setQuantityRequest](binder.JSON(), pathID),
				handler.WithErrorHandler[setQuantityRequest](errs)))
			r.Delete("/cart/items/{id}", handler.Wrap(s.removeItem,
				handler.WithBinders[itemRequest](pathID),
				handler.WithErrorHandler[itemRequest](errs)))
			r.With(s.throttle(shopperKey)).Post("/checkout", handler.Wrap(s.placeOrder,
				handler.WithBinders[checkout.Details](binder.JSON()),
				handler.WithErrorHandler[checkout.Details](errs)))
		})

		r.Get("/products", handler.Wrap(s.listProducts,
			handler.WithErrorHandler[struct{}](errs)))
		r.Get("/products/featured", handler.Wrap(passthrough(s.catalog.FeaturedProducts),
			handler.WithErrorHandler[struct{}](errs)))
		r.Get("/products/on-sale", handler.Wrap(passthrough(s.catalog.OnSaleProducts),
			handler.WithErrorHandler[struct{}](errs)))
		r.Get("/products/by-category", handler.Wrap(passthrough(s.catalog.ProductsByCategory),
			handler.WithErrorHandler[struct{}](errs)))
		r.Get("/products/{slug}", handler.Wrap(s.getProduct,
			handler.WithBinders[productRequest](pathID),
			handler.WithErrorHandler[productRequest](errs)))
		r.Get("/sliders", handler.Wrap(passthrough(s.catalog.Sliders),
			handler.WithErrorHandler[struct{}](errs)))
		r.Get("/videos", handler.Wrap(passthrough(s.catalog.Videos),
			handler.WithErrorHandler[struct{}](errs)))
		r.Get("/about", handler.Wrap(passthrough(s.catalog.About),
			handler.WithErrorHandler[struct{}](errs)))
		r.With(s.throttle(ratelimiter.ByRemoteIP)).Post("/messages", handler.Wrap(s.sendMessage,
			handler.WithBinders[contactRequest](binder.JSON()),
			handler.WithErrorHandler[contactRequest](errs)))
	})

	return r
}

// throttle applies the write limiter when one is configured.
func (s *Server) throttle(key ratelimiter.KeyFunc) func(http.Handler) http.Handler {
	if s.writeLimiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.Error(handler.ErrTooManyRequests).Render(w, r)
	})
	return ratelimiter.Middleware(s.writeLimiter, key, deny, s.logger)
}

func shopperKey(r *http.Request) string {
	token, _ := visitor.FromContext(r.Context())
	return token
}
