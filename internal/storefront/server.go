package storefront

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/checkout"
	"github.com/pieglobal/storefront/pkg/httpserver"
	"github.com/pieglobal/storefront/pkg/ratelimiter"
	"github.com/pieglobal/storefront/pkg/visitor"
)

// Catalog is the part of the furniture API the storefront reads through.
// *apiclient.Client implements it.
type Catalog interface {
	ListProducts(ctx context.Context, params url.Values) (apiclient.ProductPage, error)
	Product(ctx context.Context, slug string) (apiclient.Product, error)
	FeaturedProducts(ctx context.Context) ([]apiclient.Product, error)
	OnSaleProducts(ctx context.Context) ([]apiclient.Product, error)
	ProductsByCategory(ctx context.Context) (map[string][]apiclient.Product, error)
	Sliders(ctx context.Context) ([]apiclient.SliderImage, error)
	Videos(ctx context.Context) ([]apiclient.HomeVideo, error)
	About(ctx context.Context) (apiclient.AboutPage, error)
	SendMessage(ctx context.Context, msg apiclient.ContactMessage) (apiclient.MessageCreated, error)
}

// Server serves the storefront API: per-shopper carts, checkout and the
// catalog passthrough.
type Server struct {
	catalog        Catalog
	store          cart.Store
	visitors       *visitor.Manager
	submitter      *checkout.Submitter
	locks          *keyLocks
	logger         *slog.Logger
	requestTimeout time.Duration
	readyTimeout   time.Duration
	checks         map[string]httpserver.Check
	writeLimiter   ratelimiter.Limiter
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRequestTimeout bounds each API request; zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.requestTimeout = d }
}

// WithReadinessCheck adds a named dependency check to /readyz.
func WithReadinessCheck(name string, check httpserver.Check) Option {
	return func(s *Server) {
		if check != nil {
			s.checks[name] = check
		}
	}
}

func WithReadinessTimeout(d time.Duration) Option {
	return func(s *Server) { s.readyTimeout = d }
}

// WithWriteLimiter throttles checkout per shopper and contact messages per
// client address.
func WithWriteLimiter(l ratelimiter.Limiter) Option {
	return func(s *Server) { s.writeLimiter = l }
}

// NewServer wires the storefront API. Every argument is required.
func NewServer(catalog Catalog, store cart.Store, visitors *visitor.Manager, submitter *checkout.Submitter, opts ...Option) *Server {
	if catalog == nil || store == nil || visitors == nil || submitter == nil {
		panic("storefront: NewServer requires catalog, store, visitors and submitter")
	}
	s := &Server{
		catalog:      catalog,
		store:        store,
		visitors:     visitors,
		submitter:    submitter,
		locks:        newKeyLocks(),
		logger:       slog.New(slog.DiscardHandler),
		readyTimeout: 3 * time.Second,
		checks:       make(map[string]httpserver.Check),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// openCart restores the cart for key with a persister attached, so every
// mutation is saved before it returns.
func (s *Server) openCart(ctx context.Context, key string) *cart.Cart {
	return cart.Open(ctx, s.store, key, cart.WithLogger(s.logger))
}
