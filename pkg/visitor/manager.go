package visitor

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pieglobal/storefront/pkg/cookie"
	"github.com/pieglobal/storefront/pkg/logger"
)

// Manager hands every shopper a stable opaque token. The token keys the
// shopper's persisted cart.
type Manager struct {
	transport Transport
	ttl       time.Duration
	logger    *slog.Logger
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

func New(transport Transport, opts ...Option) *Manager {
	m := &Manager{
		transport: transport,
		ttl:       30 * 24 * time.Hour,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromConfig builds a Manager whose transport accepts the header and
// falls back to the signed cookie.
func NewFromConfig(cfg Config, cookies *cookie.Manager, opts ...Option) *Manager {
	transport := NewCompositeTransport(
		NewHeaderTransport(cfg.Header),
		NewCookieTransport(cookies, cfg.CookieName),
	)
	return New(transport, append([]Option{WithTTL(cfg.TTL)}, opts...)...)
}

// Ensure returns the request's token, minting and sending a new one when the
// request carries none or carries one that is not well formed. The token's
// lifetime is refreshed on every call.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) (string, error) {
	token, err := m.transport.GetToken(r)
	if err == nil && !ValidToken(token) {
		m.logger.WarnContext(r.Context(), "malformed visitor token replaced", logger.Component("visitor"))
		err = ErrInvalidToken
	}
	if err != nil {
		token, err = generateToken()
		if err != nil {
			return "", err
		}
	}

	if err := m.transport.SetToken(w, token, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Forget clears the token from the response.
func (m *Manager) Forget(w http.ResponseWriter) error {
	return m.transport.ClearToken(w)
}

// Middleware ensures a token for every request and stores it in the
// request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.Ensure(w, r)
		if err != nil {
			m.logger.ErrorContext(r.Context(), "visitor token unavailable",
				logger.Component("visitor"),
				logger.Error(err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
	})
}
