package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/logger"
	"github.com/pieglobal/storefront/pkg/validator"
)

// Shopper-facing outcome messages.
const (
	MsgSuccess     = "Order placed successfully! We will contact you shortly."
	MsgRateLimited = apiclient.RateLimitMessage
	MsgFailed      = "Failed to place order. Please try again."
	MsgBusy        = "Your order is already being placed."

	// SuccessRedirect is where the shopper goes after a placed order.
	SuccessRedirect = "/"
)

// Outcome classifies a submission attempt.
type Outcome string

const (
	OutcomeSucceeded   Outcome = "succeeded"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeBusy        Outcome = "busy"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeFailed      Outcome = "failed"
)

// Result is what the shopper is told about a submission.
type Result struct {
	Outcome  Outcome                    `json:"outcome"`
	Message  string                     `json:"message"`
	Redirect string                     `json:"redirect,omitempty"`
	Errors   validator.ValidationErrors `json:"errors,omitempty"`
	Order    *apiclient.Order           `json:"order,omitempty"`
}

// OK reports whether the order was placed.
func (r Result) OK() bool { return r.Outcome == OutcomeSucceeded }

// OrderGateway sends a shaped order to the backend.
type OrderGateway interface {
	CreateOrder(ctx context.Context, order apiclient.OrderRequest) (apiclient.OrderCreated, error)
}

// Submitter runs checkout for a cart: busy guard, validation, submission and
// the reaction to the outcome.
type Submitter struct {
	gateway OrderGateway
	guard   Guard
	logger  *slog.Logger
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithGuard replaces the default process-local busy guard.
func WithGuard(g Guard) Option {
	return func(s *Submitter) {
		if g != nil {
			s.guard = g
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Submitter) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewSubmitter(gateway OrderGateway, opts ...Option) *Submitter {
	s := &Submitter{
		gateway: gateway,
		guard:   NewMemoryGuard(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CartOpener returns the cart to check out together with the func that
// ends exclusive access to it. The returned cart must not change until
// done is called.
type CartOpener func(ctx context.Context) (c *cart.Cart, done func())

// Submit places an order for the contents of c. It never returns an error:
// every failure is folded into the Result. The cart is cleared only after
// the backend acknowledged the order; on any other outcome it is untouched.
func (s *Submitter) Submit(ctx context.Context, key string, c *cart.Cart, d Details) Result {
	return s.SubmitWith(ctx, key, func(context.Context) (*cart.Cart, func()) {
		return c, func() {}
	}, d)
}

// SubmitWith is Submit for a cart that other requests may also mutate.
// open runs only after the busy guard is held, so a duplicate submission
// answers OutcomeBusy without waiting on the cart, and the snapshot that is
// ordered is the one that gets cleared.
func (s *Submitter) SubmitWith(ctx context.Context, key string, open CartOpener, d Details) Result {
	log := s.logger.With(logger.Component("checkout"), logger.CartKey(key))

	release, ok, err := s.guard.TryAcquire(ctx, key)
	if err != nil {
		log.ErrorContext(ctx, "checkout guard unavailable", logger.Error(err))
		return Result{Outcome: OutcomeFailed, Message: MsgFailed}
	}
	if !ok {
		log.InfoContext(ctx, "duplicate checkout ignored", logger.Outcome(string(OutcomeBusy)))
		return Result{Outcome: OutcomeBusy, Message: MsgBusy}
	}
	defer release()

	c, done := open(ctx)
	defer done()

	snap := c.Snapshot()
	if err := Validate(snap, d); err != nil {
		return Result{
			Outcome: OutcomeInvalid,
			Message: FirstMessage(err),
			Errors:  validator.ExtractValidationErrors(err),
		}
	}

	start := time.Now()
	created, err := s.gateway.CreateOrder(ctx, Shape(snap, d))
	if err != nil {
		res := failure(err)
		log.WarnContext(ctx, "order submission failed",
			logger.Outcome(string(res.Outcome)),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return res
	}

	if err := c.Clear(ctx); err != nil {
		// Order already placed upstream; report success regardless.
		log.ErrorContext(ctx, "cart not cleared after placed order", logger.Error(err))
	}

	log.InfoContext(ctx, "order placed",
		logger.Outcome(string(OutcomeSucceeded)),
		logger.Duration(time.Since(start)),
		slog.Int64("order_id", created.Order.ID),
	)
	return Result{
		Outcome:  OutcomeSucceeded,
		Message:  MsgSuccess,
		Redirect: SuccessRedirect,
		Order:    &created.Order,
	}
}

func failure(err error) Result {
	if apiclient.IsRateLimited(err) {
		return Result{Outcome: OutcomeRateLimited, Message: MsgRateLimited}
	}
	if detail := apiclient.Detail(err); detail != "" {
		return Result{Outcome: OutcomeFailed, Message: detail}
	}
	return Result{Outcome: OutcomeFailed, Message: MsgFailed}
}
