package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pieglobal/storefront/internal/storefront"
	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/checkout"
	"github.com/pieglobal/storefront/pkg/config"
	"github.com/pieglobal/storefront/pkg/cookie"
	"github.com/pieglobal/storefront/pkg/httpserver"
	"github.com/pieglobal/storefront/pkg/logger"
	"github.com/pieglobal/storefront/pkg/ratelimiter"
	"github.com/pieglobal/storefront/pkg/visitor"
)

func main() {
	var cfg storefront.Config
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(logger.FromConfig(cfg.Logger)...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("storefront stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg storefront.Config, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	backend, err := storefront.OpenBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer backend.Close()

	api, err := apiclient.NewFromConfig(cfg.API, apiclient.WithLogger(log))
	if err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}
	visitors := visitor.NewFromConfig(cfg.Visitor, cookies, visitor.WithLogger(log))

	submitter := checkout.NewSubmitter(api,
		checkout.WithGuard(backend.Guard),
		checkout.WithLogger(log),
	)

	opts := []storefront.Option{
		storefront.WithLogger(log),
		storefront.WithRequestTimeout(cfg.RequestTimeout),
		storefront.WithReadinessTimeout(cfg.ReadinessTimeout),
	}
	if cfg.RateLimitEnabled {
		store := ratelimiter.NewMemoryStore(5 * time.Minute)
		defer store.Close()
		limiter, err := ratelimiter.NewBucket(store, cfg.Limits)
		if err != nil {
			return err
		}
		opts = append(opts, storefront.WithWriteLimiter(limiter))
	}
	for name, check := range backend.Checks {
		opts = append(opts, storefront.WithReadinessCheck(name, check))
	}
	srv := storefront.NewServer(api, backend.Store, visitors, submitter, opts...)

	go backend.RunPruner(ctx, cfg.PruneInterval, cfg.Postgres.CartTTL, log)

	server := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(l *slog.Logger) {
			cancel()
			l.Info("storefront stopped accepting requests")
		}),
	)
	log.InfoContext(ctx, "storefront starting",
		slog.String("api", api.BaseURL()),
		slog.String("cart_store", cfg.CartStore),
	)
	return server.Run(ctx, srv.Routes())
}
