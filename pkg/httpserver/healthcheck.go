package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pieglobal/storefront/pkg/logger"
)

// Check reports whether a dependency can serve traffic.
type Check func(ctx context.Context) error

// HealthReport is the body written by the readiness handler.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LivenessHandler always answers 200 while the process can serve requests.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeReport(w, http.StatusOK, HealthReport{Status: "alive"})
	}
}

// ReadinessHandler runs every check concurrently with the request context,
// bounded by timeout. Any failure answers 503 and names the failing
// dependency; the whole probe takes as long as the slowest check.
func ReadinessHandler(log *slog.Logger, timeout time.Duration, checks map[string]Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		type outcome struct {
			name string
			err  error
			took time.Duration
		}
		results := make(chan outcome, len(checks))
		for name, check := range checks {
			go func() {
				start := time.Now()
				err := check(ctx)
				results <- outcome{name: name, err: err, took: time.Since(start)}
			}()
		}

		report := HealthReport{Status: "ready", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for range len(checks) {
			res := <-results
			if res.err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component(res.name),
					logger.Duration(res.took),
					logger.Error(res.err),
				)
				report.Checks[res.name] = "unavailable"
				report.Status = "not_ready"
				status = http.StatusServiceUnavailable
				continue
			}
			report.Checks[res.name] = "ok"
		}
		writeReport(w, status, report)
	}
}

func writeReport(w http.ResponseWriter, status int, report HealthReport) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}
