package redis

import (
	"context"
	"errors"
	"fmt"
)

const healthProbeKey = "__readyz__"

// Healthcheck pings the server and reads one key under the cart prefix in a
// single round trip, so an ACL that allows PING but not the cart keyspace
// still reports unready.
func (s *CartStore) Healthcheck(ctx context.Context) error {
	pipe := s.client.Pipeline()
	ping := pipe.Ping(ctx)
	exists := pipe.Exists(ctx, s.prefix+healthProbeKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	if err := ping.Err(); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	if err := exists.Err(); err != nil {
		return errors.Join(ErrHealthcheckFailed, fmt.Errorf("cart keyspace %q: %w", s.prefix, err))
	}
	return nil
}
