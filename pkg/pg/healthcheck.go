package pg

import (
	"context"
	"errors"
	"fmt"
)

// cart_snapshots must exist and be readable; a fresh database that was
// never migrated fails here rather than on the first cart request.
const healthCartQuery = `SELECT EXISTS (SELECT 1 FROM cart_snapshots LIMIT 1)`

// Healthcheck verifies the pool can reach the cart table.
func (s *CartStore) Healthcheck(ctx context.Context) error {
	var seen bool
	if err := s.pool.QueryRow(ctx, healthCartQuery).Scan(&seen); err != nil {
		return errors.Join(ErrHealthcheckFailed, fmt.Errorf("cart_snapshots: %w", err))
	}
	return nil
}
