package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pieglobal/storefront/pkg/cart"
)

const (
	loadCartQuery   = `SELECT payload FROM cart_snapshots WHERE cart_key = $1`
	deleteCartQuery = `DELETE FROM cart_snapshots WHERE cart_key = $1`
	pruneCartsQuery = `DELETE FROM cart_snapshots WHERE updated_at < $1`
	saveCartQuery   = `
INSERT INTO cart_snapshots (cart_key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (cart_key) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
)

// CartStore keeps encoded cart snapshots in the cart_snapshots table.
type CartStore struct {
	pool *pgxpool.Pool
}

// NewCartStore panics on a nil pool.
func NewCartStore(pool *pgxpool.Pool) *CartStore {
	if pool == nil {
		panic(ErrNilPool)
	}
	return &CartStore{pool: pool}
}

func (s *CartStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, cart.ErrEmptyKey
	}
	var data []byte
	if err := s.pool.QueryRow(ctx, loadCartQuery, key).Scan(&data); err != nil {
		if IsNotFoundError(err) {
			return nil, cart.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *CartStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return cart.ErrEmptyKey
	}
	_, err := s.pool.Exec(ctx, saveCartQuery, key, data)
	return err
}

func (s *CartStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return cart.ErrEmptyKey
	}
	_, err := s.pool.Exec(ctx, deleteCartQuery, key)
	return err
}

// PruneExpired deletes carts not saved since before and reports how many
// rows were removed.
func (s *CartStore) PruneExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, pruneCartsQuery, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

var _ cart.Store = (*CartStore)(nil)
