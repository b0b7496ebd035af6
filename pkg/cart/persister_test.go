package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/cart"
)

type failingStore struct {
	loadErr error
	saveErr error
}

func (s failingStore) Load(context.Context, string) ([]byte, error) { return nil, s.loadErr }
func (s failingStore) Save(context.Context, string, []byte) error  { return s.saveErr }
func (s failingStore) Delete(context.Context, string) error        { return nil }

func TestPersistRestoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := cart.NewMemoryStore()

	c := cart.Open(ctx, store, "visitor-1")
	require.NoError(t, c.Add(ctx, sofa))
	require.NoError(t, c.Add(ctx, table))
	require.NoError(t, c.Add(ctx, lamp))
	require.NoError(t, c.SetQuantity(ctx, table.ID, 4))
	require.NoError(t, c.Add(ctx, sofa))

	want := c.Snapshot()
	got := cart.Restore(ctx, store, "visitor-1").Snapshot()

	assert.Equal(t, want, got)
	assert.Equal(t, []cart.ProductID{1, 2, 3}, []cart.ProductID{got.Items[0].ProductID, got.Items[1].ProductID, got.Items[2].ProductID})
}

func TestOpen_PersistsEveryMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := cart.NewMemoryStore()

	c := cart.Open(ctx, store, "visitor-2")
	require.NoError(t, c.Add(ctx, sofa))
	assert.Equal(t, 1, cart.Restore(ctx, store, "visitor-2").Snapshot().TotalItems)

	require.NoError(t, c.SetQuantity(ctx, sofa.ID, 6))
	assert.Equal(t, 6, cart.Restore(ctx, store, "visitor-2").Snapshot().TotalItems)

	require.NoError(t, c.Clear(ctx))
	assert.True(t, cart.Restore(ctx, store, "visitor-2").Snapshot().IsEmpty())
}

func TestRestore_FallsBackToEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name string
		data string
	}{
		{"garbage", "not json at all"},
		{"truncated", `{"version":1,"items":[{"id":1,"name":"So`},
		{"wrong version", `{"version":7,"items":[]}`},
		{"zero quantity", `{"version":1,"items":[{"id":1,"name":"Sofa","slug":"sofa","price":10,"quantity":0}]}`},
		{"negative price", `{"version":1,"items":[{"id":1,"name":"Sofa","slug":"sofa","price":-1,"quantity":1}]}`},
		{"duplicate ids", `{"version":1,"items":[{"id":1,"price":1,"quantity":1},{"id":1,"price":1,"quantity":2}]}`},
		{"wrong types", `{"version":1,"items":"sofa"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cart.NewMemoryStore()
			require.NoError(t, store.Save(ctx, "k", []byte(tt.data)))

			var c *cart.Cart
			require.NotPanics(t, func() { c = cart.Restore(ctx, store, "k") })
			snap := c.Snapshot()
			assert.True(t, snap.IsEmpty())
			assert.Zero(t, snap.TotalItems)
			assert.Zero(t, snap.TotalPrice)
		})
	}

	t.Run("missing record", func(t *testing.T) {
		c := cart.Restore(ctx, cart.NewMemoryStore(), "nobody")
		assert.True(t, c.Snapshot().IsEmpty())
	})

	t.Run("store unavailable", func(t *testing.T) {
		c := cart.Restore(ctx, failingStore{loadErr: errors.New("connection refused")}, "k")
		assert.True(t, c.Snapshot().IsEmpty())
	})
}

func TestPersister_SaveFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("connection reset")

	c := cart.Open(ctx, failingStore{loadErr: cart.ErrNotFound, saveErr: boom}, "k")
	err := c.Add(ctx, sofa)

	require.Error(t, err)
	assert.ErrorIs(t, err, cart.ErrPersistFailed)
	assert.ErrorIs(t, err, boom)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("encoded snapshot decodes with recomputed totals", func(t *testing.T) {
		snap := cart.NewSnapshot([]cart.LineItem{
			{ProductID: 1, Name: "Sofa", Slug: "sofa", UnitPrice: 10.25, Quantity: 2},
			{ProductID: 2, Name: "Chair", Slug: "chair", UnitPrice: 5, Quantity: 1},
		})
		data, err := cart.Encode(snap)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"version":1`)
		assert.NotContains(t, string(data), "total_price")

		got, err := cart.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, snap, got)
		assert.InDelta(t, 25.5, got.TotalPrice, 1e-9)
	})

	t.Run("corrupt record", func(t *testing.T) {
		_, err := cart.Decode([]byte("{"))
		assert.ErrorIs(t, err, cart.ErrCorruptSnapshot)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := cart.Decode([]byte(`{"version":2,"items":[]}`))
		assert.ErrorIs(t, err, cart.ErrUnsupportedVersion)
	})
}
