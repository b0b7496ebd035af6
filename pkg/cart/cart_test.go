package cart_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/cart"
)

var (
	sofa  = cart.ProductRef{ID: 1, Name: "Velvet Sofa", Slug: "velvet-sofa", UnitPrice: 899.99, Image: "/media/sofa.jpg"}
	table = cart.ProductRef{ID: 2, Name: "Oak Table", Slug: "oak-table", UnitPrice: 450}
	lamp  = cart.ProductRef{ID: 3, Name: "Floor Lamp", Slug: "floor-lamp", UnitPrice: 35.5}
)

func TestCart_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("new product appended with quantity 1", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, sofa))
		require.NoError(t, c.Add(ctx, table))

		snap := c.Snapshot()
		require.Len(t, snap.Items, 2)
		assert.Equal(t, cart.ProductID(1), snap.Items[0].ProductID)
		assert.Equal(t, cart.ProductID(2), snap.Items[1].ProductID)
		assert.Equal(t, 1, snap.Items[0].Quantity)
		assert.Equal(t, "velvet-sofa", snap.Items[0].Slug)
		assert.Equal(t, "/media/sofa.jpg", snap.Items[0].Image)
	})

	t.Run("same product twice gives one line with quantity 2", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, sofa))
		require.NoError(t, c.Add(ctx, sofa))

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 2, snap.Items[0].Quantity)
		assert.Equal(t, 2, snap.TotalItems)
		assert.InDelta(t, 1799.98, snap.TotalPrice, 1e-9)
	})

	t.Run("repeat add keeps insertion order", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, sofa))
		require.NoError(t, c.Add(ctx, table))
		require.NoError(t, c.Add(ctx, sofa))

		snap := c.Snapshot()
		require.Len(t, snap.Items, 2)
		assert.Equal(t, cart.ProductID(1), snap.Items[0].ProductID)
		assert.Equal(t, 2, snap.Items[0].Quantity)
	})
}

func TestCart_Remove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("existing item", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, sofa))
		require.NoError(t, c.Add(ctx, table))
		require.NoError(t, c.Remove(ctx, sofa.ID))

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, table.ID, snap.Items[0].ProductID)
		assert.Equal(t, 1, snap.TotalItems)
		assert.InDelta(t, 450.0, snap.TotalPrice, 1e-9)
	})

	t.Run("absent id leaves snapshot unchanged", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, sofa))
		before := c.Snapshot()

		require.NoError(t, c.Remove(ctx, 999))
		assert.Equal(t, before, c.Snapshot())
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sets quantity without upper bound", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, lamp))
		require.NoError(t, c.SetQuantity(ctx, lamp.ID, 5000))

		snap := c.Snapshot()
		assert.Equal(t, 5000, snap.Items[0].Quantity)
		assert.Equal(t, 5000, snap.TotalItems)
		assert.InDelta(t, 177500.0, snap.TotalPrice, 1e-9)
	})

	t.Run("zero removes the item", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, lamp))
		require.NoError(t, c.SetQuantity(ctx, lamp.ID, 0))
		assert.True(t, c.Snapshot().IsEmpty())
	})

	t.Run("negative removes the item", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, lamp))
		require.NoError(t, c.Add(ctx, table))
		require.NoError(t, c.SetQuantity(ctx, lamp.ID, -3))

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, table.ID, snap.Items[0].ProductID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.Add(ctx, lamp))
		before := c.Snapshot()

		require.NoError(t, c.SetQuantity(ctx, 42, 7))
		assert.Equal(t, before, c.Snapshot())
	})
}

func TestCart_Clear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := cart.New()
	require.NoError(t, c.Add(ctx, sofa))
	require.NoError(t, c.Add(ctx, table))
	require.NoError(t, c.Clear(ctx))

	snap := c.Snapshot()
	assert.Empty(t, snap.Items)
	assert.NotNil(t, snap.Items)
	assert.Zero(t, snap.TotalItems)
	assert.Zero(t, snap.TotalPrice)
}

func TestCart_SnapshotIsACopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := cart.New()
	require.NoError(t, c.Add(ctx, sofa))

	snap := c.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, c.Snapshot().Items[0].Quantity)
}

func TestCart_TotalsNeverDrift(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	refs := []cart.ProductRef{sofa, table, lamp,
		{ID: 4, Name: "Bookshelf", Slug: "bookshelf", UnitPrice: 0.1},
		{ID: 5, Name: "Stool", Slug: "stool", UnitPrice: 19.99},
	}
	rng := rand.New(rand.NewPCG(7, 11))
	c := cart.New()

	for range 2000 {
		ref := refs[rng.IntN(len(refs))]
		switch rng.IntN(3) {
		case 0:
			require.NoError(t, c.Add(ctx, ref))
		case 1:
			require.NoError(t, c.Remove(ctx, ref.ID))
		case 2:
			require.NoError(t, c.SetQuantity(ctx, ref.ID, rng.IntN(8)-2))
		}

		snap := c.Snapshot()
		wantItems := 0
		wantPrice := 0.0
		seen := map[cart.ProductID]bool{}
		for _, item := range snap.Items {
			require.False(t, seen[item.ProductID], "duplicate line item")
			seen[item.ProductID] = true
			require.GreaterOrEqual(t, item.Quantity, 1)
			wantItems += item.Quantity
			wantPrice += item.UnitPrice * float64(item.Quantity)
		}
		require.Equal(t, wantItems, snap.TotalItems)
		require.InDelta(t, wantPrice, snap.TotalPrice, 1e-6)
	}
}

func TestCart_Observers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("notified after every mutation with the new snapshot", func(t *testing.T) {
		var seen []cart.Snapshot
		c := cart.New(cart.WithObserver(cart.ObserverFunc(func(_ context.Context, snap cart.Snapshot) error {
			seen = append(seen, snap)
			return nil
		})))

		require.NoError(t, c.Add(ctx, sofa))
		require.NoError(t, c.SetQuantity(ctx, sofa.ID, 3))
		require.NoError(t, c.Remove(ctx, sofa.ID))
		require.NoError(t, c.Clear(ctx))

		require.Len(t, seen, 4)
		assert.Equal(t, 1, seen[0].TotalItems)
		assert.Equal(t, 3, seen[1].TotalItems)
		assert.True(t, seen[2].IsEmpty())
		assert.True(t, seen[3].IsEmpty())
	})

	t.Run("observer failure is returned", func(t *testing.T) {
		boom := errors.New("disk full")
		c := cart.New()
		c.Subscribe(cart.ObserverFunc(func(context.Context, cart.Snapshot) error { return boom }))

		err := c.Add(ctx, sofa)
		assert.ErrorIs(t, err, cart.ErrPersistFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil observer ignored", func(t *testing.T) {
		c := cart.New(cart.WithObserver(nil))
		c.Subscribe(nil)
		assert.NoError(t, c.Add(ctx, sofa))
	})
}

func TestSnapshot_Item(t *testing.T) {
	t.Parallel()

	snap := cart.NewSnapshot([]cart.LineItem{{ProductID: 9, Name: "Desk", UnitPrice: 120, Quantity: 2}})

	item, ok := snap.Item(9)
	require.True(t, ok)
	assert.Equal(t, "Desk", item.Name)
	assert.Equal(t, "240", item.Subtotal().String())

	_, ok = snap.Item(10)
	assert.False(t, ok)
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$0", cart.FormatPrice(0))
	assert.Equal(t, "$450", cart.FormatPrice(450))
	assert.Equal(t, "$1,500", cart.FormatPrice(1500))
	assert.Equal(t, "$1,300", cart.FormatPrice(1299.99))
}
