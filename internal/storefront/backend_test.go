package storefront_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/internal/storefront"
)

func TestOpenBackend_Memory(t *testing.T) {
	t.Parallel()

	b, err := storefront.OpenBackend(context.Background(), storefront.Config{CartStore: storefront.StoreMemory}, nil)
	require.NoError(t, err)
	defer b.Close()

	assert.NotNil(t, b.Store)
	assert.NotNil(t, b.Guard)
	assert.Nil(t, b.Prune)
	require.Contains(t, b.Checks, "cart_store")
	assert.NoError(t, b.Checks["cart_store"](context.Background()))
}

func TestOpenBackend_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := storefront.OpenBackend(context.Background(), storefront.Config{CartStore: "cassandra"}, nil)
	assert.ErrorIs(t, err, storefront.ErrUnknownStore)
}

func TestBackend_RunPruner(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	b := &storefront.Backend{
		Prune: func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 1, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.RunPruner(ctx, 5*time.Millisecond, time.Hour, nil)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
