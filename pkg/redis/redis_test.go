package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/redis"
)

// testClient connects to REDIS_TEST_URL or skips the test.
func testClient(t *testing.T) *goredis.Client {
	t.Helper()
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "mysql://nope"})
	assert.ErrorIs(t, err, redis.ErrParseConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrNotReady)
}

func TestNilClientPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { redis.NewCartStore(nil, "cart:", 0) })
	assert.Panics(t, func() { redis.NewCheckoutGuard(nil, "lock:", 0) })
}

func TestCartStore(t *testing.T) {
	client := testClient(t)
	store := redis.NewCartStore(client, "test:cart:"+uuid.NewString()+":", time.Minute)
	ctx := context.Background()

	_, err := store.Load(ctx, "k1")
	assert.ErrorIs(t, err, cart.ErrNotFound)

	require.NoError(t, store.Save(ctx, "k1", []byte(`{"version":1}`)))
	data, err := store.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))

	require.NoError(t, store.Delete(ctx, "k1"))
	_, err = store.Load(ctx, "k1")
	assert.ErrorIs(t, err, cart.ErrNotFound)

	assert.ErrorIs(t, store.Save(ctx, "", nil), cart.ErrEmptyKey)
	assert.NoError(t, store.Healthcheck(ctx))
}

func TestCartStore_PersistsCart(t *testing.T) {
	client := testClient(t)
	store := redis.NewCartStore(client, "test:cart:"+uuid.NewString()+":", time.Minute)
	ctx := context.Background()

	c := cart.Open(ctx, store, "shopper")
	require.NoError(t, c.Add(ctx, cart.ProductRef{ID: 7, Name: "Oak Chair", UnitPrice: 120}))

	restored := cart.Restore(ctx, store, "shopper")
	assert.Equal(t, c.Snapshot(), restored.Snapshot())
}

func TestCheckoutGuard(t *testing.T) {
	client := testClient(t)
	guard := redis.NewCheckoutGuard(client, "test:lock:"+uuid.NewString()+":", time.Minute)
	ctx := context.Background()

	release, ok, err := guard.TryAcquire(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = guard.TryAcquire(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok, "second acquire for the same key is refused")

	other, ok, err := guard.TryAcquire(ctx, "k2")
	require.NoError(t, err)
	assert.True(t, ok)
	other()

	release()
	again, ok, err := guard.TryAcquire(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	again()
}
