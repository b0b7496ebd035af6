package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/cart"
)

const productJSON = `{"id":12,"name":"Velvet Sofa","slug":"velvet-sofa","price":"899.99","compare_at_price":null,"category":"sofa","main_image":"/media/sofa.jpg","in_stock":true}`

func TestListProducts(t *testing.T) {
	t.Parallel()

	t.Run("paginated response", func(t *testing.T) {
		var query url.Values
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/", r.URL.Path)
			query = r.URL.Query()
			_, _ = io.WriteString(w, `{"count":31,"next":"http://x/api/products/?page=2","previous":null,"results":[`+productJSON+`]}`)
		}, apiclient.WithCacheBuster(func() string { return "fixed" }))

		page, err := c.ListProducts(context.Background(), url.Values{"category": {"sofa"}, "_cache": {"stale"}})
		require.NoError(t, err)

		assert.Equal(t, 31, page.Count)
		require.NotNil(t, page.Next)
		assert.Nil(t, page.Previous)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "velvet-sofa", page.Results[0].Slug)
		assert.Equal(t, "sofa", query.Get("category"))
		assert.Equal(t, []string{"fixed"}, query["_cache"])
	})

	t.Run("bare array response", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[`+productJSON+`,`+productJSON+`]`)
		})

		page, err := c.ListProducts(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Count)
		assert.Len(t, page.Results, 2)
	})

	t.Run("cache buster differs per call", func(t *testing.T) {
		var seen []string
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Query().Get("_cache"))
			_, _ = io.WriteString(w, `[]`)
		})

		for range 2 {
			_, err := c.ListProducts(context.Background(), nil)
			require.NoError(t, err)
		}
		require.Len(t, seen, 2)
		assert.NotEmpty(t, seen[0])
		assert.NotEqual(t, seen[0], seen[1])
	})
}

func TestProductEndpoints(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products/featured/", "/api/products/on_sale/":
			_, _ = io.WriteString(w, `[`+productJSON+`]`)
		case "/api/products/by_category/":
			_, _ = io.WriteString(w, `{"sofa":[`+productJSON+`],"bed":[]}`)
		case "/api/products/velvet-sofa/":
			_, _ = io.WriteString(w, productJSON)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Not found."}`)
		}
	})
	ctx := context.Background()

	featured, err := c.FeaturedProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 1)

	onSale, err := c.OnSaleProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, onSale, 1)

	grouped, err := c.ProductsByCategory(ctx)
	require.NoError(t, err)
	assert.Len(t, grouped["sofa"], 1)
	assert.Empty(t, grouped["bed"])

	p, err := c.Product(ctx, "velvet-sofa")
	require.NoError(t, err)
	assert.Equal(t, int64(12), p.ID)

	_, err = c.Product(ctx, "missing")
	assert.ErrorIs(t, err, apiclient.ErrNotFound)
}

func TestProduct_Ref(t *testing.T) {
	t.Parallel()

	var p apiclient.Product
	require.NoError(t, json.Unmarshal([]byte(productJSON), &p))

	ref, err := p.Ref()
	require.NoError(t, err)
	assert.Equal(t, cart.ProductRef{
		ID:        12,
		Name:      "Velvet Sofa",
		Slug:      "velvet-sofa",
		UnitPrice: 899.99,
		Image:     "/media/sofa.jpg",
	}, ref)

	_, err = apiclient.Product{ID: 1, Price: "n/a"}.Ref()
	assert.Error(t, err)

	_, err = apiclient.Product{ID: 1, Price: "-5.00"}.Ref()
	assert.Error(t, err)
}
