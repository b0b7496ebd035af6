package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// CacheBusterParam is appended to product listings so intermediaries never
// serve a stale catalog.
const CacheBusterParam = "_cache"

// ListProducts returns a page of products filtered by params (category,
// search, ordering, page and so on are passed through untouched).
func (c *Client) ListProducts(ctx context.Context, params url.Values) (ProductPage, error) {
	query := url.Values{}
	for k, vs := range params {
		if k == CacheBusterParam {
			continue
		}
		query[k] = append([]string(nil), vs...)
	}
	query.Set(CacheBusterParam, c.cacheBuster())

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "products/", query, nil, &page); err != nil {
		return ProductPage{}, err
	}
	return page, nil
}

// Product returns the product with the given slug.
func (c *Client) Product(ctx context.Context, slug string) (Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodGet, "products/"+url.PathEscape(slug)+"/", nil, nil, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]Product, error) {
	return c.productList(ctx, "products/featured/")
}

func (c *Client) OnSaleProducts(ctx context.Context) ([]Product, error) {
	return c.productList(ctx, "products/on_sale/")
}

// ProductsByCategory returns active products grouped by category value.
func (c *Client) ProductsByCategory(ctx context.Context) (map[string][]Product, error) {
	out := map[string][]Product{}
	if err := c.do(ctx, http.MethodGet, "products/by_category/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) productList(ctx context.Context, path string) ([]Product, error) {
	out := []Product{}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
