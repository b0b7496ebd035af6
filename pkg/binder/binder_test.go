package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/binder"
)

type addItemRequest struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
}

func jsonRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		var req addItemRequest
		err := binder.JSON()(jsonRequest(`{"product_id":7,"name":"Oak Chair"}`, "application/json; charset=utf-8"), &req)
		require.NoError(t, err)
		assert.Equal(t, addItemRequest{ProductID: 7, Name: "Oak Chair"}, req)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"form content type", `a=b`, "application/x-www-form-urlencoded", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrInvalidJSON},
		{"malformed", `{"product_id":`, "application/json", binder.ErrInvalidJSON},
		{"wrong type", `{"product_id":"seven"}`, "application/json", binder.ErrInvalidJSON},
		{"unknown field", `{"product_id":1,"price":0}`, "application/json", binder.ErrInvalidJSON},
		{"trailing data", `{"product_id":1}{"product_id":2}`, "application/json", binder.ErrInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req addItemRequest
			err := binder.JSON()(jsonRequest(tt.body, tt.contentType), &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		var req addItemRequest
		body := `{"name":"` + strings.Repeat("x", 100) + `"}`
		err := binder.JSONWithLimit(32)(jsonRequest(body, "application/json"), &req)
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})
}

type itemPath struct {
	ID       int64  `path:"id"`
	Slug     string `path:"slug"`
	Quantity *int   `query:"qty"`
	Featured bool   `query:"featured"`
	Skipped  string `query:"-"`
}

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{"id": "42", "slug": "oak-chair"}
	extract := func(_ *http.Request, name string) string { return params[name] }

	var dst itemPath
	require.NoError(t, binder.Path(extract)(httptest.NewRequest(http.MethodGet, "/", nil), &dst))
	assert.Equal(t, int64(42), dst.ID)
	assert.Equal(t, "oak-chair", dst.Slug)

	bad := func(_ *http.Request, name string) string {
		if name == "id" {
			return "abc"
		}
		return ""
	}
	err := binder.Path(bad)(httptest.NewRequest(http.MethodGet, "/", nil), &dst)
	assert.ErrorIs(t, err, binder.ErrInvalidPath)

	assert.ErrorIs(t, binder.Path(nil)(httptest.NewRequest(http.MethodGet, "/", nil), &dst), binder.ErrInvalidPath)
	assert.ErrorIs(t, binder.Path(extract)(httptest.NewRequest(http.MethodGet, "/", nil), dst), binder.ErrInvalidTarget)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	var dst itemPath
	r := httptest.NewRequest(http.MethodGet, "/?qty=3&featured=true&Skipped=x", nil)
	require.NoError(t, binder.Query()(r, &dst))
	require.NotNil(t, dst.Quantity)
	assert.Equal(t, 3, *dst.Quantity)
	assert.True(t, dst.Featured)
	assert.Empty(t, dst.Skipped)

	var none itemPath
	require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), &none))
	assert.Nil(t, none.Quantity)

	err := binder.Query()(httptest.NewRequest(http.MethodGet, "/?featured=maybe", nil), &none)
	assert.ErrorIs(t, err, binder.ErrInvalidQuery)
}
