package visitor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/cookie"
	"github.com/pieglobal/storefront/pkg/visitor"
)

const secret = "a-very-long-secret-key-for-testing-purposes-1"

func newManager(t *testing.T) *visitor.Manager {
	t.Helper()
	cookies, err := cookie.New([]string{secret})
	require.NoError(t, err)
	return visitor.NewFromConfig(visitor.Config{
		CookieName: "cart_token",
		Header:     "X-Cart-Token",
		TTL:        time.Hour,
	}, cookies)
}

func TestEnsure_MintsToken(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	token, err := m.Ensure(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.True(t, visitor.ValidToken(token))
	assert.Len(t, token, visitor.TokenLength)
	assert.Equal(t, token, rec.Header().Get("X-Cart-Token"))
	assert.NotEmpty(t, rec.Header().Get("X-Cart-Token-Expires"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cart_token", cookies[0].Name)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestEnsure_ReusesToken(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	first := httptest.NewRecorder()
	token, err := m.Ensure(first, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	t.Run("from cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range first.Result().Cookies() {
			req.AddCookie(c)
		}
		got, err := m.Ensure(httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.Equal(t, token, got)
	})

	t.Run("from header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Cart-Token", token)
		got, err := m.Ensure(httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.Equal(t, token, got)
	})
}

func TestEnsure_ReplacesBadTokens(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Cart-Token", "../../etc/passwd")
		got, err := m.Ensure(httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.NotEqual(t, "../../etc/passwd", got)
		assert.True(t, visitor.ValidToken(got))
	})

	t.Run("unsigned cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "cart_token", Value: "forged"})
		got, err := m.Ensure(httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.True(t, visitor.ValidToken(got))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := visitor.FromContext(r.Context())
		require.True(t, ok)
		seen = token
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, seen, rec.Header().Get("X-Cart-Token"))

	_, ok := visitor.FromContext(context.Background())
	assert.False(t, ok)
}

func TestForget(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	_, err := m.Ensure(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	clear := httptest.NewRecorder()
	require.NoError(t, m.Forget(clear))
	assert.Empty(t, clear.Header().Get("X-Cart-Token"))
	cookies := clear.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestValidToken(t *testing.T) {
	t.Parallel()

	assert.False(t, visitor.ValidToken(""))
	assert.False(t, visitor.ValidToken("short"))
	assert.False(t, visitor.ValidToken("0123456789012345678901234567890123456789+/="))
	assert.True(t, visitor.ValidToken("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"))
}
