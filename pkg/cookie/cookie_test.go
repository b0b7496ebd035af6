package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/cookie"
)

const (
	secretA = "a-very-long-secret-key-for-testing-purposes-1"
	secretB = "b-very-long-secret-key-for-testing-purposes-2"
)

// roundTrip copies Set-Cookie headers from a recorder onto a fresh request.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := cookie.New(nil)
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	_, err = cookie.New([]string{"", ""})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	_, err = cookie.New([]string{"short"})
	assert.ErrorIs(t, err, cookie.ErrSecretTooShort)

	_, err = cookie.New([]string{secretA})
	assert.NoError(t, err)
}

func TestManager_Defaults(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{secretA}, cookie.WithSecure(true))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mgr.Set(rec, "plain", "value", cookie.WithMaxAge(60))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "value", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 60, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	got, err := mgr.Get(roundTrip(rec), "plain")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = mgr.Get(httptest.NewRequest(http.MethodGet, "/", nil), "plain")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mgr.SetSigned(rec, "token", "abc|def")

		got, err := mgr.GetSigned(roundTrip(rec), "token")
		require.NoError(t, err)
		assert.Equal(t, "abc|def", got)
	})

	t.Run("tampered value", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mgr.SetSigned(rec, "token", "alice")
		c := rec.Result().Cookies()[0]
		_, sig, _ := strings.Cut(c.Value, "|")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "Ym9i|" + sig})
		_, err := mgr.GetSigned(req, "token")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, v := range []string{"no-separator", "!!!|sig"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: "token", Value: v})
			_, err := mgr.GetSigned(req, "token")
			assert.ErrorIs(t, err, cookie.ErrInvalidFormat, v)
		}
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := cookie.New([]string{secretB})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		other.SetSigned(rec, "token", "alice")
		_, err = mgr.GetSigned(roundTrip(rec), "token")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{secretA})
	require.NoError(t, err)
	rotated, err := cookie.New([]string{secretB, secretA})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	old.SetSigned(rec, "token", "alice")

	got, err := rotated.GetSigned(roundTrip(rec), "token")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mgr.Delete(rec, "token")
	c := rec.Result().Cookies()[0]
	assert.Equal(t, "token", c.Name)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.NewFromConfig(cookie.Config{
		Secrets:  " " + secretB + " , " + secretA + ",",
		Path:     "/api",
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mgr.SetSigned(rec, "token", "v")
	c := rec.Result().Cookies()[0]
	assert.Equal(t, "/api", c.Path)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	_, err = cookie.NewFromConfig(cookie.Config{})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}
