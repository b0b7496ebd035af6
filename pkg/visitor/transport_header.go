package visitor

import (
	"net/http"
	"strings"
	"time"
)

// DefaultHeader is the header used by HeaderTransport when none is given.
const DefaultHeader = "X-Cart-Token"

// HeaderTransport reads the token from a request header and echoes it in
// the response header of the same name. Clients that cannot hold cookies
// store the echoed value themselves.
type HeaderTransport struct {
	header string
}

func NewHeaderTransport(header string) *HeaderTransport {
	if header == "" {
		header = DefaultHeader
	}
	return &HeaderTransport{header: header}
}

func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.Header.Get(t.header))
	if value == "" {
		return "", ErrTokenNotFound
	}
	return value, nil
}

func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	w.Header().Set(t.header, token)
	if ttl > 0 {
		w.Header().Set(t.header+"-Expires", time.Now().Add(ttl).UTC().Format(time.RFC3339))
	}
	return nil
}

func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.header)
	w.Header().Del(t.header + "-Expires")
	return nil
}
