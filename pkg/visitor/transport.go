package visitor

import (
	"net/http"
	"time"
)

// Transport carries the visitor token between browser and server.
type Transport interface {
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearToken(w http.ResponseWriter) error
}
