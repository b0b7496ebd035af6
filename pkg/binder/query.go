package binder

import "net/http"

// Query binds `query:"name"` fields from the URL query string. Only the
// first value of a repeated parameter is used.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindFields(v, "query", func(name string) (string, bool) {
			if !q.Has(name) {
				return "", false
			}
			return q.Get(name), true
		}, ErrInvalidQuery)
	}
}
