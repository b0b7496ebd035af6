package binder

import "net/http"

// Path binds `path:"name"` fields using extractor, typically chi.URLParam.
// Empty parameters are skipped.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrInvalidPath
		}
		return bindFields(v, "path", func(name string) (string, bool) {
			val := extractor(r, name)
			return val, val != ""
		}, ErrInvalidPath)
	}
}
