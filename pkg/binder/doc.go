// Package binder populates request structs from JSON bodies, path
// parameters and query strings. Binders are composed by handler.Wrap.
//
//	type setQuantityRequest struct {
//		ID       int64 `path:"id"`
//		Quantity int   `json:"quantity"`
//	}
//
//	r.Put("/api/cart/items/{id}", handler.Wrap(setQuantity,
//		handler.WithBinders(binder.JSON(), binder.Path(chi.URLParam)),
//	))
package binder
