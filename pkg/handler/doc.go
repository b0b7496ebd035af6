// Package handler adapts typed request handlers to net/http and renders
// the storefront API's JSON envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// A handler receives its request already bound by the configured binders
// and returns a Response:
//
//	func getProduct(ctx handler.Context, req productRequest) handler.Response {
//		p, err := api.Product(ctx, req.Slug)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(p)
//	}
//
//	r.Get("/api/products/{slug}", handler.Wrap(getProduct,
//		handler.WithBinders[productRequest](binder.Path(chi.URLParam)),
//	))
package handler
