// Package storefront is the furniture storefront's backend for the browser
// app. It keeps each shopper's cart server-side, keyed by a visitor token,
// runs checkout against the furniture API and proxies catalog reads.
//
// Routes:
//
//	GET    /api/cart               current cart
//	DELETE /api/cart               empty the cart
//	POST   /api/cart/items         add one unit of {"slug": ...}
//	PUT    /api/cart/items/{id}    set quantity; zero or less removes
//	DELETE /api/cart/items/{id}    remove a line
//	POST   /api/checkout           place the order
//	GET    /api/products[/featured|/on-sale|/by-category|/{slug}]
//	GET    /api/sliders, /api/videos, /api/about
//	POST   /api/messages           contact form
//	GET    /healthz, /readyz
package storefront
