// Package checkout turns a cart and the shopper's delivery details into an
// order and submits it.
//
// Validate applies the checkout form rules in a fixed order (non-empty cart,
// first name, last name, phone, address) and Shape bounds and normalizes the
// payload. Submitter ties them together:
//
//	sub := checkout.NewSubmitter(apiClient, checkout.WithLogger(log))
//	res := sub.Submit(ctx, visitorKey, c, details)
//	if res.OK() {
//		// redirect to res.Redirect
//	}
//
// A second Submit for a key whose submission is still in flight returns
// OutcomeBusy at once. Validation failures never reach the network. A 429
// from the backend yields OutcomeRateLimited; any other failure yields
// OutcomeFailed with the backend's detail text when it sent one. The cart is
// cleared only on OutcomeSucceeded. Nothing is retried.
//
// When the cart is shared with other requests, SubmitWith takes an opener
// that locks and loads the cart once the busy guard is held.
package checkout
