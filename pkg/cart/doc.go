// Package cart implements the shopper's cart session: an ordered collection of
// line items with derived totals, explicit mutation operations and pluggable
// persistence.
//
// A Cart is a plain value owned by the caller. There is no package-level cart;
// each view or request holds its own instance, typically restored from a Store
// at the beginning of the interaction.
//
// # Architecture
//
// State transitions are pure functions over item slices. The Cart applies a
// transition, recomputes the derived totals from scratch and then notifies its
// observers with the resulting Snapshot. Persistence is one such observer
// (Persister), so the transition logic can be exercised without any storage:
//
//	┌──────────┐  Add/Remove/SetQuantity/Clear  ┌────────┐
//	│  caller  │ ─────────────────────────────► │  Cart  │
//	└──────────┘                                └────────┘
//	                                                 │ Snapshot
//	                                                 ▼
//	                                          ┌────────────┐  Save  ┌───────┐
//	                                          │  Persister │ ─────► │ Store │
//	                                          └────────────┘        └───────┘
//
// # Usage
//
//	store := cart.NewMemoryStore()
//	c := cart.Restore(ctx, store, "visitor-token")
//
//	if err := c.Add(ctx, cart.ProductRef{ID: 7, Name: "Oak Table", Slug: "oak-table", UnitPrice: 450}); err != nil {
//	    // the mutation happened in memory but could not be persisted
//	}
//
//	snap := c.Snapshot()
//	fmt.Println(snap.TotalItems, cart.FormatPrice(snap.TotalPrice))
//
// # Invariants
//
//   - at most one line item per product id;
//   - a stored quantity is always >= 1, setting a quantity <= 0 removes the item;
//   - TotalItems and TotalPrice are recomputed after every mutation and never
//     mutated on their own.
//
// # Error Handling
//
// Mutators only fail when an observer fails. Restore never fails: a missing or
// corrupted record yields an empty cart and the corruption is logged.
package cart
