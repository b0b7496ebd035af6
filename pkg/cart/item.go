package cart

import (
	"slices"

	"github.com/shopspring/decimal"
)

// ProductID identifies a product in the catalog. It is the line item key.
type ProductID int64

// ProductRef is what a product listing or detail view hands to Add.
// Image may be empty; views fall back to a placeholder.
type ProductRef struct {
	ID        ProductID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	UnitPrice float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
}

// LineItem is one product entry of the cart with its quantity.
type LineItem struct {
	ProductID ProductID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	UnitPrice float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(li.UnitPrice).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Snapshot is the full state of a cart at a point in time.
// Items are in display order.
type Snapshot struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

// NewSnapshot copies items and derives the totals from them.
func NewSnapshot(items []LineItem) Snapshot {
	snap := Snapshot{Items: slices.Clone(items)}
	if snap.Items == nil {
		snap.Items = []LineItem{}
	}

	total := decimal.Zero
	for _, item := range snap.Items {
		snap.TotalItems += item.Quantity
		total = total.Add(item.Subtotal())
	}
	snap.TotalPrice = total.InexactFloat64()

	return snap
}

// IsEmpty reports whether the snapshot has no line items.
func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// Item returns the line item for id, if present.
func (s Snapshot) Item(id ProductID) (LineItem, bool) {
	for _, item := range s.Items {
		if item.ProductID == id {
			return item, true
		}
	}
	return LineItem{}, false
}
