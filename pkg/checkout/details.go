package checkout

import (
	"strings"

	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/cart"
	"github.com/pieglobal/storefront/pkg/sanitizer"
	"github.com/pieglobal/storefront/pkg/validator"
)

// Shopper-facing validation messages, in the order the rules are checked.
const (
	MsgEmptyCart = "Your cart is empty"
	MsgFirstName = "First name must be at least 2 characters"
	MsgLastName  = "Last name must be at least 2 characters"
	MsgPhone     = "Please provide a valid phone number"
	MsgAddress   = "Please provide a complete address"
)

const (
	// PaymentMethod is the only payment method offered.
	PaymentMethod = "Cash on Delivery"

	maxNameLen     = 100
	maxEmailLen    = 254
	maxPhoneLen    = 20
	maxAddressLen  = 200
	maxCityLen     = 100
	maxNotesLen    = 500
	maxItemNameLen = 200
	minItemQty     = 1
	maxItemQty     = 1000
)

// Details are the delivery details entered on the checkout form.
type Details struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Notes     string `json:"delivery_notes"`
}

// Validate checks snap and d before anything is sent. The returned error is a
// validator.ValidationErrors whose first entry is the message to show.
func Validate(snap cart.Snapshot, d Details) error {
	return validator.Apply(
		validator.RequiredSlice("items", snap.Items).WithMessage(MsgEmptyCart),
		validator.MinRunes("first_name", d.FirstName, 2).WithMessage(MsgFirstName),
		validator.MinRunes("last_name", d.LastName, 2).WithMessage(MsgLastName),
		validator.MinRunes("phone", d.Phone, 8).WithMessage(MsgPhone),
		validator.MinRunes("address", d.Address, 5).WithMessage(MsgAddress),
	)
}

// FirstMessage returns the message of the first failed rule in err, or "".
func FirstMessage(err error) string {
	if first, ok := validator.ExtractValidationErrors(err).First(); ok {
		return first.Message
	}
	return ""
}

// Shape builds the order payload from snap and d. Every field is bounded and
// normalized whether or not Validate passed. TotalAmount is the snapshot
// total rounded to cents; it is not recomputed from clamped quantities.
// A blank city is sent blank.
func Shape(snap cart.Snapshot, d Details) apiclient.OrderRequest {
	items := make([]apiclient.OrderItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, apiclient.OrderItem{
			ProductID: int64(item.ProductID),
			Name:      sanitizer.MaxLength(item.Name, maxItemNameLen),
			Price:     sanitizer.RoundToDecimalPlaces(item.UnitPrice, 2),
			Qty:       sanitizer.Clamp(item.Quantity, minItemQty, maxItemQty),
		})
	}

	return apiclient.OrderRequest{
		Name:          sanitizer.MaxLength(strings.TrimSpace(d.FirstName)+" "+strings.TrimSpace(d.LastName), maxNameLen),
		Email:         sanitizer.Apply(d.Email, sanitizer.TrimToLower, sanitizer.Truncate(maxEmailLen)),
		Phone:         sanitizer.Apply(d.Phone, sanitizer.Trim, sanitizer.Truncate(maxPhoneLen)),
		Address:       sanitizer.Apply(d.Address, sanitizer.Trim, sanitizer.Truncate(maxAddressLen)),
		City:          sanitizer.MaxLength(strings.TrimSpace(d.City), maxCityLen),
		PostalCode:    "",
		Notes:         sanitizer.Apply(d.Notes, sanitizer.Trim, sanitizer.Truncate(maxNotesLen)),
		PaymentMethod: PaymentMethod,
		Items:         items,
		TotalAmount:   sanitizer.RoundToDecimalPlaces(snap.TotalPrice, 2),
	}
}
