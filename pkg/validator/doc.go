// Package validator builds declarative validation out of small Rule values.
//
// Each constructor returns a Rule pairing a Check func with the error it
// reports. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//		validator.MinRunes("first_name", d.FirstName, 2).
//			WithMessage("First name must be at least 2 characters"),
//		validator.OptionalEmail("email", d.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		first, _ := verrs.First()
//		// show first.Message
//	}
//
// Length rules count characters (runes) so multi-byte names are measured the
// way a shopper sees them.
package validator
