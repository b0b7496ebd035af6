// Package sanitizer normalizes user input before it leaves the service:
// trimming, case folding, character-safe truncation, clamping, rounding and
// HTML stripping (bluemonday strict policy) for free-text fields.
//
// Functions are plain transforms and compose with Apply:
//
//	email := sanitizer.Apply(raw, sanitizer.TrimToLower, sanitizer.Truncate(254))
//	qty := sanitizer.Clamp(item.Quantity, 1, 1000)
//	price := sanitizer.RoundToDecimalPlaces(item.UnitPrice, 2)
package sanitizer
