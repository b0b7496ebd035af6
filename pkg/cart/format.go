package cart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount for display as whole US dollars with
// thousands grouping, e.g. 1500 -> "$1,500".
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("$%d", int64(math.Round(amount)))
}
