package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes every tag from s and leaves plain text. Entities are
// decoded afterwards so "Tom & Jerry" survives unchanged.
func StripHTML(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
