package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pieglobal/storefront/pkg/sanitizer"
)

func TestMaxLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter", "sofa", 10, "sofa"},
		{"exact", "sofa", 4, "sofa"},
		{"truncated", "velvet sofa", 6, "velvet"},
		{"runes kept whole", "Zoë Wanjiků", 3, "Zoë"},
		{"zero", "sofa", 0, ""},
		{"negative", "sofa", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.MaxLength(tt.in, tt.max))
			assert.Equal(t, tt.want, sanitizer.Truncate(tt.max)(tt.in))
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	email := sanitizer.Apply("  Jane.Doe@Example.COM ", sanitizer.TrimToLower, sanitizer.Truncate(8))
	assert.Equal(t, "jane.doe", email)

	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
	assert.Equal(t, "Jane Doe here", clean(" Jane\x00\n  Doe\there "))
	assert.Equal(t, "line\nbreak", sanitizer.RemoveControlChars("line\nbreak\x07"))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1000, sanitizer.Clamp(5000, 1, 1000))
	assert.Equal(t, 1, sanitizer.Clamp(0, 1, 1000))
	assert.Equal(t, 1, sanitizer.Clamp(-3, 1, 1000))
	assert.Equal(t, 42, sanitizer.Clamp(42, 1, 1000))
	assert.InDelta(t, 0.5, sanitizer.Clamp(0.5, 0.0, 1.0), 1e-12)
}

func TestRoundToDecimalPlaces(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 899.99, sanitizer.RoundToDecimalPlaces(899.994, 2), 1e-9)
	assert.InDelta(t, 0.13, sanitizer.RoundToDecimalPlaces(0.125, 2), 1e-9)
	assert.InDelta(t, 1799.98, sanitizer.RoundToDecimalPlaces(1799.9800000000002, 2), 1e-9)
	assert.InDelta(t, 3.0, sanitizer.RoundToDecimalPlaces(2.6, -1), 1e-9)
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Do you deliver to Mombasa?", "Do you deliver to Mombasa?"},
		{"ampersand kept", "Tables & chairs", "Tables & chairs"},
		{"tags removed", "<b>Hello</b> <a href=\"http://x\">there</a>", "Hello there"},
		{"script dropped", "hi<script>alert(1)</script>", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.StripHTML(tt.in))
		})
	}
}
