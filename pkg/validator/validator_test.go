package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieglobal/storefront/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Jane"),
			validator.MinRunes("name", "Jane", 2),
		)
		assert.NoError(t, err)
	})

	t.Run("failures keep rule order", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredSlice("items", []int{}),
			validator.MinRunes("first_name", " A ", 2).WithMessage("First name must be at least 2 characters"),
			validator.RequiredString("phone", "0712345678"),
			validator.MaxRunes("notes", "abcdef", 3),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"items", "first_name", "notes"}, verrs.Fields())
		assert.True(t, verrs.Has("notes"))
		assert.False(t, verrs.Has("phone"))
		assert.Equal(t, []string{"First name must be at least 2 characters"}, verrs.Get("first_name"))

		first, ok := verrs.First()
		require.True(t, ok)
		assert.Equal(t, "items", first.Field)
		assert.Contains(t, err.Error(), "notes: must be at most 3 characters long")
	})

	t.Run("wrapped errors are found", func(t *testing.T) {
		err := fmt.Errorf("checkout: %w", validator.Apply(validator.RequiredString("x", "")))
		assert.True(t, validator.IsValidationError(err))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
		assert.Nil(t, validator.ExtractValidationErrors(fmt.Errorf("plain")))
	})

	t.Run("empty errors", func(t *testing.T) {
		_, ok := validator.ValidationErrors{}.First()
		assert.False(t, ok)
		assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
	})
}

func TestRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		valid bool
	}{
		{"min counts runes", validator.MinRunes("f", "Zoë", 3), true},
		{"min trims", validator.MinRunes("f", "  A  ", 2), false},
		{"min exact", validator.MinRunes("f", "Rd St", 5), true},
		{"max counts runes", validator.MaxRunes("f", "ñññ", 3), true},
		{"max exceeded", validator.MaxRunes("f", "abcd", 3), false},
		{"required blank", validator.RequiredString("f", " \t"), false},
		{"required slice", validator.RequiredSlice("f", []string{"a"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, tt.rule.Check())
		})
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		valid    bool
		optional bool
	}{
		{"jane@example.com", true, true},
		{"jane.doe+shop@mail.example.co.ke", true, true},
		{"", false, true},
		{"   ", false, true},
		{"jane", false, false},
		{"jane@localhost", false, false},
		{"jane@example.", false, false},
		{"jane@.example.com", false, false},
		{"Jane <jane@example.com>", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, validator.ValidEmail("email", tt.value).Check())
			assert.Equal(t, tt.optional, validator.OptionalEmail("email", tt.value).Check())
		})
	}
}
