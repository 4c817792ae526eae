package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/pkg/validator"
)

func TestValidationErrors_Translate(t *testing.T) {
	t.Parallel()

	polite := func(key string, values map[string]any) string {
		switch key {
		case "validation.required":
			return fmt.Sprintf("Please enter your %v.", values["field"])
		case "validation.min_digits":
			return fmt.Sprintf("Use at least %v digits.", values["min"])
		default:
			return ""
		}
	}

	t.Run("replaces known keys", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("name", " "),
			validator.MinDigits("phone", "98-1", 7),
		)
		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 2)

		ve.Translate(polite)

		assert.Equal(t, "Please enter your name.", ve[0].Message)
		assert.Equal(t, "Use at least 7 digits.", ve[1].Message)
		assert.Equal(t, "validation.min_digits", ve[1].TranslationKey)
	})

	t.Run("empty result keeps the message", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.Any("contact", "provide a valid email or phone",
			validator.EmailString("email", "nope"),
		))
		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 1)

		ve.Translate(polite)

		assert.Equal(t, "provide a valid email or phone", ve[0].Message)
	})

	t.Run("errors without key are skipped", func(t *testing.T) {
		t.Parallel()

		ve := validator.ValidationErrors{{Field: "message", Message: "original"}}
		ve.Translate(func(string, map[string]any) string { return "changed" })

		assert.Equal(t, "original", ve[0].Message)
	})

	t.Run("nil fn and empty errors", func(t *testing.T) {
		t.Parallel()

		ve := validator.ValidationErrors{{Field: "name", Message: "is required", TranslationKey: "validation.required"}}
		ve.Translate(nil)
		assert.Equal(t, "is required", ve[0].Message)

		var none validator.ValidationErrors
		none.Translate(polite)
		assert.Empty(t, none)
	})
}
