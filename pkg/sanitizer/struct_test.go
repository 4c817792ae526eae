package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/pkg/sanitizer"
)

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.CollapseSpace("  a \n b\t\tc "))
	assert.Equal(t, "hello@example.com", sanitizer.Email("  Hello@Example.COM "))
	assert.Equal(t, "+91 73959-61056", sanitizer.Phone("+91 73959-61056 ext"))
	assert.Equal(t, "(044) 123", sanitizer.Phone("(044)  123<b>"))
	assert.Equal(t, "a  b", sanitizer.SingleLine("a\r\nb\x00"))
	assert.Equal(t, "line1\nline2\nline3", sanitizer.NormalizeNewlines("line1\r\nline2\rline3"))
	assert.Equal(t, "Jane Doe", sanitizer.Name("  <b>Jane</b>\n  Doe "))
}

func TestSanitizeStruct(t *testing.T) {
	t.Parallel()

	type contact struct {
		Name    string `sanitize:"trim,name"`
		Email   string `sanitize:"trim,email"`
		Phone   string `sanitize:"phone"`
		Message string `sanitize:"trim,newlines"`
		Raw     string
		Count   int `sanitize:"trim"`
	}

	t.Run("applies tags in order", func(t *testing.T) {
		t.Parallel()

		c := contact{
			Name:    "  <script>x</script>Ravi  Kumar ",
			Email:   " RAVI@Example.com ",
			Phone:   " 73959 61056 ",
			Message: " line one\r\nline two ",
			Raw:     "  untouched ",
			Count:   3,
		}
		require.NoError(t, sanitizer.SanitizeStruct(&c))

		assert.Equal(t, "Ravi Kumar", c.Name)
		assert.Equal(t, "ravi@example.com", c.Email)
		assert.Equal(t, "73959 61056", c.Phone)
		assert.Equal(t, "line one\nline two", c.Message)
		assert.Equal(t, "  untouched ", c.Raw)
		assert.Equal(t, 3, c.Count)
	})

	t.Run("walks nested structs", func(t *testing.T) {
		t.Parallel()

		type outer struct {
			Inner struct {
				Value string `sanitize:"trim,lower"`
			}
		}
		var o outer
		o.Inner.Value = "  MIXED "
		require.NoError(t, sanitizer.SanitizeStruct(&o))
		assert.Equal(t, "mixed", o.Inner.Value)
	})

	t.Run("rejects non pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, sanitizer.SanitizeStruct(contact{}), sanitizer.ErrNotStructPointer)
	})

	t.Run("rejects unknown tag", func(t *testing.T) {
		t.Parallel()
		v := struct {
			Field string `sanitize:"trim,bogus"`
		}{Field: "x"}
		assert.ErrorIs(t, sanitizer.SanitizeStruct(&v), sanitizer.ErrUnknownTag)
	})
}
