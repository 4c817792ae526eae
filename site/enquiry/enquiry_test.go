package enquiry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/pkg/validator"
	"github.com/previz/site/site/enquiry"
)

func TestEnquiry_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		enquiry enquiry.Enquiry
		fields  []string
	}{
		{
			name:    "email only",
			enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi@example.com", Message: "Need a previs for a short film"},
		},
		{
			name:    "phone only",
			enquiry: enquiry.Enquiry{Name: "Ravi", Phone: "+91 98765 43210", Message: "Call me"},
		},
		{
			name:    "seven digits is enough",
			enquiry: enquiry.Enquiry{Name: "Ravi", Phone: "123-4567", Message: "Call me"},
		},
		{
			name:    "bad email rescued by phone",
			enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi@", Phone: "7395961056", Message: "Hi"},
		},
		{
			name:    "blank name",
			enquiry: enquiry.Enquiry{Name: "   ", Email: "ravi@example.com", Message: "Hi"},
			fields:  []string{"name"},
		},
		{
			name:    "blank message",
			enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi@example.com", Message: "\n\t"},
			fields:  []string{"message"},
		},
		{
			name:    "no way to reach the visitor",
			enquiry: enquiry.Enquiry{Name: "Ravi", Message: "Hi"},
			fields:  []string{"contact"},
		},
		{
			name:    "email without tld and short phone",
			enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi@example", Phone: "123456", Message: "Hi"},
			fields:  []string{"contact"},
		},
		{
			name:    "email with whitespace",
			enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi kumar@example.com", Message: "Hi"},
			fields:  []string{"contact"},
		},
		{
			name:    "everything missing",
			enquiry: enquiry.Enquiry{},
			fields:  []string{"name", "message", "contact"},
		},
		{
			name: "oversized fields",
			enquiry: enquiry.Enquiry{
				Name:    strings.Repeat("a", enquiry.MaxNameLen+1),
				Email:   "ravi@example.com",
				Message: strings.Repeat("m", enquiry.MaxMessageLen+1),
			},
			fields: []string{"name", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.enquiry.Validate()
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			errs := validator.ExtractValidationErrors(err)
			require.NotNil(t, errs)
			for _, field := range tt.fields {
				assert.True(t, errs.Has(field), "expected error for %s, got %v", field, errs)
			}
			assert.Len(t, errs.Fields(), len(tt.fields))
		})
	}
}

func TestEnquiry_Complete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		enquiry enquiry.Enquiry
		want    bool
	}{
		{name: "email", enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi@example.com", Message: "Hi"}, want: true},
		{name: "seven digit phone", enquiry: enquiry.Enquiry{Name: "Ravi", Phone: "123-4567", Message: "Hi"}, want: true},
		{name: "six digit phone", enquiry: enquiry.Enquiry{Name: "Ravi", Phone: "123456", Message: "Hi"}, want: false},
		{name: "bad email", enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi@example", Message: "Hi"}, want: false},
		{name: "blank name", enquiry: enquiry.Enquiry{Name: " ", Email: "ravi@example.com", Message: "Hi"}, want: false},
		{name: "blank message", enquiry: enquiry.Enquiry{Name: "Ravi", Email: "ravi@example.com", Message: "\n"}, want: false},
		{
			name: "over the length caps",
			enquiry: enquiry.Enquiry{
				Name:    strings.Repeat("a", enquiry.MaxNameLen+1),
				Email:   "ravi@example.com",
				Message: strings.Repeat("m", enquiry.MaxMessageLen+1),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.enquiry.Complete())
		})
	}
}

func TestEnquiry_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ravi", enquiry.Enquiry{Name: " Ravi "}.DisplayName())
	assert.Equal(t, "website visitor", enquiry.Enquiry{}.DisplayName())
	assert.Equal(t, "website visitor", enquiry.Enquiry{Name: "  "}.DisplayName())
}

func TestEnquiry_HasEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, enquiry.Enquiry{Email: "a@b.co"}.HasEmail())
	assert.False(t, enquiry.Enquiry{Email: "a@b"}.HasEmail())
	assert.False(t, enquiry.Enquiry{}.HasEmail())
}
