// Package enquiry relays contact form submissions to the studio mailbox.
//
// Every accepted enquiry produces exactly one outbound message addressed to
// the configured recipients. Nothing is stored and nothing is retried.
package enquiry

import (
	"errors"
	"strings"

	"github.com/previz/site/pkg/validator"
)

// Size caps applied to incoming fields.
const (
	MaxNameLen    = 200
	MaxPhoneLen   = 40
	MaxEmailLen   = 254
	MaxMessageLen = 5000

	// MinPhoneDigits is the number of digits that makes a phone number usable.
	MinPhoneDigits = 7
)

// MsgContactRequired is reported when neither email nor phone can be used.
const MsgContactRequired = "provide a valid email or phone"

// Enquiry is one contact form submission.
type Enquiry struct {
	Name    string `json:"name" form:"name" sanitize:"name" validate:"notblank,max=200"`
	Phone   string `json:"phone" form:"phone" sanitize:"phone" validate:"omitempty,max=40"`
	Email   string `json:"email" form:"email" sanitize:"email,singleline" validate:"omitempty,max=254"`
	Message string `json:"message" form:"message" sanitize:"newlines,trim" validate:"notblank,max=5000"`
}

// DisplayName is the name used in the subject line.
func (e Enquiry) DisplayName() string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	return "website visitor"
}

// HasEmail reports whether the visitor left an address that looks deliverable.
func (e Enquiry) HasEmail() bool {
	return validator.IsEmail(e.Email)
}

// Complete reports whether the page enables its submit button: name and
// message are not blank and the visitor left an email or a phone with at
// least MinPhoneDigits digits. Length caps are left to Validate.
func (e Enquiry) Complete() bool {
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Message) == "" {
		return false
	}
	return e.HasEmail() || validator.CountDigits(e.Phone) >= MinPhoneDigits
}

// Validate checks field rules plus the requirement that the visitor can be
// reached by email or phone.
func (e Enquiry) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.ValidateStruct(e); err != nil {
		if !validator.IsValidationError(err) {
			return err
		}
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}

	err := validator.Apply(validator.Any("contact", MsgContactRequired,
		validator.EmailString("email", e.Email),
		validator.MinDigits("phone", e.Phone, MinPhoneDigits),
	))
	var contact validator.ValidationErrors
	if errors.As(err, &contact) {
		errs = append(errs, contact...)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
