package enquiry

import (
	"fmt"

	"github.com/previz/site/pkg/validator"
)

// fieldLabels names form fields the way the contact form does.
var fieldLabels = map[string]string{
	"name":    "name",
	"phone":   "phone number",
	"email":   "email address",
	"message": "message",
}

// formMessage turns a validation key into the sentence shown under a form
// field. Unknown keys return "" and keep the validator's message.
func formMessage(key string, values map[string]any) string {
	label := fieldLabels[fmt.Sprint(values["field"])]
	if label == "" {
		label = "value"
	}
	switch key {
	case "validation.required":
		return "Please enter your " + label + "."
	case "validation.max_length":
		return fmt.Sprintf("Your %s can be at most %v characters.", label, values["max"])
	case "validation.email":
		return "Please enter a valid email address."
	default:
		return ""
	}
}

// FieldMessages maps each failing field of err to the form's wording.
// It returns an empty map when err carries no validation errors.
func FieldMessages(err error) map[string]string {
	ve := validator.ExtractValidationErrors(err)
	if ve.IsEmpty() {
		return map[string]string{}
	}

	out := make(validator.ValidationErrors, len(ve))
	copy(out, ve)
	out.Translate(formMessage)
	return out.Fields()
}
