package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var (
	ErrNotStruct  = errors.New("validator: expected struct or pointer to struct")
	ErrInvalidTag = errors.New("validator: invalid validate tag")
)

// structValidator is safe for concurrent use and caches parsed tags per type.
var structValidator = newStructValidator()

func newStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	custom := map[string]playground.Func{
		// notblank is required after trimming whitespace.
		"notblank": func(fl playground.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		// digits=N counts digits anywhere in the value.
		"digits": func(fl playground.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				panic(fmt.Sprintf("digits: bad parameter %q", fl.Param()))
			}
			return CountDigits(fl.Field().String()) >= n
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// ValidateStruct evaluates go-playground `validate` tags, plus notblank and
// digits=N, and reports failures as ValidationErrors keyed like the Rule
// constructors ("validation.required", "validation.max_length", ...).
// The field name comes from the json tag, then the form tag, then the Go name.
//
//	Name  string `json:"name" validate:"notblank,max=200"`
//	Phone string `json:"phone" validate:"omitempty,digits=7"`
//
// A tag that cannot be evaluated returns a wrapped ErrInvalidTag.
func ValidateStruct(v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidTag, r)
		}
	}()

	err = structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *playground.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrNotStruct
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fromFieldError(fe))
	}
	return out
}

func fromFieldError(fe playground.FieldError) ValidationError {
	field := fe.Field()
	n, _ := strconv.Atoi(fe.Param())

	var r Rule
	switch fe.Tag() {
	case "required", "notblank":
		r = RequiredString(field, "")
	case "min":
		r = MinLenString(field, "", n)
	case "max":
		r = MaxLenString(field, "", n)
	case "email":
		r = EmailString(field, "")
	case "digits":
		r = MinDigits(field, "", n)
	default:
		r = rule(field, "validation."+fe.Tag(), "is invalid", map[string]any{"param": fe.Param()}, nil)
	}
	return r.Error
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		if name, _, _ := strings.Cut(f.Tag.Get(key), ","); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}
