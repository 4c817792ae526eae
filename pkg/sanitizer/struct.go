package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrNotStructPointer = errors.New("sanitizer: expected pointer to struct")
	ErrUnknownTag       = errors.New("sanitizer: unknown sanitize tag")
)

const tagName = "sanitize"

var funcs = map[string]func(string) string{
	"trim":       Trim,
	"lower":      Lower,
	"collapse":   CollapseSpace,
	"singleline": SingleLine,
	"email":      Email,
	"phone":      Phone,
	"name":       Name,
	"newlines":   NormalizeNewlines,
	"strip_html": StripHTML,
	"html":       SanitizeHTML,
}

// SanitizeStruct applies the `sanitize` tag of every exported string field
// of the struct v points to. Nested structs are walked.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return sanitizeValue(rv.Elem())
}

func sanitizeValue(rv reflect.Value) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if fv.Kind() == reflect.Struct {
			if err := sanitizeValue(fv); err != nil {
				return err
			}
			continue
		}

		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" || fv.Kind() != reflect.String {
			continue
		}

		out := fv.String()
		for name := range strings.SplitSeq(tag, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			fn, ok := funcs[name]
			if !ok {
				return fmt.Errorf("%w: %q on field %s", ErrUnknownTag, name, field.Name)
			}
			out = fn(out)
		}
		fv.SetString(out)
	}
	return nil
}
