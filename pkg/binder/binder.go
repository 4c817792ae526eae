// Package binder decodes request data into structs.
//
// Each constructor returns a func(*http.Request, any) error that fills the
// struct pointed to by the second argument. Form reads `form` tags,
// JSON uses encoding/json and therefore `json` tags.
package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// MaxBodySize caps the request body read by Form and JSON.
const MaxBodySize int64 = 1 << 20

var (
	ErrNotStructPointer = errors.New("binder: target must be a pointer to struct")
	ErrUnsupportedType  = errors.New("binder: unsupported content type")
	ErrMalformedBody    = errors.New("binder: malformed request body")
	ErrBodyTooLarge     = errors.New("binder: request body too large")
)

// Func binds r into v.
type Func func(r *http.Request, v any) error

// Form binds url-encoded and multipart forms.
func Form() Func {
	return func(r *http.Request, v any) error {
		if err := checkTarget(v); err != nil {
			return err
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, MaxBodySize)
		}
		ct := r.Header.Get("Content-Type")
		var err error
		if strings.HasPrefix(ct, "multipart/form-data") {
			err = r.ParseMultipartForm(MaxBodySize)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return bodyError(err)
		}
		return decodeValues(r.PostForm, v)
	}
}

// JSON binds an application/json body. Unknown fields are ignored and an
// empty body leaves v untouched.
func JSON() Func {
	return func(r *http.Request, v any) error {
		if err := checkTarget(v); err != nil {
			return err
		}
		if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "json") {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
		}
		if r.Body == nil {
			return nil
		}
		body := http.MaxBytesReader(nil, r.Body, MaxBodySize)
		if err := json.NewDecoder(body).Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return bodyError(err)
		}
		return nil
	}
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errors.Join(ErrBodyTooLarge, err)
	}
	return errors.Join(ErrMalformedBody, err)
}

func checkTarget(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return nil
}

func decodeValues(values url.Values, v any) error {
	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		raw, ok := values[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := setField(rv.Field(i), raw); err != nil {
			return fmt.Errorf("%w: field %q: %w", ErrMalformedBody, name, err)
		}
	}
	return nil
}

func setField(fv reflect.Value, raw []string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw[0])
	case reflect.Bool:
		if raw[0] == "on" {
			fv.SetBool(true)
			return nil
		}
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw[0], 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fv.Type())
		}
		fv.Set(reflect.ValueOf(append([]string(nil), raw...)))
	default:
		return fmt.Errorf("unsupported type %s", fv.Type())
	}
	return nil
}
