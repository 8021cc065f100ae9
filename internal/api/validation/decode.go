package validation

import (
	"bytes"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

// Decode fills dst, a pointer to a struct, from a JSON object body and validates
// it. Fields are decoded one by one so every mistyped field is reported together
// with the constraint violations of the others. Integer fields also accept
// decimal strings such as "42". An empty body is treated as {}.
func Decode(body []byte, dst any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		if err := json.Unmarshal(body, dst); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
		return Struct(dst)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var fields []apperrors.FieldError
	mistyped := map[string]bool{}

	sv := rv.Elem()
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		name := jsonName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		msg, ok := raw[name]
		if !ok {
			continue
		}
		if err := decodeField(msg, sv.Field(i)); err != nil {
			fields = append(fields, apperrors.FieldError{Field: name, Message: typeMessage(sf.Type)})
			mistyped[name] = true
		}
	}

	if err := Struct(dst); err != nil {
		violations, ok := fieldErrors(err)
		if !ok {
			return err
		}
		for _, fe := range violations {
			if !mistyped[fe.Field] {
				fields = append(fields, fe)
			}
		}
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}

func decodeField(msg json.RawMessage, fv reflect.Value) error {
	target := reflect.New(fv.Type())
	err := json.Unmarshal(msg, target.Interface())
	if err != nil {
		n, ok := numericString(msg, fv.Type())
		if !ok {
			return err
		}
		target = reflect.New(fv.Type())
		setInt(target.Elem(), n)
	}
	fv.Set(target.Elem())
	return nil
}

// numericString accepts "42" for integer and *integer fields.
func numericString(msg json.RawMessage, t reflect.Type) (int64, bool) {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if !isInt(base.Kind()) {
		return 0, false
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, base.Bits())
	if err != nil {
		return 0, false
	}
	return n, true
}

func setInt(v reflect.Value, n int64) {
	if v.Kind() == reflect.Pointer {
		v.Set(reflect.New(v.Type().Elem()))
		v = v.Elem()
	}
	v.SetInt(n)
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func typeMessage(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case isInt(t.Kind()):
		return "must be an integer"
	case t.Kind() == reflect.String:
		return "must be a string"
	case t.Kind() == reflect.Bool:
		return "must be a boolean"
	}
	return "has an invalid type"
}

func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

func fieldErrors(err error) ([]apperrors.FieldError, bool) {
	de := apperrors.ToDomainError(err)
	if de == nil || de.Code != apperrors.CodeValidationFailed {
		return nil, false
	}
	fields, ok := de.Details["errors"].([]apperrors.FieldError)
	return fields, ok
}
