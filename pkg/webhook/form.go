package webhook

import (
	"encoding"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedType is returned when a value can't be form encoded.
var ErrUnsupportedType = errors.New("unsupported type")

// FormValue is a single key/value pair of a form encoded body.
type FormValue struct {
	Key   string
	Value string
}

// FormValues are ordered form key/value pairs.
type FormValues []FormValue

// Encode encodes the values into "URL encoded" form, keeping their order.
func (fv FormValues) Encode() string {
	var sb strings.Builder
	for i, v := range fv {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(v.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v.Value))
	}
	return sb.String()
}

// Flatten flattens a struct into form values using the "url" field tags.
// Nested structs become parent[child] keys and slices become name[i] keys.
// Fields keep their declaration order and slices their element order, so the
// output is stable for a given value. Empty slices and nil pointers produce no
// keys, as do zero values tagged omitempty.
func Flatten(v interface{}) (FormValues, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return FormValues{}, nil
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, val.Kind())
	}

	values := make(FormValues, 0)
	if err := flattenStruct(&values, val, ""); err != nil {
		return nil, err
	}

	return values, nil
}

// EncodeForm flattens and encodes a struct into "URL encoded" form.
func EncodeForm(v interface{}) ([]byte, error) {
	values, err := Flatten(v)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

var (
	timeType          = reflect.TypeOf(time.Time{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

func flattenStruct(values *FormValues, val reflect.Value, scope string) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}

		tag := sf.Tag.Get("url")
		if tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		if scope != "" {
			name = scope + "[" + name + "]"
		}

		sv := val.Field(i)
		if strings.Contains(opts, "omitempty") && sv.IsZero() {
			continue
		}

		if err := flattenValue(values, sv, name); err != nil {
			return err
		}
	}

	return nil
}

func flattenValue(values *FormValues, sv reflect.Value, name string) error {
	for sv.Kind() == reflect.Ptr || sv.Kind() == reflect.Interface {
		if sv.IsNil() {
			return nil
		}
		sv = sv.Elem()
	}

	if sv.Type() == timeType {
		*values = append(*values, FormValue{name, sv.Interface().(time.Time).Format(time.RFC3339)})
		return nil
	}

	if sv.Type().Implements(textMarshalerType) {
		text, err := sv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*values = append(*values, FormValue{name, string(text)})
		return nil
	}

	switch sv.Kind() {
	case reflect.Struct:
		return flattenStruct(values, sv, name)
	case reflect.Slice, reflect.Array:
		for i := 0; i < sv.Len(); i++ {
			if err := flattenValue(values, sv.Index(i), fmt.Sprintf("%s[%d]", name, i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.String:
		*values = append(*values, FormValue{name, sv.String()})
	case reflect.Bool:
		*values = append(*values, FormValue{name, strconv.FormatBool(sv.Bool())})
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*values = append(*values, FormValue{name, strconv.FormatInt(sv.Int(), 10)})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		*values = append(*values, FormValue{name, strconv.FormatUint(sv.Uint(), 10)})
	case reflect.Float32, reflect.Float64:
		*values = append(*values, FormValue{name, strconv.FormatFloat(sv.Float(), 'f', -1, sv.Type().Bits())})
	default:
		return fmt.Errorf("%w: %s is a %s", ErrUnsupportedType, name, sv.Kind())
	}

	return nil
}
