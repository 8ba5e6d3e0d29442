package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
)

func isSupported(v any) bool {
	switch v.(type) {
	case string, int, int32, int64, bool, float32, float64, time.Time, []string:
		return true
	}
	return false
}

// coerce converts an attribute into a field value of type V, going through the
// canonical string form of the attribute unless the attribute already holds a V
func coerce[V any](field string, a attributes.Attribute) (V, error) {
	var zero V
	var result any

	text, present := canonical(a)

	parseErr := func(err error) error {
		return errors.NewDecodeError(a.ID(), a.Kind(), fmt.Errorf("field %q: %w", field, err))
	}

	switch any(zero).(type) {
	case string:
		result = a.String()
		switch v := a.(type) {
		case attributes.Text:
			result = stringValue(v.Value)
		case attributes.Email:
			result = stringValue(v.Value)
		case attributes.Textarea:
			result = stringValue(v.Value)
		case attributes.IPAddress:
			result = stringValue(v.Value)
		}
	case int, int32, int64:
		bitSize := 64
		switch any(zero).(type) {
		case int:
			bitSize = strconv.IntSize
		case int32:
			bitSize = 32
		}

		var i int64
		if present {
			var err error
			i, err = strconv.ParseInt(text, 10, bitSize)
			if err != nil {
				return zero, parseErr(err)
			}
		}

		switch any(zero).(type) {
		case int:
			result = int(i)
		case int32:
			result = int32(i)
		default:
			result = i
		}
	case bool:
		b := false
		if present {
			var err error
			b, err = strconv.ParseBool(text)
			if err != nil {
				return zero, parseErr(err)
			}
		}
		result = b
	case float32, float64:
		_, single := any(zero).(float32)

		bitSize := 64
		if single {
			bitSize = 32
		}

		f := 0.0
		if present {
			var err error
			f, err = strconv.ParseFloat(text, bitSize)
			if err != nil {
				return zero, parseErr(err)
			}
		}

		if single {
			result = float32(f)
		} else {
			result = f
		}
	case time.Time:
		t, err := timeValue(a, text, present)
		if err != nil {
			return zero, parseErr(err)
		}
		result = t
	case []string:
		result = stringValues(a)
	default:
		return zero, errors.NewUnsupportedTypeError(field, a.ID(), fmt.Sprintf("no coercion to field type %T", zero))
	}

	return result.(V), nil
}

// fromValue converts a field value into an attribute of the kind declared by s
func fromValue(field string, s schema.Attribute, value any) (attributes.Attribute, error) {
	kind := s.Kind()

	unsupported := func() error {
		return errors.NewUnsupportedTypeError(field, s.ID(), fmt.Sprintf("no coercion from %T to attribute kind %s", value, kind))
	}

	values := []attributes.RawValue{}

	switch kind {
	case types.KindURL, types.KindSelect:
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				values = append(values, attributes.RawValue{Value: &item})
			}
		case string:
			if v != "" {
				values = append(values, attributes.RawValue{Value: &v})
			}
		default:
			return nil, unsupported()
		}
	default:
		if !kind.IsValue() {
			return nil, unsupported()
		}

		text, present, ok := toText(kind, value)
		if !ok {
			return nil, unsupported()
		}
		if present {
			values = append(values, attributes.RawValue{Value: &text})
		}
	}

	a, err := attributes.FromValues(kind, s.ID(), values)
	if err != nil {
		return nil, err
	}

	return attributes.Bind(a, s)
}

func toText(kind types.Kind, value any) (string, bool, bool) {
	switch v := value.(type) {
	case string:
		return v, true, true
	case int:
		return strconv.FormatInt(int64(v), 10), true, true
	case int32:
		return strconv.FormatInt(int64(v), 10), true, true
	case int64:
		return strconv.FormatInt(v, 10), true, true
	case bool:
		return strconv.FormatBool(v), true, true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, true
	case time.Time:
		if v.IsZero() {
			return "", false, true
		}
		switch kind {
		case types.KindDate:
			return v.Format(attributes.DateLayout), true, true
		case types.KindTime:
			return v.Format(attributes.TimeLayout), true, true
		}
		return v.UTC().Format(attributes.DateTimeLayout), true, true
	}

	return "", false, false
}

// canonical returns the first value of an attribute in its canonical string form
func canonical(a attributes.Attribute) (string, bool) {
	values := attributes.Values(a)
	if len(values) == 0 || values[0].Value == nil {
		return "", false
	}

	text := strings.TrimSpace(*values[0].Value)
	return text, text != ""
}

func timeValue(a attributes.Attribute, text string, present bool) (time.Time, error) {
	switch v := a.(type) {
	case attributes.Date:
		return derefTime(v.Value), nil
	case attributes.Time:
		return derefTime(v.Value), nil
	case attributes.DateTime:
		return derefTime(v.Value), nil
	}

	if !present {
		return time.Time{}, nil
	}

	if t, err := attributes.ParseDateTime(text); err == nil {
		return t, nil
	}

	if t, err := attributes.ParseTime(text); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%q is not a date, time or datetime", text)
}

func stringValues(a attributes.Attribute) []string {
	switch v := a.(type) {
	case attributes.Select:
		return append([]string{}, v.Values...)
	case attributes.URL:
		return append([]string{}, v.Values...)
	case attributes.Reference:
		keys := []string{}
		for _, o := range v.Objects {
			keys = append(keys, o.ObjectKey)
		}
		return keys
	case attributes.User:
		keys := []string{}
		for _, u := range v.Users {
			keys = append(keys, u.Key)
		}
		return keys
	}

	if s := a.String(); s != "" {
		return []string{s}
	}

	return []string{}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
