package attributes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
)

const (
	DateLayout     string = "2006-01-02"
	TimeLayout     string = "15:04:05.999999999"
	DateTimeLayout string = time.RFC3339Nano
)

var dateLayouts = []string{DateLayout, time.RFC3339Nano, "2006-01-02T15:04:05.000-0700"}
var timeLayouts = []string{"15:04:05", "15:04"}
var dateTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.000-0700", "2006-01-02T15:04:05", DateLayout}

// RawValue is a single value entry. Every scalar is carried in its canonical
// string form, references and users additionally carry their summaries.
type RawValue struct {
	Value            *string           `json:"value,omitempty"`
	DisplayValue     *string           `json:"displayValue,omitempty"`
	ReferencedObject *ReferencedObject `json:"referencedObject,omitempty"`
	User             *UserRef          `json:"user,omitempty"`
}

// Wire is the self describing form of an attribute
type Wire struct {
	Type        string            `json:"type"`
	AttributeID types.AttributeID `json:"attributeId"`
	Values      []RawValue        `json:"values"`
	Schema      *schema.Wire      `json:"schema,omitempty"`
}

func Encode(a Attribute) Wire {
	w := Wire{
		Type:        string(a.Kind()),
		AttributeID: a.ID(),
		Values:      Values(a),
	}

	if s := a.Schema(); s != nil {
		sw := schema.Encode(s)
		w.Schema = &sw
	}

	return w
}

// Values returns the value entries of an attribute in their canonical string form
func Values(a Attribute) []RawValue {
	values := []RawValue{}

	single := func(s *string, display *string) {
		if s != nil || display != nil {
			values = append(values, RawValue{Value: s, DisplayValue: display})
		}
	}

	switch v := a.(type) {
	case Text:
		single(v.Value, nil)
	case Email:
		single(v.Value, nil)
	case Textarea:
		single(v.Value, nil)
	case IPAddress:
		single(v.Value, nil)
	case Integer:
		if v.Value != nil {
			single(ptr(strconv.FormatInt(*v.Value, 10)), nil)
		}
	case Bool:
		if v.Value != nil {
			single(ptr(strconv.FormatBool(*v.Value)), nil)
		}
	case Float:
		if v.Value != nil {
			single(ptr(formatFloat(*v.Value)), nil)
		}
	case Date:
		single(formatTime(v.Value, DateLayout), v.DisplayValue)
	case Time:
		single(formatTime(v.Value, TimeLayout), v.DisplayValue)
	case DateTime:
		single(formatTime(v.Value, DateTimeLayout), v.DisplayValue)
	case URL:
		for _, s := range v.Values {
			values = append(values, RawValue{Value: ptr(s)})
		}
	case Select:
		for _, s := range v.Values {
			values = append(values, RawValue{Value: ptr(s)})
		}
	case Reference:
		for _, o := range v.Objects {
			ro := o
			values = append(values, RawValue{Value: ptr(o.ID.String()), ReferencedObject: &ro})
		}
	case User:
		for _, u := range v.Users {
			ur := u
			values = append(values, RawValue{Value: ptr(u.Key), User: &ur})
		}
	}

	return values
}

// Decode dispatches on the discriminant of w, falling back to hint when the
// discriminant is missing. Unrecognized discriminants decode to Unknown.
func Decode(w Wire, hint types.Kind) (Attribute, error) {
	kind := hint
	if w.Type != "" {
		kind, _ = types.ParseKind(w.Type)
	} else if kind == "" {
		kind = types.KindUnknown
	}

	var s schema.Attribute
	if w.Schema != nil {
		s = schema.Decode(*w.Schema)
		if s.Kind() != kind {
			if kind != types.KindUnknown {
				return nil, errors.NewDecodeError(w.AttributeID, kind,
					fmt.Errorf("discriminant conflicts with schema kind %s", s.Kind()),
				)
			}
			s = nil
		}
	}

	a, err := FromValues(kind, w.AttributeID, w.Values)
	if err != nil {
		return nil, err
	}

	return a.withSchema(s), nil
}

// FromValues builds an attribute of the given kind from its value entries
func FromValues(kind types.Kind, id types.AttributeID, values []RawValue) (Attribute, error) {
	decodeErr := func(err error) error {
		return errors.NewDecodeError(id, kind, err)
	}

	first, display := firstValue(values)

	switch kind {
	case types.KindText:
		return Text{base: base{AttributeID: id}, Value: first}, nil
	case types.KindEmail:
		return Email{base: base{AttributeID: id}, Value: first}, nil
	case types.KindTextarea:
		return Textarea{base: base{AttributeID: id}, Value: first}, nil
	case types.KindIPAddress:
		return IPAddress{base: base{AttributeID: id}, Value: first}, nil
	case types.KindInteger:
		a := Integer{base: base{AttributeID: id}}
		if !isBlank(first) {
			i, err := strconv.ParseInt(strings.TrimSpace(*first), 10, 64)
			if err != nil {
				return nil, decodeErr(err)
			}
			a.Value = &i
		}
		return a, nil
	case types.KindBool:
		a := Bool{base: base{AttributeID: id}}
		if !isBlank(first) {
			b, err := strconv.ParseBool(strings.TrimSpace(*first))
			if err != nil {
				return nil, decodeErr(err)
			}
			a.Value = &b
		}
		return a, nil
	case types.KindFloat:
		a := Float{base: base{AttributeID: id}}
		if !isBlank(first) {
			f, err := strconv.ParseFloat(strings.TrimSpace(*first), 64)
			if err != nil {
				return nil, decodeErr(err)
			}
			a.Value = &f
		}
		return a, nil
	case types.KindDate:
		a := Date{base: base{AttributeID: id}, DisplayValue: display}
		if !isBlank(first) {
			t, err := ParseDate(*first)
			if err != nil {
				return nil, decodeErr(err)
			}
			a.Value = &t
		}
		return a, nil
	case types.KindTime:
		a := Time{base: base{AttributeID: id}, DisplayValue: display}
		if !isBlank(first) {
			t, err := ParseTime(*first)
			if err != nil {
				return nil, decodeErr(err)
			}
			a.Value = &t
		}
		return a, nil
	case types.KindDateTime:
		a := DateTime{base: base{AttributeID: id}, DisplayValue: display}
		if !isBlank(first) {
			t, err := ParseDateTime(*first)
			if err != nil {
				return nil, decodeErr(err)
			}
			a.Value = &t
		}
		return a, nil
	case types.KindURL:
		return URL{base: base{AttributeID: id}, Values: allValues(values)}, nil
	case types.KindSelect:
		return Select{base: base{AttributeID: id}, Values: allValues(values)}, nil
	case types.KindReference:
		a := Reference{base: base{AttributeID: id}, Objects: []ReferencedObject{}}
		for _, v := range values {
			ro, err := referencedObject(v)
			if err != nil {
				return nil, decodeErr(err)
			}
			if ro != nil {
				a.Objects = append(a.Objects, *ro)
			}
		}
		return a, nil
	case types.KindUser:
		a := User{base: base{AttributeID: id}, Users: []UserRef{}}
		for _, v := range values {
			if v.User != nil {
				a.Users = append(a.Users, *v.User)
			} else if v.Value != nil {
				a.Users = append(a.Users, UserRef{Key: *v.Value})
			}
		}
		return a, nil
	}

	return Empty(kind, id), nil
}

func Marshal(a Attribute) ([]byte, error) {
	return json.Marshal(Encode(a))
}

// Unmarshal decodes the self describing form of an attribute
func Unmarshal(data []byte) (Attribute, error) {
	w := Wire{}
	err := json.Unmarshal(data, &w)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal attribute: %s (%w)", err.Error(), errors.ErrDecode)
	}
	return Decode(w, types.KindUnknown)
}

func (a Text) MarshalJSON() ([]byte, error)       { return Marshal(a) }
func (a Integer) MarshalJSON() ([]byte, error)    { return Marshal(a) }
func (a Bool) MarshalJSON() ([]byte, error)       { return Marshal(a) }
func (a Float) MarshalJSON() ([]byte, error)      { return Marshal(a) }
func (a Date) MarshalJSON() ([]byte, error)       { return Marshal(a) }
func (a Time) MarshalJSON() ([]byte, error)       { return Marshal(a) }
func (a DateTime) MarshalJSON() ([]byte, error)   { return Marshal(a) }
func (a URL) MarshalJSON() ([]byte, error)        { return Marshal(a) }
func (a Email) MarshalJSON() ([]byte, error)      { return Marshal(a) }
func (a Textarea) MarshalJSON() ([]byte, error)   { return Marshal(a) }
func (a IPAddress) MarshalJSON() ([]byte, error)  { return Marshal(a) }
func (a Select) MarshalJSON() ([]byte, error)     { return Marshal(a) }
func (a Reference) MarshalJSON() ([]byte, error)  { return Marshal(a) }
func (a User) MarshalJSON() ([]byte, error)       { return Marshal(a) }
func (a Confluence) MarshalJSON() ([]byte, error) { return Marshal(a) }
func (a Group) MarshalJSON() ([]byte, error)      { return Marshal(a) }
func (a Version) MarshalJSON() ([]byte, error)    { return Marshal(a) }
func (a Project) MarshalJSON() ([]byte, error)    { return Marshal(a) }
func (a Status) MarshalJSON() ([]byte, error)     { return Marshal(a) }
func (a Unknown) MarshalJSON() ([]byte, error)    { return Marshal(a) }

func ParseDate(s string) (time.Time, error) {
	t, err := parseAny(s, dateLayouts)
	if err != nil {
		return time.Time{}, err
	}
	return toDate(t), nil
}

func ParseTime(s string) (time.Time, error) {
	t, err := parseAny(s, timeLayouts)
	if err != nil {
		return time.Time{}, err
	}
	return toTimeOfDay(t), nil
}

func ParseDateTime(s string) (time.Time, error) {
	t, err := parseAny(s, dateTimeLayouts)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseAny(s string, layouts []string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q does not match any of the layouts %s", s, strings.Join(layouts, ", "))
}

func referencedObject(v RawValue) (*ReferencedObject, error) {
	if v.ReferencedObject != nil {
		ro := *v.ReferencedObject
		if ro.ID == 0 && !isBlank(v.Value) {
			id, err := strconv.ParseInt(strings.TrimSpace(*v.Value), 10, 64)
			if err != nil {
				return nil, err
			}
			ro.ID = types.ObjectID(id)
		}
		return &ro, nil
	}

	if isBlank(v.Value) {
		return nil, nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(*v.Value), 10, 64)
	if err != nil {
		return nil, err
	}

	return &ReferencedObject{ID: types.ObjectID(id)}, nil
}

func firstValue(values []RawValue) (*string, *string) {
	if len(values) == 0 {
		return nil, nil
	}
	return values[0].Value, values[0].DisplayValue
}

func allValues(values []RawValue) []string {
	result := []string{}
	for _, v := range values {
		if v.Value != nil {
			result = append(result, *v.Value)
		}
	}
	return result
}

func formatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	return ptr(t.Format(layout))
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func ptr[T any](v T) *T {
	return &v
}
