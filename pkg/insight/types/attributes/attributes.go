package attributes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
)

// Attribute is one typed value (or list of values) on an object. The set of
// implementations is closed, one per types.Kind.
type Attribute interface {
	ID() types.AttributeID
	Kind() types.Kind
	// Schema returns the schema this attribute was bound to, or nil
	Schema() schema.Attribute
	String() string

	withSchema(s schema.Attribute) Attribute
}

type base struct {
	AttributeID types.AttributeID
	schema      schema.Attribute
}

func (b base) ID() types.AttributeID     { return b.AttributeID }
func (b base) Schema() schema.Attribute { return b.schema }

// ReferencedObject is a compact summary of an object pointed to by a reference attribute
type ReferencedObject struct {
	ID         types.ObjectID        `json:"id"`
	Label      string                `json:"label"`
	ObjectKey  string                `json:"objectKey"`
	ObjectType *ReferencedObjectType `json:"objectType,omitempty"`
}

type ReferencedObjectType struct {
	ID   types.ObjectTypeID `json:"id"`
	Name string             `json:"name"`
}

type UserRef struct {
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	Key          string `json:"key"`
}

type Text struct {
	base
	Value *string
}

func (Text) Kind() types.Kind { return types.KindText }
func (a Text) String() string { return stringOrEmpty(a.Value) }
func (a Text) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewText(id types.AttributeID, value string) Text {
	return Text{base: base{AttributeID: id}, Value: &value}
}

type Integer struct {
	base
	Value *int64
}

func (Integer) Kind() types.Kind { return types.KindInteger }
func (a Integer) String() string {
	if a.Value == nil {
		return ""
	}
	return strconv.FormatInt(*a.Value, 10)
}
func (a Integer) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewInteger(id types.AttributeID, value int64) Integer {
	return Integer{base: base{AttributeID: id}, Value: &value}
}

type Bool struct {
	base
	Value *bool
}

func (Bool) Kind() types.Kind { return types.KindBool }
func (a Bool) String() string {
	if a.Value == nil {
		return ""
	}
	return strconv.FormatBool(*a.Value)
}
func (a Bool) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewBool(id types.AttributeID, value bool) Bool {
	return Bool{base: base{AttributeID: id}, Value: &value}
}

// Float holds a double precision number
type Float struct {
	base
	Value *float64
}

func (Float) Kind() types.Kind { return types.KindFloat }
func (a Float) String() string {
	if a.Value == nil {
		return ""
	}
	return formatFloat(*a.Value)
}
func (a Float) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewFloat(id types.AttributeID, value float64) Float {
	return Float{base: base{AttributeID: id}, Value: &value}
}

// Date holds a calendar date, stored as midnight UTC
type Date struct {
	base
	Value        *time.Time
	DisplayValue *string
}

func (Date) Kind() types.Kind { return types.KindDate }
func (a Date) String() string {
	if a.DisplayValue != nil {
		return *a.DisplayValue
	}
	if a.Value == nil {
		return ""
	}
	return a.Value.Format(DateLayout)
}
func (a Date) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewDate(id types.AttributeID, value time.Time) Date {
	d := toDate(value)
	return Date{base: base{AttributeID: id}, Value: &d}
}

// Time holds a time of day, stored on the zero date in UTC
type Time struct {
	base
	Value        *time.Time
	DisplayValue *string
}

func (Time) Kind() types.Kind { return types.KindTime }
func (a Time) String() string {
	if a.DisplayValue != nil {
		return *a.DisplayValue
	}
	if a.Value == nil {
		return ""
	}
	return a.Value.Format(TimeLayout)
}
func (a Time) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewTime(id types.AttributeID, value time.Time) Time {
	t := toTimeOfDay(value)
	return Time{base: base{AttributeID: id}, Value: &t}
}

// DateTime holds an instant, stored in UTC
type DateTime struct {
	base
	Value        *time.Time
	DisplayValue *string
}

func (DateTime) Kind() types.Kind { return types.KindDateTime }
func (a DateTime) String() string {
	if a.DisplayValue != nil {
		return *a.DisplayValue
	}
	if a.Value == nil {
		return ""
	}
	return a.Value.Format(DateTimeLayout)
}
func (a DateTime) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewDateTime(id types.AttributeID, value time.Time) DateTime {
	dt := value.UTC()
	return DateTime{base: base{AttributeID: id}, Value: &dt}
}

type URL struct {
	base
	Values []string
}

func (URL) Kind() types.Kind { return types.KindURL }
func (a URL) String() string { return strings.Join(a.Values, ",") }
func (a URL) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewURL(id types.AttributeID, values ...string) URL {
	return URL{base: base{AttributeID: id}, Values: append([]string{}, values...)}
}

type Email struct {
	base
	Value *string
}

func (Email) Kind() types.Kind { return types.KindEmail }
func (a Email) String() string { return stringOrEmpty(a.Value) }
func (a Email) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewEmail(id types.AttributeID, value string) Email {
	return Email{base: base{AttributeID: id}, Value: &value}
}

type Textarea struct {
	base
	Value *string
}

func (Textarea) Kind() types.Kind { return types.KindTextarea }
func (a Textarea) String() string { return stringOrEmpty(a.Value) }
func (a Textarea) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewTextarea(id types.AttributeID, value string) Textarea {
	return Textarea{base: base{AttributeID: id}, Value: &value}
}

type IPAddress struct {
	base
	Value *string
}

func (IPAddress) Kind() types.Kind { return types.KindIPAddress }
func (a IPAddress) String() string { return stringOrEmpty(a.Value) }
func (a IPAddress) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewIPAddress(id types.AttributeID, value string) IPAddress {
	return IPAddress{base: base{AttributeID: id}, Value: &value}
}

// Select holds the selected options, one entry for single select attributes
type Select struct {
	base
	Values []string
}

func (Select) Kind() types.Kind { return types.KindSelect }
func (a Select) String() string { return strings.Join(a.Values, ",") }
func (a Select) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewSelect(id types.AttributeID, values ...string) Select {
	return Select{base: base{AttributeID: id}, Values: append([]string{}, values...)}
}

type Reference struct {
	base
	Objects []ReferencedObject
}

func (Reference) Kind() types.Kind { return types.KindReference }
func (a Reference) String() string {
	keys := make([]string, 0, len(a.Objects))
	for _, o := range a.Objects {
		keys = append(keys, o.ObjectKey)
	}
	return strings.Join(keys, ",")
}
func (a Reference) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

// IDs returns the ids of the referenced objects
func (a Reference) IDs() []types.ObjectID {
	ids := make([]types.ObjectID, 0, len(a.Objects))
	for _, o := range a.Objects {
		ids = append(ids, o.ID)
	}
	return ids
}

func NewReference(id types.AttributeID, objects ...ReferencedObject) Reference {
	return Reference{base: base{AttributeID: id}, Objects: append([]ReferencedObject{}, objects...)}
}

// NewReferenceToIDs creates a reference attribute pointing at objects known only by id
func NewReferenceToIDs(id types.AttributeID, objectIDs ...types.ObjectID) Reference {
	r := Reference{base: base{AttributeID: id}, Objects: make([]ReferencedObject, 0, len(objectIDs))}
	for _, oid := range objectIDs {
		r.Objects = append(r.Objects, ReferencedObject{ID: oid})
	}
	return r
}

type User struct {
	base
	Users []UserRef
}

func (User) Kind() types.Kind { return types.KindUser }
func (a User) String() string {
	keys := make([]string, 0, len(a.Users))
	for _, u := range a.Users {
		keys = append(keys, u.Key)
	}
	return strings.Join(keys, ",")
}
func (a User) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

func NewUser(id types.AttributeID, users ...UserRef) User {
	return User{base: base{AttributeID: id}, Users: append([]UserRef{}, users...)}
}

type Confluence struct{ base }

func (Confluence) Kind() types.Kind { return types.KindConfluence }
func (Confluence) String() string   { return "" }
func (a Confluence) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

type Group struct{ base }

func (Group) Kind() types.Kind { return types.KindGroup }
func (Group) String() string   { return "" }
func (a Group) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

type Version struct{ base }

func (Version) Kind() types.Kind { return types.KindVersion }
func (Version) String() string   { return "" }
func (a Version) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

type Project struct{ base }

func (Project) Kind() types.Kind { return types.KindProject }
func (Project) String() string   { return "" }
func (a Project) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

type Status struct{ base }

func (Status) Kind() types.Kind { return types.KindStatus }
func (Status) String() string   { return "" }
func (a Status) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

// Unknown stands in for attribute kinds this package does not recognize
type Unknown struct{ base }

func (Unknown) Kind() types.Kind { return types.KindUnknown }
func (Unknown) String() string   { return "" }
func (a Unknown) withSchema(s schema.Attribute) Attribute {
	a.schema = s
	return a
}

// Empty returns an attribute of the given kind without any value
func Empty(kind types.Kind, id types.AttributeID) Attribute {
	b := base{AttributeID: id}

	switch kind {
	case types.KindText:
		return Text{base: b}
	case types.KindInteger:
		return Integer{base: b}
	case types.KindBool:
		return Bool{base: b}
	case types.KindFloat:
		return Float{base: b}
	case types.KindDate:
		return Date{base: b}
	case types.KindTime:
		return Time{base: b}
	case types.KindDateTime:
		return DateTime{base: b}
	case types.KindURL:
		return URL{base: b, Values: []string{}}
	case types.KindEmail:
		return Email{base: b}
	case types.KindTextarea:
		return Textarea{base: b}
	case types.KindIPAddress:
		return IPAddress{base: b}
	case types.KindSelect:
		return Select{base: b, Values: []string{}}
	case types.KindReference:
		return Reference{base: b, Objects: []ReferencedObject{}}
	case types.KindUser:
		return User{base: b, Users: []UserRef{}}
	case types.KindConfluence:
		return Confluence{base: b}
	case types.KindGroup:
		return Group{base: b}
	case types.KindVersion:
		return Version{base: b}
	case types.KindProject:
		return Project{base: b}
	case types.KindStatus:
		return Status{base: b}
	}

	return Unknown{base: b}
}

// Bind attaches a schema to an attribute. The schema must describe the same
// attribute id and kind.
func Bind(a Attribute, s schema.Attribute) (Attribute, error) {
	if s == nil {
		return a.withSchema(nil), nil
	}

	if s.ID() != a.ID() {
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("schema for attribute %d can not be bound to attribute %d", s.ID(), a.ID()),
		)
	}

	if s.Kind() != a.Kind() {
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("attribute %d of kind %s does not match schema kind %s", a.ID(), a.Kind(), s.Kind()),
		)
	}

	return a.withSchema(s), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toTimeOfDay(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
