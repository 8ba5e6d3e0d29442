package objects

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
)

// Object is a remote record with a type, a flat attribute list and an identity.
// Attributes are unique by id.
type Object struct {
	ObjectTypeID     types.ObjectTypeID
	ID               types.ObjectID
	ObjectTypeName   string
	ObjectKey        string
	Label            string
	AttachmentsExist bool
	Self             string

	attributes []attributes.Attribute
}

type DecoratorFunc func(o *Object)

// New creates an object that has not yet been persisted
func New(objectTypeID types.ObjectTypeID, decorators ...DecoratorFunc) *Object {
	o := &Object{
		ObjectTypeID: objectTypeID,
		ID:           types.NotPersistedObjectID,
		attributes:   []attributes.Attribute{},
	}

	for _, decorate := range decorators {
		decorate(o)
	}

	return o
}

func NewFromJSON(body []byte) (*Object, error) {
	o := &Object{}
	err := json.Unmarshal(body, o)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal object: %w", err)
	}
	return o, nil
}

func (o *Object) IsPersisted() bool {
	return o.ID.IsPersisted()
}

// Attributes returns a copy of the attribute list
func (o *Object) Attributes() []attributes.Attribute {
	result := make([]attributes.Attribute, len(o.attributes))
	copy(result, o.attributes)
	return result
}

// ForEachAttribute calls callback for every attribute, in order
func (o *Object) ForEachAttribute(callback func(a attributes.Attribute)) {
	for _, a := range o.attributes {
		callback(a)
	}
}

func (o *Object) Attribute(id types.AttributeID) (attributes.Attribute, bool) {
	for _, a := range o.attributes {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// AttributeByName looks an attribute up by the (case insensitive) name of its schema
func (o *Object) AttributeByName(name string) (attributes.Attribute, bool) {
	for _, a := range o.attributes {
		if s := a.Schema(); s != nil && strings.EqualFold(s.Name(), name) {
			return a, true
		}
	}
	return nil, false
}

// SetAttribute replaces the attribute with the same id, or appends it
func (o *Object) SetAttribute(a attributes.Attribute) {
	for idx, existing := range o.attributes {
		if existing.ID() == a.ID() {
			o.attributes[idx] = a
			return
		}
	}
	o.attributes = append(o.attributes, a)
}

func (o *Object) RemoveAttribute(id types.AttributeID) bool {
	for idx, existing := range o.attributes {
		if existing.ID() == id {
			o.attributes = append(o.attributes[:idx], o.attributes[idx+1:]...)
			return true
		}
	}
	return false
}

// StringValue returns the rendered value of an attribute
func (o *Object) StringValue(id types.AttributeID) (string, bool) {
	a, ok := o.Attribute(id)
	if !ok {
		return "", false
	}

	switch v := a.(type) {
	case attributes.Text:
		return deref(v.Value)
	case attributes.Email:
		return deref(v.Value)
	case attributes.Textarea:
		return deref(v.Value)
	case attributes.IPAddress:
		return deref(v.Value)
	}

	return a.String(), true
}

func (o *Object) IntegerValue(id types.AttributeID) (int64, bool) {
	if a, ok := o.Attribute(id); ok {
		if v, ok := a.(attributes.Integer); ok {
			return deref(v.Value)
		}
	}
	return 0, false
}

func (o *Object) BoolValue(id types.AttributeID) (bool, bool) {
	if a, ok := o.Attribute(id); ok {
		if v, ok := a.(attributes.Bool); ok {
			return deref(v.Value)
		}
	}
	return false, false
}

func (o *Object) FloatValue(id types.AttributeID) (float64, bool) {
	if a, ok := o.Attribute(id); ok {
		if v, ok := a.(attributes.Float); ok {
			return deref(v.Value)
		}
	}
	return 0, false
}

// TimeValue returns the value of a Date, Time or DateTime attribute
func (o *Object) TimeValue(id types.AttributeID) (time.Time, bool) {
	a, ok := o.Attribute(id)
	if !ok {
		return time.Time{}, false
	}

	switch v := a.(type) {
	case attributes.Date:
		return deref(v.Value)
	case attributes.Time:
		return deref(v.Value)
	case attributes.DateTime:
		return deref(v.Value)
	}

	return time.Time{}, false
}

func (o *Object) SelectValues(id types.AttributeID) []string {
	if a, ok := o.Attribute(id); ok {
		if v, ok := a.(attributes.Select); ok {
			return append([]string{}, v.Values...)
		}
	}
	return []string{}
}

func (o *Object) AddSelectValue(id types.AttributeID, value string) error {
	sel, err := o.selectAttribute(id)
	if err != nil {
		return err
	}

	for _, v := range sel.Values {
		if v == value {
			return nil
		}
	}

	sel.Values = append(append([]string{}, sel.Values...), value)
	o.SetAttribute(sel)

	return nil
}

func (o *Object) RemoveSelectValue(id types.AttributeID, value string) error {
	sel, err := o.selectAttribute(id)
	if err != nil {
		return err
	}

	values := []string{}
	for _, v := range sel.Values {
		if v != value {
			values = append(values, v)
		}
	}

	sel.Values = values
	o.SetAttribute(sel)

	return nil
}

func (o *Object) ClearSelect(id types.AttributeID) error {
	sel, err := o.selectAttribute(id)
	if err != nil {
		return err
	}

	sel.Values = []string{}
	o.SetAttribute(sel)

	return nil
}

func (o *Object) References(id types.AttributeID) []attributes.ReferencedObject {
	if a, ok := o.Attribute(id); ok {
		if v, ok := a.(attributes.Reference); ok {
			return append([]attributes.ReferencedObject{}, v.Objects...)
		}
	}
	return []attributes.ReferencedObject{}
}

// SingleReference returns the first referenced object, if any
func (o *Object) SingleReference(id types.AttributeID) (*attributes.ReferencedObject, bool) {
	refs := o.References(id)
	if len(refs) == 0 {
		return nil, false
	}
	return &refs[0], true
}

func (o *Object) MultiReference(id types.AttributeID) []attributes.ReferencedObject {
	return o.References(id)
}

func (o *Object) AddReference(id types.AttributeID, ref attributes.ReferencedObject) error {
	r, err := o.referenceAttribute(id)
	if err != nil {
		return err
	}

	for _, existing := range r.Objects {
		if existing.ID == ref.ID {
			return nil
		}
	}

	r.Objects = append(append([]attributes.ReferencedObject{}, r.Objects...), ref)
	o.SetAttribute(r)

	return nil
}

func (o *Object) RemoveReference(id types.AttributeID, objectID types.ObjectID) error {
	r, err := o.referenceAttribute(id)
	if err != nil {
		return err
	}

	refs := []attributes.ReferencedObject{}
	for _, existing := range r.Objects {
		if existing.ID != objectID {
			refs = append(refs, existing)
		}
	}

	r.Objects = refs
	o.SetAttribute(r)

	return nil
}

func (o *Object) ClearReferences(id types.AttributeID) error {
	r, err := o.referenceAttribute(id)
	if err != nil {
		return err
	}

	r.Objects = []attributes.ReferencedObject{}
	o.SetAttribute(r)

	return nil
}

// SetSingleReference replaces all references of the attribute with ref
func (o *Object) SetSingleReference(id types.AttributeID, ref attributes.ReferencedObject) error {
	r, err := o.referenceAttribute(id)
	if err != nil {
		return err
	}

	r.Objects = []attributes.ReferencedObject{ref}
	o.SetAttribute(r)

	return nil
}

func (o *Object) selectAttribute(id types.AttributeID) (attributes.Select, error) {
	a, ok := o.Attribute(id)
	if !ok {
		return attributes.NewSelect(id), nil
	}

	sel, ok := a.(attributes.Select)
	if !ok {
		return attributes.Select{}, errors.NewInvalidArgumentError(
			fmt.Sprintf("attribute %d is of kind %s, not %s", id, a.Kind(), types.KindSelect),
		)
	}

	return sel, nil
}

func (o *Object) referenceAttribute(id types.AttributeID) (attributes.Reference, error) {
	a, ok := o.Attribute(id)
	if !ok {
		return attributes.NewReference(id), nil
	}

	r, ok := a.(attributes.Reference)
	if !ok {
		return attributes.Reference{}, errors.NewInvalidArgumentError(
			fmt.Sprintf("attribute %d is of kind %s, not %s", id, a.Kind(), types.KindReference),
		)
	}

	return r, nil
}

type objectWire struct {
	ID               types.ObjectID     `json:"id"`
	ObjectTypeID     types.ObjectTypeID `json:"objectTypeId"`
	ObjectTypeName   string             `json:"objectTypeName"`
	ObjectKey        string             `json:"objectKey"`
	Label            string             `json:"label"`
	Attributes       []attributes.Wire  `json:"attributes"`
	AttachmentsExist bool               `json:"attachmentsExist"`
	Self             string             `json:"objectSelf"`
}

func (o Object) MarshalJSON() ([]byte, error) {
	w := objectWire{
		ID:               o.ID,
		ObjectTypeID:     o.ObjectTypeID,
		ObjectTypeName:   o.ObjectTypeName,
		ObjectKey:        o.ObjectKey,
		Label:            o.Label,
		Attributes:       make([]attributes.Wire, 0, len(o.attributes)),
		AttachmentsExist: o.AttachmentsExist,
		Self:             o.Self,
	}

	for _, a := range o.attributes {
		w.Attributes = append(w.Attributes, attributes.Encode(a))
	}

	return json.Marshal(w)
}

func (o *Object) UnmarshalJSON(data []byte) error {
	w := objectWire{}
	err := json.Unmarshal(data, &w)
	if err != nil {
		return fmt.Errorf("failed to unmarshal object: %s (%w)", err.Error(), errors.ErrDecode)
	}

	o.ID = w.ID
	o.ObjectTypeID = w.ObjectTypeID
	o.ObjectTypeName = w.ObjectTypeName
	o.ObjectKey = w.ObjectKey
	o.Label = w.Label
	o.AttachmentsExist = w.AttachmentsExist
	o.Self = w.Self
	o.attributes = make([]attributes.Attribute, 0, len(w.Attributes))

	for _, aw := range w.Attributes {
		a, err := attributes.Decode(aw, types.KindUnknown)
		if err != nil {
			return err
		}
		o.SetAttribute(a)
	}

	return nil
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}
