package objects

import (
	"fmt"

	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
)

// RawObject is the wire shaped precursor to an Object, as exchanged with a transport
type RawObject struct {
	ID           types.ObjectID   `json:"id"`
	Label        string           `json:"label"`
	ObjectKey    string           `json:"objectKey"`
	ObjectType   RawObjectTypeRef `json:"objectType"`
	Attributes   []RawAttribute   `json:"attributes"`
	ExtendedInfo *RawExtendedInfo `json:"extendedInfo,omitempty"`
	Links        *RawLinks        `json:"_links,omitempty"`
}

type RawObjectTypeRef struct {
	ID   types.ObjectTypeID `json:"id"`
	Name string             `json:"name,omitempty"`
}

type RawAttribute struct {
	ObjectTypeAttributeID types.AttributeID     `json:"objectTypeAttributeId"`
	ObjectTypeAttribute   *schema.RawAttribute  `json:"objectTypeAttribute,omitempty"`
	ObjectAttributeValues []attributes.RawValue `json:"objectAttributeValues"`
}

type RawExtendedInfo struct {
	AttachmentsExists bool `json:"attachmentsExists"`
}

type RawLinks struct {
	Self string `json:"self"`
}

// FromRaw decodes a raw object. The kind of every attribute is taken from the
// schema embedded in the raw attribute or, failing that, from objectType.
func FromRaw(raw RawObject, objectType *schema.ObjectType) (*Object, error) {
	o := &Object{
		ObjectTypeID:   raw.ObjectType.ID,
		ID:             raw.ID,
		ObjectTypeName: raw.ObjectType.Name,
		ObjectKey:      raw.ObjectKey,
		Label:          raw.Label,
		attributes:     make([]attributes.Attribute, 0, len(raw.Attributes)),
	}

	if o.ObjectTypeName == "" && objectType != nil {
		o.ObjectTypeName = objectType.Name
	}

	if raw.ExtendedInfo != nil {
		o.AttachmentsExist = raw.ExtendedInfo.AttachmentsExists
	}

	if raw.Links != nil {
		o.Self = raw.Links.Self
	}

	for _, ra := range raw.Attributes {
		var s schema.Attribute

		if ra.ObjectTypeAttribute != nil {
			s = schema.FromRaw(*ra.ObjectTypeAttribute)
		} else if objectType != nil {
			s, _ = objectType.Attribute(ra.ObjectTypeAttributeID)
		}

		kind := types.KindUnknown
		if s != nil {
			kind = s.Kind()
		}

		a, err := attributes.FromValues(kind, ra.ObjectTypeAttributeID, ra.ObjectAttributeValues)
		if err != nil {
			return nil, fmt.Errorf("failed to decode object %d: %w", raw.ID, err)
		}

		a, err = attributes.Bind(a, s)
		if err != nil {
			return nil, fmt.Errorf("failed to decode object %d: %w", raw.ID, err)
		}

		o.SetAttribute(a)
	}

	return o, nil
}

// ToRaw encodes the object into the shape expected by a transport write
func ToRaw(o *Object) RawObject {
	raw := RawObject{
		ID:         o.ID,
		Label:      o.Label,
		ObjectKey:  o.ObjectKey,
		ObjectType: RawObjectTypeRef{ID: o.ObjectTypeID, Name: o.ObjectTypeName},
		Attributes: make([]RawAttribute, 0, len(o.attributes)),
	}

	o.ForEachAttribute(func(a attributes.Attribute) {
		raw.Attributes = append(raw.Attributes, RawAttribute{
			ObjectTypeAttributeID: a.ID(),
			ObjectAttributeValues: attributes.Values(a),
		})
	})

	return raw
}
