package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
)

const discriminantSuffix string = "Schema"

// Wire is the self describing form of an attribute schema
type Wire struct {
	Type                    string              `json:"type"`
	ID                      types.AttributeID   `json:"id"`
	Name                    string              `json:"name"`
	MinimumCardinality      int                 `json:"minimumCardinality"`
	MaximumCardinality      int                 `json:"maximumCardinality"`
	IncludeChildObjectTypes bool                `json:"includeChildObjectTypes"`
	Options                 []string            `json:"options,omitempty"`
	ReferenceObjectTypeID   *types.ObjectTypeID `json:"referenceObjectTypeId,omitempty"`
	ReferenceKind           string              `json:"referenceKind,omitempty"`
	DebugDescription        string              `json:"debugDescription,omitempty"`
}

func Encode(a Attribute) Wire {
	w := Wire{
		Type:                    string(a.Kind()) + discriminantSuffix,
		ID:                      a.ID(),
		Name:                    a.Name(),
		MinimumCardinality:      a.MinCardinality(),
		MaximumCardinality:      a.MaxCardinality(),
		IncludeChildObjectTypes: a.IncludeChildObjectTypes(),
	}

	switch s := a.(type) {
	case Select:
		w.Options = s.Options
		if w.Options == nil {
			w.Options = []string{}
		}
	case Reference:
		target := s.ReferenceObjectTypeID
		w.ReferenceObjectTypeID = &target
		w.ReferenceKind = s.ReferenceKind.String()
	case Unknown:
		w.DebugDescription = s.DebugDescription
	}

	return w
}

// Decode dispatches on the discriminant. Unrecognized discriminants decode to Unknown.
func Decode(w Wire) Attribute {
	b := Base{
		AttributeID:        w.ID,
		AttributeName:      w.Name,
		MinimumCardinality: w.MinimumCardinality,
		MaximumCardinality: w.MaximumCardinality,
		IncludeChildren:    w.IncludeChildObjectTypes,
	}

	kind, ok := types.ParseKind(strings.TrimSuffix(w.Type, discriminantSuffix))
	if !ok || !strings.HasSuffix(w.Type, discriminantSuffix) {
		debug := w.DebugDescription
		if debug == "" {
			debug = fmt.Sprintf("unknown schema discriminant %q", w.Type)
		}
		return Unknown{Base: b, DebugDescription: debug}
	}

	switch kind {
	case types.KindSelect:
		options := w.Options
		if options == nil {
			options = []string{}
		}
		return Select{Base: b, Options: options}
	case types.KindReference:
		r := Reference{Base: b, ReferenceKind: types.ParseReferenceKind(w.ReferenceKind)}
		if w.ReferenceObjectTypeID != nil {
			r.ReferenceObjectTypeID = *w.ReferenceObjectTypeID
		}
		return r
	case types.KindUnknown:
		return Unknown{Base: b, DebugDescription: w.DebugDescription}
	}

	return Simple{Base: b, kind: kind}
}

func Marshal(a Attribute) ([]byte, error) {
	return json.Marshal(Encode(a))
}

func Unmarshal(data []byte) (Attribute, error) {
	w := Wire{}
	err := json.Unmarshal(data, &w)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal attribute schema: %s (%w)", err.Error(), errors.ErrDecode)
	}
	return Decode(w), nil
}

func (s Simple) MarshalJSON() ([]byte, error)    { return json.Marshal(Encode(s)) }
func (s Select) MarshalJSON() ([]byte, error)    { return json.Marshal(Encode(s)) }
func (s Reference) MarshalJSON() ([]byte, error) { return json.Marshal(Encode(s)) }
func (s Unknown) MarshalJSON() ([]byte, error)   { return json.Marshal(Encode(s)) }

type objectTypeWire struct {
	ID                 types.ObjectTypeID  `json:"id"`
	Name               string              `json:"name"`
	Attributes         []Wire              `json:"attributes"`
	ParentObjectTypeID *types.ObjectTypeID `json:"parentObjectTypeId,omitempty"`
}

func (ot ObjectType) MarshalJSON() ([]byte, error) {
	w := objectTypeWire{
		ID:                 ot.ID,
		Name:               ot.Name,
		Attributes:         make([]Wire, 0, len(ot.Attributes)),
		ParentObjectTypeID: ot.ParentObjectTypeID,
	}

	for _, a := range ot.Attributes {
		w.Attributes = append(w.Attributes, Encode(a))
	}

	return json.Marshal(w)
}

func (ot *ObjectType) UnmarshalJSON(data []byte) error {
	w := objectTypeWire{}
	err := json.Unmarshal(data, &w)
	if err != nil {
		return fmt.Errorf("failed to unmarshal object type: %s (%w)", err.Error(), errors.ErrDecode)
	}

	ot.ID = w.ID
	ot.Name = w.Name
	ot.ParentObjectTypeID = w.ParentObjectTypeID
	ot.Attributes = make([]Attribute, 0, len(w.Attributes))

	for _, aw := range w.Attributes {
		ot.Attributes = append(ot.Attributes, Decode(aw))
	}

	return nil
}

// Attribute type ids as used by the Insight REST API
const (
	rawTypeDefault    int = 0
	rawTypeReference  int = 1
	rawTypeUser       int = 2
	rawTypeConfluence int = 3
	rawTypeGroup      int = 4
	rawTypeVersion    int = 5
	rawTypeProject    int = 6
	rawTypeStatus     int = 7
)

var rawDefaultTypes = map[int]types.Kind{
	0:  types.KindText,
	1:  types.KindInteger,
	2:  types.KindBool,
	3:  types.KindFloat,
	4:  types.KindDate,
	5:  types.KindTime,
	6:  types.KindDateTime,
	7:  types.KindURL,
	8:  types.KindEmail,
	9:  types.KindTextarea,
	10: types.KindSelect,
	11: types.KindIPAddress,
}

var rawTypes = map[int]types.Kind{
	rawTypeReference:  types.KindReference,
	rawTypeUser:       types.KindUser,
	rawTypeConfluence: types.KindConfluence,
	rawTypeGroup:      types.KindGroup,
	rawTypeVersion:    types.KindVersion,
	rawTypeProject:    types.KindProject,
	rawTypeStatus:     types.KindStatus,
}

type RawIDName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RawAttribute is an object type attribute as returned by the Insight REST API
type RawAttribute struct {
	ID                      types.AttributeID   `json:"id"`
	Name                    string              `json:"name"`
	Type                    int                 `json:"type"`
	DefaultType             *RawIDName          `json:"defaultType,omitempty"`
	Options                 string              `json:"options,omitempty"`
	MinimumCardinality      int                 `json:"minimumCardinality"`
	MaximumCardinality      int                 `json:"maximumCardinality"`
	ReferenceObjectTypeID   *types.ObjectTypeID `json:"referenceObjectTypeId,omitempty"`
	ReferenceType           *RawIDName          `json:"referenceType,omitempty"`
	IncludeChildObjectTypes bool                `json:"includeChildObjectTypes"`
}

type RawObjectType struct {
	ID                 types.ObjectTypeID  `json:"id"`
	Name               string              `json:"name"`
	ObjectSchemaID     types.SchemaID      `json:"objectSchemaId"`
	ParentObjectTypeID *types.ObjectTypeID `json:"parentObjectTypeId,omitempty"`
}

func FromRaw(r RawAttribute) Attribute {
	b := Base{
		AttributeID:        r.ID,
		AttributeName:      r.Name,
		MinimumCardinality: r.MinimumCardinality,
		MaximumCardinality: r.MaximumCardinality,
		IncludeChildren:    r.IncludeChildObjectTypes,
	}

	kind, ok := rawKind(r)
	if !ok {
		return Unknown{
			Base:             b,
			DebugDescription: fmt.Sprintf("unsupported attribute type %d (default type %s)", r.Type, describe(r.DefaultType)),
		}
	}

	switch kind {
	case types.KindSelect:
		return Select{Base: b, Options: splitOptions(r.Options)}
	case types.KindReference:
		ref := Reference{Base: b, ReferenceKind: types.ReferenceKindUnknown}
		if r.ReferenceObjectTypeID != nil {
			ref.ReferenceObjectTypeID = *r.ReferenceObjectTypeID
		}
		if r.ReferenceType != nil {
			ref.ReferenceKind = types.ReferenceKindFromID(r.ReferenceType.ID)
		}
		return ref
	}

	return Simple{Base: b, kind: kind}
}

func (r RawObjectType) ToObjectType(attributes []RawAttribute) ObjectType {
	ot := ObjectType{
		ID:                 r.ID,
		Name:               r.Name,
		Attributes:         make([]Attribute, 0, len(attributes)),
		ParentObjectTypeID: r.ParentObjectTypeID,
	}

	for _, a := range attributes {
		ot.Attributes = append(ot.Attributes, FromRaw(a))
	}

	return ot
}

func rawKind(r RawAttribute) (types.Kind, bool) {
	if r.Type == rawTypeDefault {
		if r.DefaultType == nil {
			return types.KindUnknown, false
		}
		k, ok := rawDefaultTypes[r.DefaultType.ID]
		return k, ok
	}

	k, ok := rawTypes[r.Type]
	return k, ok
}

func describe(idn *RawIDName) string {
	if idn == nil {
		return "none"
	}
	return fmt.Sprintf("%d/%s", idn.ID, idn.Name)
}

func splitOptions(options string) []string {
	result := []string{}
	for _, o := range strings.Split(options, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			result = append(result, o)
		}
	}
	return result
}
