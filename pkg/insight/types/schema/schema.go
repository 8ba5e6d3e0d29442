package schema

import (
	"fmt"
	"strings"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
)

// Attribute describes the type of an attribute that objects of an object type may carry.
// The set of implementations is closed: Simple, Select, Reference and Unknown.
type Attribute interface {
	ID() types.AttributeID
	Name() string
	Kind() types.Kind
	MinCardinality() int
	MaxCardinality() int
	IncludeChildObjectTypes() bool

	attributeSchema()
}

// Base holds the fields common to every attribute schema
type Base struct {
	AttributeID        types.AttributeID
	AttributeName      string
	MinimumCardinality int
	MaximumCardinality int
	IncludeChildren    bool
}

func (b Base) ID() types.AttributeID         { return b.AttributeID }
func (b Base) Name() string                  { return b.AttributeName }
func (b Base) MinCardinality() int           { return b.MinimumCardinality }
func (b Base) MaxCardinality() int           { return b.MaximumCardinality }
func (b Base) IncludeChildObjectTypes() bool { return b.IncludeChildren }

// Simple describes every kind that has no kind specific schema payload. Use New
// to create one, the zero value reports KindUnknown.
type Simple struct {
	Base
	kind types.Kind
}

func (s Simple) Kind() types.Kind {
	if s.kind == "" {
		return types.KindUnknown
	}
	return s.kind
}
func (Simple) attributeSchema()   {}

type Select struct {
	Base
	Options []string
}

func (Select) Kind() types.Kind { return types.KindSelect }
func (Select) attributeSchema() {}

type Reference struct {
	Base
	ReferenceObjectTypeID types.ObjectTypeID
	ReferenceKind         types.ReferenceKind
}

func (Reference) Kind() types.Kind { return types.KindReference }
func (Reference) attributeSchema() {}

// Unknown is used for attribute types this package does not recognize
type Unknown struct {
	Base
	DebugDescription string
}

func (Unknown) Kind() types.Kind { return types.KindUnknown }
func (Unknown) attributeSchema() {}

type DecoratorFunc func(b *Base)

func Cardinality(minimum, maximum int) DecoratorFunc {
	return func(b *Base) {
		b.MinimumCardinality = minimum
		b.MaximumCardinality = maximum
	}
}

func IncludeChildObjectTypes(include bool) DecoratorFunc {
	return func(b *Base) {
		b.IncludeChildren = include
	}
}

func newBase(id types.AttributeID, name string, decorators []DecoratorFunc) Base {
	b := Base{
		AttributeID:        id,
		AttributeName:      name,
		MinimumCardinality: 0,
		MaximumCardinality: 1,
	}

	for _, decorate := range decorators {
		decorate(&b)
	}

	return b
}

// New creates a schema of the given kind. Select and Reference schemas are returned
// without options or target, use NewSelect and NewReference to supply those.
func New(kind types.Kind, id types.AttributeID, name string, decorators ...DecoratorFunc) Attribute {
	b := newBase(id, name, decorators)

	switch kind {
	case types.KindSelect:
		return Select{Base: b, Options: []string{}}
	case types.KindReference:
		return Reference{Base: b, ReferenceKind: types.ReferenceKindUnknown}
	case types.KindUnknown:
		return Unknown{Base: b}
	}

	if _, ok := types.ParseKind(string(kind)); !ok {
		return Unknown{Base: b, DebugDescription: fmt.Sprintf("unknown kind %q", kind)}
	}

	return Simple{Base: b, kind: kind}
}

func NewSelect(id types.AttributeID, name string, options []string, decorators ...DecoratorFunc) Select {
	if options == nil {
		options = []string{}
	}
	return Select{Base: newBase(id, name, decorators), Options: options}
}

func NewReference(id types.AttributeID, name string, target types.ObjectTypeID, kind types.ReferenceKind, decorators ...DecoratorFunc) Reference {
	return Reference{
		Base:                  newBase(id, name, decorators),
		ReferenceObjectTypeID: target,
		ReferenceKind:         kind,
	}
}

func NewUnknown(id types.AttributeID, name, debugDescription string, decorators ...DecoratorFunc) Unknown {
	return Unknown{Base: newBase(id, name, decorators), DebugDescription: debugDescription}
}

// Summary is the compact description of a schema as returned by the schema listing
type Summary struct {
	ID              types.SchemaID `json:"id"`
	Name            string         `json:"name"`
	ObjectCount     int64          `json:"objectCount"`
	ObjectTypeCount int64          `json:"objectTypeCount"`
}

type ObjectType struct {
	ID                 types.ObjectTypeID
	Name               string
	Attributes         []Attribute
	ParentObjectTypeID *types.ObjectTypeID
}

func (ot ObjectType) Attribute(id types.AttributeID) (Attribute, bool) {
	for _, a := range ot.Attributes {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

func (ot ObjectType) AttributeByName(name string) (Attribute, bool) {
	return NewNameTable(ot.Attributes).Lookup(name)
}

func (ot ObjectType) NameTable() NameTable {
	return NewNameTable(ot.Attributes)
}

// NameTable maps lower-cased attribute names to their schema. The first attribute
// wins when two names collide.
type NameTable map[string]Attribute

func NewNameTable(attributes []Attribute) NameTable {
	nt := NameTable{}
	for _, a := range attributes {
		key := strings.ToLower(a.Name())
		if _, exists := nt[key]; !exists {
			nt[key] = a
		}
	}
	return nt
}

func (nt NameTable) Lookup(name string) (Attribute, bool) {
	a, ok := nt[strings.ToLower(name)]
	return a, ok
}

func (nt NameTable) AttributeID(name string) (types.AttributeID, bool) {
	if a, ok := nt.Lookup(name); ok {
		return a.ID(), true
	}
	return 0, false
}

// Descendants returns the ids of every object type below root, breadth first
func Descendants(objectTypes []ObjectType, root types.ObjectTypeID) []types.ObjectTypeID {
	children := map[types.ObjectTypeID][]types.ObjectTypeID{}
	for _, ot := range objectTypes {
		if ot.ParentObjectTypeID != nil {
			children[*ot.ParentObjectTypeID] = append(children[*ot.ParentObjectTypeID], ot.ID)
		}
	}

	result := []types.ObjectTypeID{}
	visited := map[types.ObjectTypeID]bool{root: true}
	queue := []types.ObjectTypeID{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, child := range children[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			result = append(result, child)
			queue = append(queue, child)
		}
	}

	return result
}

// WithChildren returns the root object type followed by all of its descendants
func WithChildren(objectTypes []ObjectType, root types.ObjectTypeID) ([]ObjectType, error) {
	byID := make(map[types.ObjectTypeID]ObjectType, len(objectTypes))
	for _, ot := range objectTypes {
		byID[ot.ID] = ot
	}

	rootType, ok := byID[root]
	if !ok {
		return nil, errors.NewObjectTypeNotFoundError(root)
	}

	result := []ObjectType{rootType}
	for _, id := range Descendants(objectTypes, root) {
		result = append(result, byID[id])
	}

	return result, nil
}
