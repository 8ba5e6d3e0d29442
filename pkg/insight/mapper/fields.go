package mapper

import (
	"context"
	"fmt"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/objects"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
)

// ReferenceHooks resolve reference attributes, since only the caller knows which
// repository the referenced objects belong to
type ReferenceHooks struct {
	// ToValue turns a reference attribute into the value of a domain field
	ToValue func(ctx context.Context, a attributes.Reference) (any, error)
	// ToObjectIDs turns the value of a domain field into the ids of the referenced objects
	ToObjectIDs func(ctx context.Context, s schema.Reference, value any) ([]types.ObjectID, error)
}

// Field describes one field of a domain type D. The field is associated with the
// attribute whose lower-cased name equals the lower-cased field name.
type Field[D any] interface {
	Name() string

	check(s schema.Attribute) error
	toAttribute(ctx context.Context, s schema.Attribute, d D, hooks ReferenceHooks) (attributes.Attribute, error)
	fromAttribute(ctx context.Context, a attributes.Attribute, d *D, hooks ReferenceHooks) error
}

type valueField[D, V any] struct {
	name string
	get  func(D) V
	set  func(*D, V)
}

// FieldOf describes a field holding a value of a default attribute kind. Supported
// field types are string, int, int32, int64, bool, float32, float64, time.Time and []string.
func FieldOf[D, V any](name string, get func(D) V, set func(*D, V)) Field[D] {
	return valueField[D, V]{name: name, get: get, set: set}
}

func (f valueField[D, V]) Name() string { return f.name }

func (f valueField[D, V]) check(s schema.Attribute) error {
	if !s.Kind().IsValue() {
		return errors.NewUnsupportedTypeError(f.name, s.ID(), fmt.Sprintf("attribute kind %s needs a reference field or a manual mapping", s.Kind()))
	}

	var zero V
	if !isSupported(zero) {
		return errors.NewUnsupportedTypeError(f.name, s.ID(), fmt.Sprintf("no coercion to field type %T", zero))
	}

	return nil
}

func (f valueField[D, V]) toAttribute(_ context.Context, s schema.Attribute, d D, _ ReferenceHooks) (attributes.Attribute, error) {
	return fromValue(f.name, s, f.get(d))
}

func (f valueField[D, V]) fromAttribute(_ context.Context, a attributes.Attribute, d *D, _ ReferenceHooks) error {
	v, err := coerce[V](f.name, a)
	if err != nil {
		return err
	}
	f.set(d, v)
	return nil
}

type referenceField[D, V any] struct {
	name string
	get  func(D) V
	set  func(*D, V)
}

// ReferenceField describes a field whose value is resolved through the ReferenceHooks
func ReferenceField[D, V any](name string, get func(D) V, set func(*D, V)) Field[D] {
	return referenceField[D, V]{name: name, get: get, set: set}
}

func (f referenceField[D, V]) Name() string { return f.name }

func (f referenceField[D, V]) check(s schema.Attribute) error {
	if _, ok := s.(schema.Reference); !ok {
		return errors.NewUnsupportedTypeError(f.name, s.ID(), fmt.Sprintf("attribute kind %s is not a reference", s.Kind()))
	}
	return nil
}

func (f referenceField[D, V]) toAttribute(ctx context.Context, s schema.Attribute, d D, hooks ReferenceHooks) (attributes.Attribute, error) {
	if hooks.ToObjectIDs == nil {
		return nil, errors.NewInvalidArgumentError(fmt.Sprintf("field %q is a reference but no ToObjectIDs hook was supplied", f.name))
	}

	ids, err := hooks.ToObjectIDs(ctx, s.(schema.Reference), f.get(d))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve references of field %q: %w", f.name, err)
	}

	return attributes.Bind(attributes.NewReferenceToIDs(s.ID(), ids...), s)
}

func (f referenceField[D, V]) fromAttribute(ctx context.Context, a attributes.Attribute, d *D, hooks ReferenceHooks) error {
	ref, ok := a.(attributes.Reference)
	if !ok {
		return errors.NewUnsupportedTypeError(f.name, a.ID(), fmt.Sprintf("attribute kind %s is not a reference", a.Kind()))
	}

	if hooks.ToValue == nil {
		return errors.NewInvalidArgumentError(fmt.Sprintf("field %q is a reference but no ToValue hook was supplied", f.name))
	}

	value, err := hooks.ToValue(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to resolve reference of field %q: %w", f.name, err)
	}

	if value == nil {
		var zero V
		f.set(d, zero)
		return nil
	}

	v, ok := value.(V)
	if !ok {
		var zero V
		return errors.NewUnsupportedTypeError(f.name, a.ID(), fmt.Sprintf("reference resolved to %T but the field holds %T", value, zero))
	}

	f.set(d, v)
	return nil
}

type binding[D any] struct {
	field  Field[D]
	schema schema.Attribute
}

type nameMapping[D any] struct {
	bindings []binding[D]
	hooks    ReferenceHooks
}

// NewNameMapping associates fields with the attributes of objectType by name. Fields
// without a matching attribute are left untouched in both directions.
func NewNameMapping[D any](objectType schema.ObjectType, hooks ReferenceHooks, fields ...Field[D]) (Mapping[D], error) {
	nt := objectType.NameTable()

	m := &nameMapping[D]{
		bindings: make([]binding[D], 0, len(fields)),
		hooks:    hooks,
	}

	for _, f := range fields {
		s, ok := nt.Lookup(f.Name())
		if !ok {
			continue
		}

		if err := f.check(s); err != nil {
			return nil, err
		}

		m.bindings = append(m.bindings, binding[D]{field: f, schema: s})
	}

	return m, nil
}

func (m *nameMapping[D]) ToDomain(ctx context.Context, object *objects.Object) (D, error) {
	var d D

	for _, b := range m.bindings {
		a, ok := object.Attribute(b.schema.ID())
		if !ok {
			continue
		}

		err := b.field.fromAttribute(ctx, a, &d, m.hooks)
		if err != nil {
			var zero D
			return zero, err
		}
	}

	return d, nil
}

func (m *nameMapping[D]) FromDomain(ctx context.Context, d D) ([]attributes.Attribute, error) {
	result := make([]attributes.Attribute, 0, len(m.bindings))

	for _, b := range m.bindings {
		a, err := b.field.toAttribute(ctx, b.schema, d, m.hooks)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	return result, nil
}
