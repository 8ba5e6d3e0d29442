package mapper

import (
	"context"
	"fmt"

	"github.com/diwise/insight-client/pkg/insight"
	"github.com/diwise/insight-client/pkg/insight/schemacache"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/objects"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
)

// Mapping converts between objects and a domain type D
type Mapping[D any] interface {
	ToDomain(ctx context.Context, object *objects.Object) (D, error)
	FromDomain(ctx context.Context, d D) ([]attributes.Attribute, error)
}

type ToDomainFunc[D any] func(ctx context.Context, object *objects.Object) (D, error)
type FromDomainFunc[D any] func(ctx context.Context, d D) ([]attributes.Attribute, error)

type manualMapping[D any] struct {
	to   ToDomainFunc[D]
	from FromDomainFunc[D]
}

func (m manualMapping[D]) ToDomain(ctx context.Context, object *objects.Object) (D, error) {
	return m.to(ctx, object)
}

func (m manualMapping[D]) FromDomain(ctx context.Context, d D) ([]attributes.Attribute, error) {
	return m.from(ctx, d)
}

// Manual creates a mapping from an explicit pair of conversion functions
func Manual[D any](to ToDomainFunc[D], from FromDomainFunc[D]) Mapping[D] {
	return manualMapping[D]{to: to, from: from}
}

// ObjectOperator is the part of the operator facade a repository builds on
type ObjectOperator interface {
	Create(ctx context.Context, object *objects.Object) (*objects.Object, error)
	Update(ctx context.Context, object *objects.Object) (*objects.Object, error)
	Delete(ctx context.Context, id types.ObjectID) error
	GetByID(ctx context.Context, id types.ObjectID) (*objects.Object, error)
	GetByName(ctx context.Context, objectTypeID types.ObjectTypeID, name string) (*objects.Object, error)
	GetByQuery(ctx context.Context, objectTypeID types.ObjectTypeID, withChildren bool, filter string) ([]*objects.Object, error)
	GetPage(ctx context.Context, objectTypeID types.ObjectTypeID, withChildren bool, filter string, pageIndex, pageSize int) (insight.Page[*objects.Object], error)
}

// KeyFunc returns the name the remote object of d is known by
type KeyFunc[D any] func(d D) string

// LookupFunc finds the remote object that corresponds to d, or nil
type LookupFunc[D any] func(ctx context.Context, d D) (*objects.Object, error)

// Repository stores values of a domain type as objects of a single object type
type Repository[D any] struct {
	op         ObjectOperator
	objectType schema.ObjectType
	mapping    Mapping[D]
	lookup     LookupFunc[D]
}

// WithLookup replaces the default lookup by name
func WithLookup[D any](lookup LookupFunc[D]) func(*Repository[D]) {
	return func(r *Repository[D]) {
		r.lookup = lookup
	}
}

func NewRepository[D any](op ObjectOperator, objectType schema.ObjectType, mapping Mapping[D], key KeyFunc[D], options ...func(*Repository[D])) *Repository[D] {
	r := &Repository[D]{
		op:         op,
		objectType: objectType,
		mapping:    mapping,
	}

	r.lookup = func(ctx context.Context, d D) (*objects.Object, error) {
		return op.GetByName(ctx, objectType.ID, key(d))
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// ForObjectTypeName resolves the object type with the given name from the cache
func ForObjectTypeName(cache *schemacache.Cache, name string) (schema.ObjectType, error) {
	return cache.ObjectTypeByName(name)
}

func (r *Repository[D]) ObjectType() schema.ObjectType {
	return r.objectType
}

func (r *Repository[D]) Create(ctx context.Context, d D) (D, error) {
	var zero D

	attrs, err := r.mapping.FromDomain(ctx, d)
	if err != nil {
		return zero, fmt.Errorf("failed to map %s to attributes: %w", r.objectType.Name, err)
	}

	object, err := r.op.Create(ctx, objects.New(r.objectType.ID, objects.A(attrs...)))
	if err != nil {
		return zero, err
	}

	return r.mapping.ToDomain(ctx, object)
}

// Update writes d to its existing remote object. If there is none, it is created.
func (r *Repository[D]) Update(ctx context.Context, d D) (D, error) {
	var zero D

	existing, err := r.lookup(ctx, d)
	if err != nil {
		return zero, err
	}

	if existing == nil {
		return r.Create(ctx, d)
	}

	attrs, err := r.mapping.FromDomain(ctx, d)
	if err != nil {
		return zero, fmt.Errorf("failed to map %s to attributes: %w", r.objectType.Name, err)
	}

	for _, a := range attrs {
		existing.SetAttribute(a)
	}

	object, err := r.op.Update(ctx, existing)
	if err != nil {
		return zero, err
	}

	return r.mapping.ToDomain(ctx, object)
}

// Delete removes the remote object of d, if there is one
func (r *Repository[D]) Delete(ctx context.Context, d D) error {
	existing, err := r.lookup(ctx, d)
	if err != nil {
		return err
	}

	if existing == nil {
		return nil
	}

	return r.op.Delete(ctx, existing.ID)
}

func (r *Repository[D]) GetByName(ctx context.Context, name string) (*D, error) {
	object, err := r.op.GetByName(ctx, r.objectType.ID, name)
	if err != nil {
		return nil, err
	}

	return r.toDomain(ctx, object)
}

func (r *Repository[D]) GetByID(ctx context.Context, id types.ObjectID) (*D, error) {
	object, err := r.op.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return r.toDomain(ctx, object)
}

func (r *Repository[D]) GetByQuery(ctx context.Context, filter string, withChildren bool) ([]D, error) {
	found, err := r.op.GetByQuery(ctx, r.objectType.ID, withChildren, filter)
	if err != nil {
		return nil, err
	}

	result := make([]D, 0, len(found))
	for _, object := range found {
		d, err := r.mapping.ToDomain(ctx, object)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}

	return result, nil
}

func (r *Repository[D]) GetPage(ctx context.Context, filter string, withChildren bool, pageIndex, pageSize int) (insight.Page[D], error) {
	page, err := r.op.GetPage(ctx, r.objectType.ID, withChildren, filter, pageIndex, pageSize)
	if err != nil {
		return insight.Page[D]{}, err
	}

	return insight.Map(page, func(object *objects.Object) (D, error) {
		return r.mapping.ToDomain(ctx, object)
	})
}

func (r *Repository[D]) toDomain(ctx context.Context, object *objects.Object) (*D, error) {
	if object == nil {
		return nil, nil
	}

	d, err := r.mapping.ToDomain(ctx, object)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
