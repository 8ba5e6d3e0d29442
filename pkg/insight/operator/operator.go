package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/insight-client/pkg/insight"
	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/iql"
	"github.com/diwise/insight-client/pkg/insight/paging"
	"github.com/diwise/insight-client/pkg/insight/schemacache"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/objects"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out ../../test/transport_mock.go . Transport

// Transport is the capability a backend has to provide for the operator to work
type Transport interface {
	FetchPage(ctx context.Context, query string, offset, limit int) (insight.Page[objects.RawObject], error)
	// FetchObjectByID returns nil, without an error, when the object does not exist
	FetchObjectByID(ctx context.Context, id types.ObjectID) (*objects.RawObject, error)
	// WriteObject creates the object if it is not persisted, updates it otherwise
	WriteObject(ctx context.Context, object objects.RawObject) (types.ObjectID, error)
	DeleteObject(ctx context.Context, id types.ObjectID) error
	FetchObjectTypeSchema(ctx context.Context, id types.ObjectTypeID) (schema.ObjectType, error)
	FetchObjectTypes(ctx context.Context, schemaID types.SchemaID) ([]schema.ObjectType, error)
	FetchSchemas(ctx context.Context) ([]schema.Summary, error)
}

const DefaultPageSize int = 25

const (
	TraceAttributeObjectID     string = "object-id"
	TraceAttributeObjectTypeID string = "object-type-id"
	TraceAttributeQuery        string = "iql"
)

var tracer = otel.Tracer("insight-client/operator")

func PageSize(size int) func(*Operator) {
	return func(o *Operator) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

// Operator is the CRUD and query facade over a Transport
type Operator struct {
	transport Transport
	cache     *schemacache.Cache
	pageSize  int
}

func New(transport Transport, cache *schemacache.Cache, options ...func(*Operator)) *Operator {
	o := &Operator{
		transport: transport,
		cache:     cache,
		pageSize:  DefaultPageSize,
	}

	for _, option := range options {
		option(o)
	}

	return o
}

func (o *Operator) Cache() *schemacache.Cache {
	return o.cache
}

// ObjectTypeSchema returns the cached object type, or asks the transport for object
// types the cache does not know about
func (o *Operator) ObjectTypeSchema(ctx context.Context, id types.ObjectTypeID) (schema.ObjectType, error) {
	ot, err := o.cache.ObjectType(id)
	if err == nil {
		return ot, nil
	}

	ot, err = o.transport.FetchObjectTypeSchema(ctx, id)
	if err != nil {
		if errors.Is(err, insighterrors.ErrNotFound) {
			return schema.ObjectType{}, insighterrors.NewObjectTypeNotFoundError(id)
		}
		return schema.ObjectType{}, err
	}

	return ot, nil
}

// Create writes a new object and replaces its contents with the persisted state
func (o *Operator) Create(ctx context.Context, object *objects.Object) (*objects.Object, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-object",
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectTypeID, int64(object.ObjectTypeID))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if object.IsPersisted() {
		err = insighterrors.NewInvalidArgumentError(fmt.Sprintf("object %d is already persisted", object.ID))
		return nil, err
	}

	err = o.write(ctx, object)
	if err != nil {
		return nil, err
	}

	return object, nil
}

// Update writes an existing object. Objects that have not been persisted yet are created.
func (o *Operator) Update(ctx context.Context, object *objects.Object) (*objects.Object, error) {
	var err error

	ctx, span := tracer.Start(ctx, "update-object",
		trace.WithAttributes(
			attribute.Int64(TraceAttributeObjectID, int64(object.ID)),
			attribute.Int64(TraceAttributeObjectTypeID, int64(object.ObjectTypeID)),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if !object.IsPersisted() {
		logging.GetFromContext(ctx).Debug("object not persisted, creating it", "objectTypeId", int64(object.ObjectTypeID))
	}

	err = o.write(ctx, object)
	if err != nil {
		return nil, err
	}

	return object, nil
}

// UpdateAttributes merges attrs into the existing object and writes it
func (o *Operator) UpdateAttributes(ctx context.Context, id types.ObjectID, decorators ...objects.DecoratorFunc) (*objects.Object, error) {
	existing, err := o.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, insighterrors.NewObjectNotFoundError(id)
	}

	for _, decorate := range decorators {
		decorate(existing)
	}

	return o.Update(ctx, existing)
}

// Delete removes an object. Deleting an object that does not exist is not an error.
func (o *Operator) Delete(ctx context.Context, id types.ObjectID) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-object",
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectID, int64(id))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if !id.IsPersisted() {
		return nil
	}

	err = o.transport.DeleteObject(ctx, id)
	if errors.Is(err, insighterrors.ErrNotFound) {
		logging.GetFromContext(ctx).Debug("object to delete does not exist", "objectId", int64(id))
		err = nil
	}

	return err
}

// GetByID returns nil when no object with the given id exists
func (o *Operator) GetByID(ctx context.Context, id types.ObjectID) (*objects.Object, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-object",
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectID, int64(id))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var object *objects.Object
	object, err = o.fetch(ctx, id)

	return object, err
}

func (o *Operator) GetByKey(ctx context.Context, key string) (*objects.Object, error) {
	return o.first(ctx, iql.Build(iql.Key(key)))
}

func (o *Operator) GetByName(ctx context.Context, objectTypeID types.ObjectTypeID, name string) (*objects.Object, error) {
	return o.first(ctx, iql.Build(iql.ObjectTypeID(objectTypeID), iql.Name(name)))
}

// GetByQuery returns every object of the object type, and optionally its children, that matches filter
func (o *Operator) GetByQuery(ctx context.Context, objectTypeID types.ObjectTypeID, withChildren bool, filter string) ([]*objects.Object, error) {
	query, err := o.TypeScopedQuery(objectTypeID, withChildren, filter)
	if err != nil {
		return nil, err
	}

	return o.GetByIQL(ctx, query)
}

// GetByIQL returns every object matching the query
func (o *Operator) GetByIQL(ctx context.Context, query string) ([]*objects.Object, error) {
	var err error

	ctx, span := tracer.Start(ctx, "query-objects",
		trace.WithAttributes(attribute.String(TraceAttributeQuery, query)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var result []*objects.Object
	result, err = paging.Paginate(ctx, o.pageSize, o.fetchPage(query))

	return result, err
}

// GetPage returns a single page, pageIndex starts at 0
func (o *Operator) GetPage(ctx context.Context, objectTypeID types.ObjectTypeID, withChildren bool, filter string, pageIndex, pageSize int) (insight.Page[*objects.Object], error) {
	if pageIndex < 0 || pageSize <= 0 {
		return insight.Page[*objects.Object]{}, insighterrors.NewInvalidArgumentError(
			fmt.Sprintf("invalid page %d of size %d", pageIndex, pageSize),
		)
	}

	query, err := o.TypeScopedQuery(objectTypeID, withChildren, filter)
	if err != nil {
		return insight.Page[*objects.Object]{}, err
	}

	return o.fetchPage(query)(ctx, pageIndex*pageSize, pageSize)
}

func (o *Operator) Count(ctx context.Context, objectTypeID types.ObjectTypeID, withChildren bool, filter string) (int64, error) {
	query, err := o.TypeScopedQuery(objectTypeID, withChildren, filter)
	if err != nil {
		return 0, err
	}

	return paging.TotalCount(ctx, o.fetchPage(query))
}

// TypeScopedQuery builds "<type filter> AND <filter>". With children, the type filter
// covers the object type and every object type below it.
func (o *Operator) TypeScopedQuery(objectTypeID types.ObjectTypeID, withChildren bool, filter string) (string, error) {
	ids := []types.ObjectTypeID{objectTypeID}

	if withChildren {
		var err error
		ids, err = o.cache.WithChildren(objectTypeID)
		if err != nil {
			return "", err
		}
	}

	return iql.Build(iql.ObjectTypeIn(ids), iql.Raw(filter)), nil
}

func (o *Operator) first(ctx context.Context, query string) (*objects.Object, error) {
	var err error

	ctx, span := tracer.Start(ctx, "find-object",
		trace.WithAttributes(attribute.String(TraceAttributeQuery, query)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var page insight.Page[*objects.Object]
	page, err = o.fetchPage(query)(ctx, 0, 1)
	if err != nil {
		return nil, err
	}

	if len(page.Items) == 0 {
		return nil, nil
	}

	return page.Items[0], nil
}

func (o *Operator) fetchPage(query string) paging.FetchFunc[*objects.Object] {
	return func(ctx context.Context, offset, limit int) (insight.Page[*objects.Object], error) {
		raw, err := o.transport.FetchPage(ctx, query, offset, limit)
		if err != nil {
			return insight.Page[*objects.Object]{}, err
		}

		return insight.Map(raw, o.decode)
	}
}

func (o *Operator) write(ctx context.Context, object *objects.Object) error {
	err := o.validate(ctx, object)
	if err != nil {
		return err
	}

	id, err := o.transport.WriteObject(ctx, objects.ToRaw(object))
	if err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}

	persisted, err := o.fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch written object %d: %w", id, err)
	}

	if persisted == nil {
		return insighterrors.NewObjectNotFoundError(id)
	}

	*object = *persisted

	return nil
}

func (o *Operator) fetch(ctx context.Context, id types.ObjectID) (*objects.Object, error) {
	raw, err := o.transport.FetchObjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, insighterrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if raw == nil {
		return nil, nil
	}

	return o.decode(*raw)
}

func (o *Operator) decode(raw objects.RawObject) (*objects.Object, error) {
	var objectType *schema.ObjectType
	if ot, err := o.cache.ObjectType(raw.ObjectType.ID); err == nil {
		objectType = &ot
	}
	return objects.FromRaw(raw, objectType)
}

// validate checks that every attribute exists on the object type with a matching kind
func (o *Operator) validate(ctx context.Context, object *objects.Object) error {
	ot, err := o.ObjectTypeSchema(ctx, object.ObjectTypeID)
	if err != nil {
		return err
	}

	for _, a := range object.Attributes() {
		s, ok := ot.Attribute(a.ID())
		if !ok {
			return insighterrors.NewInvalidArgumentError(
				fmt.Sprintf("attribute %d does not exist on object type %d", a.ID(), ot.ID),
			)
		}

		if s.Kind() != a.Kind() {
			return insighterrors.NewInvalidArgumentError(
				fmt.Sprintf("attribute %d is of kind %s but object type %d declares %s", a.ID(), a.Kind(), ot.ID, s.Kind()),
			)
		}
	}

	return nil
}
