package cmdb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/diwise/insight-client/pkg/insight"
	"github.com/diwise/insight-client/pkg/insight/config"
	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/operator"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/objects"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out cmdb_mock.go . AssetManager

type SchemaBrowser interface {
	Schemas(ctx context.Context) ([]schema.Summary, error)
	ObjectTypes(ctx context.Context) ([]schema.ObjectType, error)
	// ObjectType resolves an object type by configured alias, name or numeric id
	ObjectType(ctx context.Context, objectType string) (schema.ObjectType, error)
	RefreshSchemas(ctx context.Context) error
}

type ObjectQuerier interface {
	QueryObjects(ctx context.Context, objectType string, params QueryParams) (insight.Page[*objects.Object], error)
	RetrieveObject(ctx context.Context, id types.ObjectID) (*objects.Object, error)
	RetrieveObjectByKey(ctx context.Context, key string) (*objects.Object, error)
}

type ObjectWriter interface {
	CreateObject(ctx context.Context, objectType string, attrs []attributes.Attribute) (*objects.Object, error)
	UpdateObjectAttributes(ctx context.Context, id types.ObjectID, attrs []attributes.Attribute) (*objects.Object, error)
	DeleteObject(ctx context.Context, id types.ObjectID) error
}

type AssetManager interface {
	SchemaBrowser
	ObjectQuerier
	ObjectWriter
}

type QueryParams struct {
	Filter       string
	WithChildren bool
	PageIndex    int
	PageSize     int
}

type assetManager struct {
	operator *operator.Operator
	cfg      *config.Config
}

func New(op *operator.Operator, cfg *config.Config) AssetManager {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return &assetManager{
		operator: op,
		cfg:      cfg,
	}
}

func (m *assetManager) Schemas(ctx context.Context) ([]schema.Summary, error) {
	return m.operator.Cache().Schemas(), nil
}

func (m *assetManager) ObjectTypes(ctx context.Context) ([]schema.ObjectType, error) {
	return m.operator.Cache().ObjectTypes(), nil
}

func (m *assetManager) ObjectType(ctx context.Context, objectType string) (schema.ObjectType, error) {
	if id, ok := m.cfg.ObjectTypeID(objectType); ok {
		return m.operator.ObjectTypeSchema(ctx, id)
	}

	ot, err := m.operator.Cache().ObjectTypeByName(objectType)
	if err == nil {
		return ot, nil
	}

	id, convErr := strconv.ParseInt(objectType, 10, 64)
	if convErr != nil {
		return schema.ObjectType{}, err
	}

	return m.operator.ObjectTypeSchema(ctx, types.ObjectTypeID(id))
}

func (m *assetManager) RefreshSchemas(ctx context.Context) error {
	return m.operator.Cache().Refresh(ctx)
}

func (m *assetManager) QueryObjects(ctx context.Context, objectType string, params QueryParams) (insight.Page[*objects.Object], error) {
	ot, err := m.ObjectType(ctx, objectType)
	if err != nil {
		return insight.Page[*objects.Object]{}, err
	}

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = m.cfg.PageSize
	}
	if pageSize <= 0 {
		pageSize = operator.DefaultPageSize
	}

	return m.operator.GetPage(ctx, ot.ID, params.WithChildren, params.Filter, params.PageIndex, pageSize)
}

func (m *assetManager) RetrieveObject(ctx context.Context, id types.ObjectID) (*objects.Object, error) {
	object, err := m.operator.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if object == nil {
		return nil, errors.NewObjectNotFoundError(id)
	}

	return object, nil
}

func (m *assetManager) RetrieveObjectByKey(ctx context.Context, key string) (*objects.Object, error) {
	object, err := m.operator.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if object == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no object with key %q", key))
	}

	return object, nil
}

func (m *assetManager) CreateObject(ctx context.Context, objectType string, attrs []attributes.Attribute) (*objects.Object, error) {
	ot, err := m.ObjectType(ctx, objectType)
	if err != nil {
		return nil, err
	}

	attrs, err = bindAll(ot, attrs)
	if err != nil {
		return nil, err
	}

	object, err := m.operator.Create(ctx, objects.New(ot.ID, objects.A(attrs...)))
	if err != nil {
		return nil, err
	}

	logging.GetFromContext(ctx).Info("object created", "objectId", int64(object.ID), "objectKey", object.ObjectKey)

	return object, nil
}

func (m *assetManager) UpdateObjectAttributes(ctx context.Context, id types.ObjectID, attrs []attributes.Attribute) (*objects.Object, error) {
	existing, err := m.RetrieveObject(ctx, id)
	if err != nil {
		return nil, err
	}

	ot, err := m.operator.ObjectTypeSchema(ctx, existing.ObjectTypeID)
	if err != nil {
		return nil, err
	}

	attrs, err = bindAll(ot, attrs)
	if err != nil {
		return nil, err
	}

	return m.operator.UpdateAttributes(ctx, id, objects.A(attrs...))
}

func (m *assetManager) DeleteObject(ctx context.Context, id types.ObjectID) error {
	return m.operator.Delete(ctx, id)
}

// bindAll attaches the attribute schemas of ot, rejecting attributes the object type lacks
func bindAll(ot schema.ObjectType, attrs []attributes.Attribute) ([]attributes.Attribute, error) {
	bound := make([]attributes.Attribute, 0, len(attrs))

	for _, a := range attrs {
		s, ok := ot.Attribute(a.ID())
		if !ok {
			return nil, errors.NewInvalidArgumentError(
				fmt.Sprintf("attribute %d does not exist on object type %s", a.ID(), ot.Name),
			)
		}

		b, err := attributes.Bind(a, s)
		if err != nil {
			return nil, err
		}

		bound = append(bound, b)
	}

	return bound, nil
}
