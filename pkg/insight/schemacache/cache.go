package schemacache

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Source is the part of a transport the cache is built from
type Source interface {
	FetchSchemas(ctx context.Context) ([]schema.Summary, error)
	FetchObjectTypes(ctx context.Context, schemaID types.SchemaID) ([]schema.ObjectType, error)
}

// Cache holds the object types of one or more schemas together with their name
// tables. It is filled once when created and only changes on Refresh.
type Cache struct {
	source    Source
	schemaIDs []types.SchemaID

	mu          sync.RWMutex
	schemas     []schema.Summary
	objectTypes []schema.ObjectType
	byID        map[types.ObjectTypeID]schema.ObjectType
	nameTables  map[types.ObjectTypeID]schema.NameTable
}

// Schemas restricts the cache to the given schemas instead of every schema the source lists
func Schemas(ids ...types.SchemaID) func(*Cache) {
	return func(c *Cache) {
		c.schemaIDs = append(c.schemaIDs, ids...)
	}
}

func New(ctx context.Context, source Source, options ...func(*Cache)) (*Cache, error) {
	c := &Cache{
		source: source,
	}

	for _, option := range options {
		option(c)
	}

	err := c.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Refresh refetches all schemas and object types. The cache keeps its previous
// contents if the refresh fails.
func (c *Cache) Refresh(ctx context.Context) error {
	summaries, err := c.source.FetchSchemas(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch schemas: %w", err)
	}

	schemas := selectSchemas(summaries, c.schemaIDs)

	objectTypes := []schema.ObjectType{}
	for _, s := range schemas {
		ots, err := c.source.FetchObjectTypes(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch object types of schema %d: %w", s.ID, err)
		}
		objectTypes = append(objectTypes, ots...)
	}

	byID := make(map[types.ObjectTypeID]schema.ObjectType, len(objectTypes))
	nameTables := make(map[types.ObjectTypeID]schema.NameTable, len(objectTypes))

	for _, ot := range objectTypes {
		byID[ot.ID] = ot
		nameTables[ot.ID] = ot.NameTable()
	}

	c.mu.Lock()
	c.schemas = schemas
	c.objectTypes = objectTypes
	c.byID = byID
	c.nameTables = nameTables
	c.mu.Unlock()

	logging.GetFromContext(ctx).Info("schema cache refreshed", "schemas", len(schemas), "objectTypes", len(objectTypes))

	return nil
}

func (c *Cache) Schemas() []schema.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]schema.Summary{}, c.schemas...)
}

func (c *Cache) ObjectTypes() []schema.ObjectType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]schema.ObjectType{}, c.objectTypes...)
}

func (c *Cache) ObjectType(id types.ObjectTypeID) (schema.ObjectType, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ot, ok := c.byID[id]
	if !ok {
		return schema.ObjectType{}, errors.NewObjectTypeNotFoundError(id)
	}

	return ot, nil
}

// ObjectTypeByName finds an object type by its case insensitive name. The first match wins.
func (c *Cache) ObjectTypeByName(name string) (schema.ObjectType, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, ot := range c.objectTypes {
		if strings.EqualFold(ot.Name, name) {
			return ot, nil
		}
	}

	return schema.ObjectType{}, errors.NewNotFoundError(fmt.Sprintf("object type %q could not be found", name))
}

func (c *Cache) NameTable(id types.ObjectTypeID) (schema.NameTable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	nt, ok := c.nameTables[id]
	if !ok {
		return nil, errors.NewObjectTypeNotFoundError(id)
	}

	return nt, nil
}

// WithChildren returns the id of the object type followed by the ids of all its descendants
func (c *Cache) WithChildren(id types.ObjectTypeID) ([]types.ObjectTypeID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ots, err := schema.WithChildren(c.objectTypes, id)
	if err != nil {
		return nil, err
	}

	ids := make([]types.ObjectTypeID, 0, len(ots))
	for _, ot := range ots {
		ids = append(ids, ot.ID)
	}

	return ids, nil
}

func selectSchemas(summaries []schema.Summary, wanted []types.SchemaID) []schema.Summary {
	if len(wanted) == 0 {
		return summaries
	}

	result := []schema.Summary{}
	for _, s := range summaries {
		for _, id := range wanted {
			if s.ID == id {
				result = append(result, s)
				break
			}
		}
	}

	return result
}
