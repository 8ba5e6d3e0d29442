package test

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/diwise/insight-client/pkg/insight"
	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/objects"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
)

var typeTerm = regexp.MustCompile(`objectTypeId(?:=(\d+)| IN \(([\d,]+)\))`)
var nameTerm = regexp.MustCompile(`Name(=| LIKE )"([^"]*)"`)
var keyTerm = regexp.MustCompile(`Key="([^"]*)"`)

// NewInMemoryTransport returns a TransportMock backed by a map, serving the given
// object types from a single schema. Queries are matched on their object type, Name
// and Key terms only. The label of an object is the value of its Name attribute.
func NewInMemoryTransport(objectTypes []schema.ObjectType) *TransportMock {
	var mu sync.Mutex

	store := map[types.ObjectID]objects.RawObject{}
	nextID := types.ObjectID(1)

	label := func(raw objects.RawObject) string {
		for _, ot := range objectTypes {
			if ot.ID != raw.ObjectType.ID {
				continue
			}
			id, ok := ot.NameTable().AttributeID("name")
			if !ok {
				return ""
			}
			for _, a := range raw.Attributes {
				if a.ObjectTypeAttributeID == id && len(a.ObjectAttributeValues) > 0 && a.ObjectAttributeValues[0].Value != nil {
					return *a.ObjectAttributeValues[0].Value
				}
			}
		}
		return ""
	}

	matches := func(query string, raw objects.RawObject) bool {
		if m := typeTerm.FindStringSubmatch(query); m != nil {
			if !slices.Contains(strings.Split(m[1]+m[2], ","), raw.ObjectType.ID.String()) {
				return false
			}
		}
		if m := nameTerm.FindStringSubmatch(query); m != nil {
			if m[1] == "=" && raw.Label != m[2] {
				return false
			}
			if m[1] != "=" && !strings.Contains(raw.Label, m[2]) {
				return false
			}
		}
		if m := keyTerm.FindStringSubmatch(query); m != nil && raw.ObjectKey != m[1] {
			return false
		}
		return true
	}

	return &TransportMock{
		FetchSchemasFunc: func(ctx context.Context) ([]schema.Summary, error) {
			return []schema.Summary{{ID: 1, Name: "CMDB", ObjectTypeCount: int64(len(objectTypes))}}, nil
		},
		FetchObjectTypesFunc: func(ctx context.Context, schemaID types.SchemaID) ([]schema.ObjectType, error) {
			return objectTypes, nil
		},
		FetchObjectTypeSchemaFunc: func(ctx context.Context, id types.ObjectTypeID) (schema.ObjectType, error) {
			for _, ot := range objectTypes {
				if ot.ID == id {
					return ot, nil
				}
			}
			return schema.ObjectType{}, errors.NewObjectTypeNotFoundError(id)
		},
		WriteObjectFunc: func(ctx context.Context, raw objects.RawObject) (types.ObjectID, error) {
			mu.Lock()
			defer mu.Unlock()

			if !raw.ID.IsPersisted() {
				raw.ID = nextID
				raw.ObjectKey = "CMDB-" + nextID.String()
				nextID++
			} else if existing, ok := store[raw.ID]; ok {
				raw.ObjectKey = existing.ObjectKey
			} else {
				return types.NotPersistedObjectID, errors.NewObjectNotFoundError(raw.ID)
			}

			raw.Label = label(raw)
			store[raw.ID] = raw

			return raw.ID, nil
		},
		FetchObjectByIDFunc: func(ctx context.Context, id types.ObjectID) (*objects.RawObject, error) {
			mu.Lock()
			defer mu.Unlock()

			raw, ok := store[id]
			if !ok {
				return nil, nil
			}
			return &raw, nil
		},
		DeleteObjectFunc: func(ctx context.Context, id types.ObjectID) error {
			mu.Lock()
			defer mu.Unlock()

			if _, ok := store[id]; !ok {
				return errors.NewObjectNotFoundError(id)
			}
			delete(store, id)
			return nil
		},
		FetchPageFunc: func(ctx context.Context, query string, offset, limit int) (insight.Page[objects.RawObject], error) {
			mu.Lock()
			defer mu.Unlock()

			ids := []types.ObjectID{}
			for id, raw := range store {
				if matches(query, raw) {
					ids = append(ids, id)
				}
			}
			slices.Sort(ids)

			items := []objects.RawObject{}
			for idx := offset; idx < len(ids) && idx < offset+limit; idx++ {
				items = append(items, store[ids[idx]])
			}

			return insight.NewPage(items, int64(len(ids))), nil
		},
	}
}
