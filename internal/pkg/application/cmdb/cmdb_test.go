package cmdb

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/insight-client/pkg/insight/config"
	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/operator"
	"github.com/diwise/insight-client/pkg/insight/schemacache"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/diwise/insight-client/pkg/test"
	"github.com/matryer/is"
)

const (
	serverType types.ObjectTypeID = 3
	diskType   types.ObjectTypeID = 4

	hostnameAttr types.AttributeID = 30
	cpuAttr      types.AttributeID = 31
	ipAttr       types.AttributeID = 32
	diskNameAttr types.AttributeID = 40
)

func TestResolveObjectTypeByAliasNameAndID(t *testing.T) {
	is, app, _ := setupAssetManagerTest(t)
	ctx := context.Background()

	byAlias, err := app.ObjectType(ctx, "servers")
	is.NoErr(err)
	is.Equal(byAlias.ID, serverType)

	byName, err := app.ObjectType(ctx, "disk")
	is.NoErr(err)
	is.Equal(byName.ID, diskType)

	byID, err := app.ObjectType(ctx, "3")
	is.NoErr(err)
	is.Equal(byID.Name, "Server")

	_, err = app.ObjectType(ctx, "printer")
	is.True(errors.Is(err, insighterrors.ErrNotFound))
}

func TestCreateObjectBindsAttributes(t *testing.T) {
	is, app, _ := setupAssetManagerTest(t)
	ctx := context.Background()

	created, err := app.CreateObject(ctx, "Server", []attributes.Attribute{
		attributes.NewText(hostnameAttr, "web-01"),
		attributes.NewInteger(cpuAttr, 8),
	})

	is.NoErr(err)
	is.True(created.IsPersisted())
	is.Equal(created.Label, "web-01")

	cpus, ok := created.IntegerValue(cpuAttr)
	is.True(ok)
	is.Equal(cpus, int64(8))
}

func TestCreateObjectRejectsUnknownAttribute(t *testing.T) {
	is, app, transport := setupAssetManagerTest(t)

	_, err := app.CreateObject(context.Background(), "Server", []attributes.Attribute{
		attributes.NewText(diskNameAttr, "sda"),
	})

	is.True(errors.Is(err, insighterrors.ErrInvalidArgument))
	is.Equal(len(transport.WriteObjectCalls()), 0)
}

func TestCreateObjectRejectsKindMismatch(t *testing.T) {
	is, app, _ := setupAssetManagerTest(t)

	_, err := app.CreateObject(context.Background(), "Server", []attributes.Attribute{
		attributes.NewText(cpuAttr, "eight"),
	})

	is.True(errors.Is(err, insighterrors.ErrInvalidArgument))
}

func TestRetrieveMissingObjectIsNotFound(t *testing.T) {
	is, app, _ := setupAssetManagerTest(t)

	_, err := app.RetrieveObject(context.Background(), 1234)
	is.True(errors.Is(err, insighterrors.ErrNotFound))

	_, err = app.RetrieveObjectByKey(context.Background(), "CMDB-1234")
	is.True(errors.Is(err, insighterrors.ErrNotFound))
}

func TestRetrieveObjectByKey(t *testing.T) {
	is, app, _ := setupAssetManagerTest(t)
	ctx := context.Background()

	created, err := app.CreateObject(ctx, "Server", []attributes.Attribute{attributes.NewText(hostnameAttr, "db-01")})
	is.NoErr(err)

	found, err := app.RetrieveObjectByKey(ctx, created.ObjectKey)
	is.NoErr(err)
	is.Equal(found.ID, created.ID)
}

func TestUpdateObjectAttributesMerges(t *testing.T) {
	is, app, _ := setupAssetManagerTest(t)
	ctx := context.Background()

	created, err := app.CreateObject(ctx, "Server", []attributes.Attribute{
		attributes.NewText(hostnameAttr, "web-01"),
		attributes.NewInteger(cpuAttr, 8),
	})
	is.NoErr(err)

	updated, err := app.UpdateObjectAttributes(ctx, created.ID, []attributes.Attribute{
		attributes.NewIPAddress(ipAttr, "10.0.0.1"),
	})
	is.NoErr(err)

	ip, ok := updated.StringValue(ipAttr)
	is.True(ok)
	is.Equal(ip, "10.0.0.1")

	cpus, _ := updated.IntegerValue(cpuAttr)
	is.Equal(cpus, int64(8)) // attributes not in the patch should be kept
}

func TestQueryObjectsUsesConfiguredPageSize(t *testing.T) {
	is, app, transport := setupAssetManagerTest(t)
	ctx := context.Background()

	for _, hostname := range []string{"web-01", "web-02", "web-03"} {
		_, err := app.CreateObject(ctx, "Server", []attributes.Attribute{attributes.NewText(hostnameAttr, hostname)})
		is.NoErr(err)
	}

	page, err := app.QueryObjects(ctx, "servers", QueryParams{PageIndex: 1})

	is.NoErr(err)
	is.Equal(page.TotalCount, int64(3))
	is.Equal(len(page.Items), 1)
	is.Equal(page.Items[0].Label, "web-03")

	calls := transport.FetchPageCalls()
	is.Equal(calls[len(calls)-1].Offset, 2)
	is.Equal(calls[len(calls)-1].Limit, 2)
}

func TestDeleteObjectIsIdempotent(t *testing.T) {
	is, app, _ := setupAssetManagerTest(t)
	ctx := context.Background()

	created, err := app.CreateObject(ctx, "Disk", []attributes.Attribute{attributes.NewText(diskNameAttr, "sda")})
	is.NoErr(err)

	is.NoErr(app.DeleteObject(ctx, created.ID))
	is.NoErr(app.DeleteObject(ctx, created.ID))

	_, err = app.RetrieveObject(ctx, created.ID)
	is.True(errors.Is(err, insighterrors.ErrNotFound))
}

func TestRefreshSchemas(t *testing.T) {
	is, app, transport := setupAssetManagerTest(t)

	is.NoErr(app.RefreshSchemas(context.Background()))
	is.Equal(len(transport.FetchSchemasCalls()), 2)

	summaries, err := app.Schemas(context.Background())
	is.NoErr(err)
	is.Equal(len(summaries), 1)

	ots, err := app.ObjectTypes(context.Background())
	is.NoErr(err)
	is.Equal(len(ots), 2)
}

func setupAssetManagerTest(t *testing.T) (*is.I, AssetManager, *test.TransportMock) {
	is := is.New(t)
	ctx := context.Background()

	transport := test.NewInMemoryTransport(serverSchema())

	cache, err := schemacache.New(ctx, transport)
	is.NoErr(err)

	cfg := &config.Config{
		PageSize:    2,
		ObjectTypes: []config.ObjectTypeBinding{{Name: "servers", ID: serverType}},
	}

	return is, New(operator.New(transport, cache), cfg), transport
}

func serverSchema() []schema.ObjectType {
	return []schema.ObjectType{
		{
			ID:   serverType,
			Name: "Server",
			Attributes: []schema.Attribute{
				schema.New(types.KindText, hostnameAttr, "Name", schema.Cardinality(1, 1)),
				schema.New(types.KindInteger, cpuAttr, "CPUs"),
				schema.New(types.KindIPAddress, ipAttr, "IP Address"),
			},
		},
		{
			ID:   diskType,
			Name: "Disk",
			Attributes: []schema.Attribute{
				schema.New(types.KindText, diskNameAttr, "Name", schema.Cardinality(1, 1)),
			},
		},
	}
}
