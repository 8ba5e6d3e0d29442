package mapper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/mapper"
	"github.com/diwise/insight-client/pkg/insight/operator"
	"github.com/diwise/insight-client/pkg/insight/schemacache"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/objects"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/diwise/insight-client/pkg/test"
	"github.com/matryer/is"
)

type Country struct {
	Name string
}

type Company struct {
	Name      string
	Tier      []string
	Employees int
	Founded   time.Time
	Country   *Country
	Internal  string
}

func TestCreateByName(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	ot := schema.ObjectType{
		ID:         companyType,
		Name:       "Company",
		Attributes: []schema.Attribute{schema.New(types.KindText, 1, "Name")},
	}

	m, err := mapper.NewNameMapping(ot, mapper.ReferenceHooks{}, companyName)
	is.NoErr(err)

	repo := mapper.NewRepository(op, ot, m, func(c Company) string { return c.Name })

	created, err := repo.Create(ctx, Company{Name: "Acme"})
	is.NoErr(err)
	is.Equal(created.Name, "Acme")

	o, err := op.GetByName(ctx, companyType, "Acme")
	is.NoErr(err)
	is.Equal(len(o.Attributes()), 1)

	a, _ := o.Attribute(1)
	is.Equal(a.Kind(), types.KindText)
	is.Equal(a.String(), "Acme")
}

func TestRoundTripThroughNameMapping(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	companies, _ := newRepositories(is, op)

	founded := time.Date(1999, time.January, 2, 0, 0, 0, 0, time.UTC)

	created, err := companies.Create(ctx, Company{
		Name:      "Acme",
		Tier:      []string{"Gold"},
		Employees: 120,
		Founded:   founded,
		Internal:  "not stored",
	})
	is.NoErr(err)

	is.Equal(created.Name, "Acme")
	is.Equal(created.Tier, []string{"Gold"})
	is.Equal(created.Employees, 120)
	is.Equal(created.Founded, founded)
	is.Equal(created.Internal, "") // fields without an attribute should be left untouched
	is.True(created.Country == nil)
}

func TestReferenceHooks(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	companies, countries := newRepositories(is, op)

	_, err := countries.Create(ctx, Country{Name: "Sweden"})
	is.NoErr(err)

	_, err = companies.Create(ctx, Company{Name: "Acme", Country: &Country{Name: "Sweden"}})
	is.NoErr(err)

	found, err := companies.GetByName(ctx, "Acme")
	is.NoErr(err)
	is.Equal(found.Country.Name, "Sweden")

	o, err := op.GetByName(ctx, companyType, "Acme")
	is.NoErr(err)
	ref, ok := o.SingleReference(countryAttr)
	is.True(ok)
	is.Equal(ref.ID, types.ObjectID(1))
}

func TestUnresolvableReferenceFails(t *testing.T) {
	is, op := setupMapperTest(t)

	companies, _ := newRepositories(is, op)

	_, err := companies.Create(context.Background(), Company{Name: "Acme", Country: &Country{Name: "Atlantis"}})
	is.True(errors.Is(err, insighterrors.ErrNotFound))
}

func TestUpdateIsAnUpsert(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	companies, _ := newRepositories(is, op)

	_, err := companies.Update(ctx, Company{Name: "Acme", Employees: 10})
	is.NoErr(err)

	updated, err := companies.Update(ctx, Company{Name: "Acme", Employees: 12})
	is.NoErr(err)
	is.Equal(updated.Employees, 12)

	all, err := companies.GetByQuery(ctx, "", false)
	is.NoErr(err)
	is.Equal(len(all), 1) // the second update should not create another object
}

func TestDeleteMissingIsNoop(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	companies, _ := newRepositories(is, op)

	is.NoErr(companies.Delete(ctx, Company{Name: "Acme"}))

	_, err := companies.Create(ctx, Company{Name: "Acme"})
	is.NoErr(err)
	is.NoErr(companies.Delete(ctx, Company{Name: "Acme"}))

	found, err := companies.GetByName(ctx, "Acme")
	is.NoErr(err)
	is.True(found == nil)
}

func TestGetPage(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	companies, _ := newRepositories(is, op)

	for _, name := range []string{"A", "B", "C"} {
		_, err := companies.Create(ctx, Company{Name: name})
		is.NoErr(err)
	}

	page, err := companies.GetPage(ctx, "", false, 1, 2)
	is.NoErr(err)
	is.Equal(len(page.Items), 1)
	is.Equal(page.Items[0].Name, "C")
	is.Equal(page.TotalCount, int64(3))
}

func TestValueFieldOnReferenceIsUnsupported(t *testing.T) {
	is, _ := setupMapperTest(t)

	countryAsText := mapper.FieldOf("Country",
		func(c Company) string { return "" },
		func(c *Company, v string) {},
	)

	_, err := mapper.NewNameMapping(companySchema()[0], mapper.ReferenceHooks{}, countryAsText)
	is.True(errors.Is(err, insighterrors.ErrUnsupportedType))

	var ute *insighterrors.UnsupportedTypeError
	is.True(errors.As(err, &ute))
	is.Equal(ute.Field, "Country")
	is.Equal(ute.AttributeID, countryAttr)
}

func TestUnsupportedFieldType(t *testing.T) {
	is, _ := setupMapperTest(t)

	tags := mapper.FieldOf("Name",
		func(c Company) map[string]int { return nil },
		func(c *Company, v map[string]int) {},
	)

	_, err := mapper.NewNameMapping(companySchema()[0], mapper.ReferenceHooks{}, tags)
	is.True(errors.Is(err, insighterrors.ErrUnsupportedType))
}

func TestCoercionFailureIsDecodeError(t *testing.T) {
	is, _ := setupMapperTest(t)

	ot := schema.ObjectType{
		ID:         companyType,
		Attributes: []schema.Attribute{schema.New(types.KindText, 3, "Employees")},
	}

	m, err := mapper.NewNameMapping(ot, mapper.ReferenceHooks{}, companyEmployees)
	is.NoErr(err)

	_, err = m.ToDomain(context.Background(), objects.New(companyType, objects.Text(3, "lots")))
	is.True(errors.Is(err, insighterrors.ErrDecode))

	var de *insighterrors.DecodeError
	is.True(errors.As(err, &de))
	is.Equal(de.AttributeID, types.AttributeID(3))
}

func TestOutOfRangeNumberIsDecodeError(t *testing.T) {
	is, _ := setupMapperTest(t)

	type Tally struct {
		Count int32
		Ratio float32
	}

	ot := schema.ObjectType{
		ID: companyType,
		Attributes: []schema.Attribute{
			schema.New(types.KindInteger, 3, "Count"),
			schema.New(types.KindFloat, 6, "Ratio"),
		},
	}

	count := mapper.FieldOf("Count", func(c Tally) int32 { return c.Count }, func(c *Tally, v int32) { c.Count = v })
	ratio := mapper.FieldOf("Ratio", func(c Tally) float32 { return c.Ratio }, func(c *Tally, v float32) { c.Ratio = v })

	m, err := mapper.NewNameMapping(ot, mapper.ReferenceHooks{}, count, ratio)
	is.NoErr(err)

	_, err = m.ToDomain(context.Background(), objects.New(companyType, objects.Integer(3, 3000000000)))
	is.True(errors.Is(err, insighterrors.ErrDecode))

	var de *insighterrors.DecodeError
	is.True(errors.As(err, &de))
	is.Equal(de.AttributeID, types.AttributeID(3))

	_, err = m.ToDomain(context.Background(), objects.New(companyType, objects.Float(6, 1e300)))
	is.True(errors.Is(err, insighterrors.ErrDecode))

	tally, err := m.ToDomain(context.Background(), objects.New(companyType, objects.Integer(3, 2000000000), objects.Float(6, 0.5)))
	is.NoErr(err)
	is.Equal(tally.Count, int32(2000000000))
	is.Equal(tally.Ratio, float32(0.5))
}

func TestMissingReferenceHookIsInvalidArgument(t *testing.T) {
	is, _ := setupMapperTest(t)

	m, err := mapper.NewNameMapping(companySchema()[0], mapper.ReferenceHooks{}, companyCountry)
	is.NoErr(err)

	_, err = m.FromDomain(context.Background(), Company{Country: &Country{Name: "Sweden"}})
	is.True(errors.Is(err, insighterrors.ErrInvalidArgument))
}

func TestManualMapping(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	ot, err := mapper.ForObjectTypeName(op.Cache(), "country")
	is.NoErr(err)

	m := mapper.Manual(
		func(ctx context.Context, o *objects.Object) (Country, error) {
			name, _ := o.StringValue(countryNameAttr)
			return Country{Name: name}, nil
		},
		func(ctx context.Context, c Country) ([]attributes.Attribute, error) {
			return []attributes.Attribute{attributes.NewText(countryNameAttr, c.Name)}, nil
		},
	)

	countries := mapper.NewRepository(op, ot, m, func(c Country) string { return c.Name })

	created, err := countries.Create(ctx, Country{Name: "Norway"})
	is.NoErr(err)
	is.Equal(created.Name, "Norway")
	is.Equal(countries.ObjectType().ID, countryType)

	o, err := op.GetByName(ctx, countryType, "Norway")
	is.NoErr(err)

	found, err := countries.GetByID(ctx, o.ID)
	is.NoErr(err)
	is.Equal(found.Name, "Norway")

	missing, err := countries.GetByID(ctx, 999)
	is.NoErr(err)
	is.True(missing == nil)
}

func TestLookupOption(t *testing.T) {
	is, op := setupMapperTest(t)
	ctx := context.Background()

	ot := companySchema()[1]
	m, err := mapper.NewNameMapping(ot, mapper.ReferenceHooks{}, countryName)
	is.NoErr(err)

	lookups := 0
	countries := mapper.NewRepository(op, ot, m, func(c Country) string { return c.Name },
		mapper.WithLookup(func(ctx context.Context, c Country) (*objects.Object, error) {
			lookups++
			return nil, nil
		}),
	)

	_, err = countries.Update(ctx, Country{Name: "Finland"})
	is.NoErr(err)
	is.Equal(lookups, 1)
}

var companyName = mapper.FieldOf("Name",
	func(c Company) string { return c.Name },
	func(c *Company, v string) { c.Name = v },
)

var companyEmployees = mapper.FieldOf("employees",
	func(c Company) int { return c.Employees },
	func(c *Company, v int) { c.Employees = v },
)

var companyCountry = mapper.ReferenceField("Country",
	func(c Company) *Country { return c.Country },
	func(c *Company, v *Country) { c.Country = v },
)

var countryName = mapper.FieldOf("Name",
	func(c Country) string { return c.Name },
	func(c *Country, v string) { c.Name = v },
)

const (
	companyType types.ObjectTypeID = 7
	countryType types.ObjectTypeID = 8

	countryAttr     types.AttributeID = 4
	countryNameAttr types.AttributeID = 10
)

func newRepositories(is *is.I, op *operator.Operator) (*mapper.Repository[Company], *mapper.Repository[Country]) {
	countryObjectType, err := op.Cache().ObjectType(countryType)
	is.NoErr(err)

	cm, err := mapper.NewNameMapping(countryObjectType, mapper.ReferenceHooks{}, countryName)
	is.NoErr(err)

	countries := mapper.NewRepository(op, countryObjectType, cm, func(c Country) string { return c.Name })

	hooks := mapper.ReferenceHooks{
		ToValue: func(ctx context.Context, a attributes.Reference) (any, error) {
			ids := a.IDs()
			if len(ids) == 0 {
				return nil, nil
			}
			return countries.GetByID(ctx, ids[0])
		},
		ToObjectIDs: func(ctx context.Context, s schema.Reference, value any) ([]types.ObjectID, error) {
			c, _ := value.(*Country)
			if c == nil {
				return []types.ObjectID{}, nil
			}

			o, err := op.GetByName(ctx, s.ReferenceObjectTypeID, c.Name)
			if err != nil {
				return nil, err
			}
			if o == nil {
				return nil, insighterrors.NewNotFoundError("country " + c.Name + " could not be found")
			}

			return []types.ObjectID{o.ID}, nil
		},
	}

	companyObjectType, err := op.Cache().ObjectType(companyType)
	is.NoErr(err)

	fields := []mapper.Field[Company]{
		companyName,
		mapper.FieldOf("Tier", func(c Company) []string { return c.Tier }, func(c *Company, v []string) { c.Tier = v }),
		companyEmployees,
		mapper.FieldOf("Founded", func(c Company) time.Time { return c.Founded }, func(c *Company, v time.Time) { c.Founded = v }),
		companyCountry,
	}

	m, err := mapper.NewNameMapping(companyObjectType, hooks, fields...)
	is.NoErr(err)

	return mapper.NewRepository(op, companyObjectType, m, func(c Company) string { return c.Name }), countries
}

func setupMapperTest(t *testing.T) (*is.I, *operator.Operator) {
	is := is.New(t)

	transport := test.NewInMemoryTransport(companySchema())

	cache, err := schemacache.New(context.Background(), transport)
	is.NoErr(err)

	return is, operator.New(transport, cache)
}

func companySchema() []schema.ObjectType {
	return []schema.ObjectType{
		{
			ID:   companyType,
			Name: "Company",
			Attributes: []schema.Attribute{
				schema.New(types.KindText, 1, "Name", schema.Cardinality(1, 1)),
				schema.NewSelect(2, "Tier", []string{"Gold", "Silver"}, schema.Cardinality(0, -1)),
				schema.New(types.KindInteger, 3, "Employees"),
				schema.NewReference(countryAttr, "Country", countryType, types.ReferenceKindReference),
				schema.New(types.KindDate, 5, "Founded"),
			},
		},
		{
			ID:   countryType,
			Name: "Country",
			Attributes: []schema.Attribute{
				schema.New(types.KindText, countryNameAttr, "Name", schema.Cardinality(1, 1)),
			},
		},
	}
}
