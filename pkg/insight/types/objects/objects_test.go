package objects

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/matryer/is"
)

func TestNewObjectIsNotPersisted(t *testing.T) {
	is := is.New(t)

	o := New(7, Text(1, "Acme"), Integer(2, 12), Label("Acme"))

	is.True(!o.IsPersisted())
	is.Equal(o.ID, types.NotPersistedObjectID)
	is.Equal(len(o.Attributes()), 2)
	is.Equal(o.Label, "Acme")
}

func TestSetAttributeReplacesByID(t *testing.T) {
	is := is.New(t)

	o := New(7, Text(1, "Acme"))
	o.SetAttribute(attributes.NewText(1, "Acme Inc"))

	is.Equal(len(o.Attributes()), 1)
	name, ok := o.StringValue(1)
	is.True(ok)
	is.Equal(name, "Acme Inc")

	is.True(o.RemoveAttribute(1))
	is.True(!o.RemoveAttribute(1))
	is.Equal(len(o.Attributes()), 0)
}

func TestForEachAttributeVisitsInOrder(t *testing.T) {
	is := is.New(t)

	o := New(7, Text(1, "Acme"), Integer(2, 12), Select(3, "Gold"))

	ids := []types.AttributeID{}
	o.ForEachAttribute(func(a attributes.Attribute) {
		ids = append(ids, a.ID())
	})

	is.Equal(ids, []types.AttributeID{1, 2, 3})
}

func TestTypedGetters(t *testing.T) {
	is := is.New(t)

	when := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	o := New(7, Integer(2, 12), Bool(3, true), Float(4, 1.5), DateTime(5, when), Select(6, "Gold"))

	i, ok := o.IntegerValue(2)
	is.True(ok)
	is.Equal(i, int64(12))

	b, ok := o.BoolValue(3)
	is.True(ok && b)

	f, ok := o.FloatValue(4)
	is.True(ok)
	is.Equal(f, 1.5)

	ts, ok := o.TimeValue(5)
	is.True(ok)
	is.Equal(ts, when)

	is.Equal(o.SelectValues(6), []string{"Gold"})

	_, ok = o.IntegerValue(3)
	is.True(!ok) // attribute 3 is not an integer

	_, ok = o.StringValue(99)
	is.True(!ok)
}

func TestSelectHelpers(t *testing.T) {
	is := is.New(t)

	o := New(7, Text(1, "Acme"))

	is.NoErr(o.AddSelectValue(6, "Gold"))
	is.NoErr(o.AddSelectValue(6, "Silver"))
	is.NoErr(o.AddSelectValue(6, "Gold"))
	is.Equal(o.SelectValues(6), []string{"Gold", "Silver"})

	is.NoErr(o.RemoveSelectValue(6, "Gold"))
	is.Equal(o.SelectValues(6), []string{"Silver"})

	is.NoErr(o.ClearSelect(6))
	is.Equal(o.SelectValues(6), []string{})

	err := o.AddSelectValue(1, "Gold")
	is.True(errors.Is(err, insighterrors.ErrInvalidArgument)) // attribute 1 is text
}

func TestReferenceHelpers(t *testing.T) {
	is := is.New(t)

	o := New(7, References(3, 10))

	is.NoErr(o.AddReference(3, attributes.ReferencedObject{ID: 11, ObjectKey: "CMDB-11"}))
	is.NoErr(o.AddReference(3, attributes.ReferencedObject{ID: 10}))
	is.Equal(len(o.MultiReference(3)), 2)

	first, ok := o.SingleReference(3)
	is.True(ok)
	is.Equal(first.ID, types.ObjectID(10))

	is.NoErr(o.RemoveReference(3, 10))
	is.Equal(o.References(3)[0].ObjectKey, "CMDB-11")

	is.NoErr(o.SetSingleReference(3, attributes.ReferencedObject{ID: 12}))
	is.Equal(len(o.References(3)), 1)
	is.Equal(o.References(3)[0].ID, types.ObjectID(12))

	is.NoErr(o.ClearReferences(3))
	_, ok = o.SingleReference(3)
	is.True(!ok)

	o.SetAttribute(attributes.NewText(4, "not a reference"))
	is.True(errors.Is(o.AddReference(4, attributes.ReferencedObject{ID: 1}), insighterrors.ErrInvalidArgument))
}

func TestFromRawUsesObjectTypeSchema(t *testing.T) {
	is := is.New(t)

	ot := &schema.ObjectType{
		ID:   7,
		Name: "Company",
		Attributes: []schema.Attribute{
			schema.New(types.KindText, 1, "Name"),
			schema.NewSelect(2, "Tier", []string{"Gold", "Silver"}),
		},
	}

	raw := RawObject{}
	is.NoErr(json.Unmarshal([]byte(rawCompanyJSON), &raw))

	o, err := FromRaw(raw, ot)
	is.NoErr(err)

	is.Equal(o.ID, types.ObjectID(42))
	is.Equal(o.ObjectTypeName, "Company")
	is.Equal(o.Self, "https://jira.example.com/secure/insight/assets/CMDB-42")
	is.True(o.AttachmentsExist)

	tier, ok := o.AttributeByName("tier")
	is.True(ok)
	is.Equal(tier.Kind(), types.KindSelect)
	is.Equal(tier.Kind(), tier.Schema().Kind())
	is.Equal(o.SelectValues(2), []string{"Gold", "Silver"})

	country, ok := o.Attribute(3)
	is.True(ok)
	is.Equal(country.Kind(), types.KindReference) // schema embedded in the raw attribute
	is.Equal(o.References(3)[0].ObjectKey, "CMDB-5")

	unknown, ok := o.Attribute(4)
	is.True(ok)
	is.Equal(unknown.Kind(), types.KindUnknown) // no schema available
}

func TestFromRawReportsDecodeErrors(t *testing.T) {
	is := is.New(t)

	ot := &schema.ObjectType{
		ID:         7,
		Attributes: []schema.Attribute{schema.New(types.KindInteger, 1, "Employees")},
	}

	value := "many"
	raw := RawObject{
		ID:         42,
		ObjectType: RawObjectTypeRef{ID: 7},
		Attributes: []RawAttribute{{ObjectTypeAttributeID: 1, ObjectAttributeValues: []attributes.RawValue{{Value: &value}}}},
	}

	_, err := FromRaw(raw, ot)
	is.True(errors.Is(err, insighterrors.ErrDecode))
}

func TestToRaw(t *testing.T) {
	is := is.New(t)

	o := New(7, ObjectID(42), Key("CMDB-42"), Text(1, "Acme"), Select(2, "Gold", "Silver"), References(3, 5))
	raw := ToRaw(o)

	is.Equal(raw.ID, types.ObjectID(42))
	is.Equal(raw.ObjectType.ID, types.ObjectTypeID(7))
	is.Equal(len(raw.Attributes), 3)
	is.Equal(len(raw.Attributes[1].ObjectAttributeValues), 2)
	is.Equal(*raw.Attributes[2].ObjectAttributeValues[0].Value, "5")
}

func TestObjectJSON(t *testing.T) {
	is := is.New(t)

	o := New(7, ObjectID(42), Key("CMDB-42"), Label("Acme"), TypeName("Company"), Text(1, "Acme"), Select(2, "Gold"))

	b, err := json.Marshal(o)
	is.NoErr(err)

	decoded, err := NewFromJSON(b)
	is.NoErr(err)
	is.Equal(decoded, o)
}

const rawCompanyJSON string = `{
	"id": 42,
	"label": "Acme",
	"objectKey": "CMDB-42",
	"objectType": {"id": 7},
	"extendedInfo": {"attachmentsExists": true},
	"_links": {"self": "https://jira.example.com/secure/insight/assets/CMDB-42"},
	"attributes": [
		{"objectTypeAttributeId": 1, "objectAttributeValues": [{"value": "Acme"}]},
		{"objectTypeAttributeId": 2, "objectAttributeValues": [{"value": "Gold"}, {"value": "Silver"}]},
		{
			"objectTypeAttributeId": 3,
			"objectTypeAttribute": {"id": 3, "name": "Country", "type": 1, "referenceObjectTypeId": 8},
			"objectAttributeValues": [{"referencedObject": {"id": 5, "label": "Sweden", "objectKey": "CMDB-5"}}]
		},
		{"objectTypeAttributeId": 4, "objectAttributeValues": [{"value": "?"}]}
	]
}`
