package attributes

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/matryer/is"
)

func TestRoundTripEveryKind(t *testing.T) {
	is := is.New(t)

	when := time.Date(2024, time.March, 1, 13, 45, 30, 500, time.FixedZone("CET", 3600))

	withSchema := func(a Attribute, s schema.Attribute) Attribute {
		bound, err := Bind(a, s)
		is.NoErr(err)
		return bound
	}

	values := []Attribute{
		NewText(1, "Acme"),
		NewText(1, ""),
		Text{base: base{AttributeID: 1}},
		NewInteger(2, -17),
		Integer{base: base{AttributeID: 2}},
		NewBool(3, true),
		Bool{base: base{AttributeID: 3}},
		NewFloat(4, 3.25),
		Float{base: base{AttributeID: 4}},
		NewDate(5, when),
		Date{base: base{AttributeID: 5}},
		NewTime(6, when),
		NewDateTime(7, when),
		DateTime{base: base{AttributeID: 7}},
		NewURL(8, "https://example.com", "https://example.org"),
		NewURL(8),
		NewEmail(9, "info@example.com"),
		NewTextarea(10, "line one\nline two"),
		NewIPAddress(11, "10.0.0.1"),
		NewSelect(12, "Gold", "Silver"),
		NewSelect(12),
		NewReference(13, ReferencedObject{ID: 5, Label: "Sweden", ObjectKey: "CMDB-5", ObjectType: &ReferencedObjectType{ID: 8, Name: "Country"}}),
		NewReference(13),
		NewUser(14, UserRef{DisplayName: "Jane Doe", Name: "jane", EmailAddress: "jane@example.com", Key: "JIRAUSER1"}),
		Empty(types.KindConfluence, 15),
		Empty(types.KindGroup, 16),
		Empty(types.KindVersion, 17),
		Empty(types.KindProject, 18),
		Empty(types.KindStatus, 19),
		Empty(types.KindUnknown, 20),
		withSchema(NewText(1, "Acme"), schema.New(types.KindText, 1, "Name", schema.Cardinality(1, 1))),
		withSchema(NewSelect(12, "Gold"), schema.NewSelect(12, "Tier", []string{"Gold", "Silver"})),
		withSchema(NewReferenceToIDs(13, 5), schema.NewReference(13, "Country", 8, types.ReferenceKindReference)),
	}

	for _, a := range values {
		b, err := json.Marshal(a)
		is.NoErr(err)

		decoded, err := Unmarshal(b)
		is.NoErr(err)
		is.Equal(decoded, a)
	}
}

func TestTemporalNormalization(t *testing.T) {
	is := is.New(t)

	when := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.FixedZone("CET", 3600))

	is.Equal(NewDate(1, when).String(), "2024-03-01")
	is.Equal(NewTime(1, when).String(), "23:30:00")
	is.Equal(NewDateTime(1, when).String(), "2024-03-01T22:30:00Z")
}

func TestUnknownDiscriminantDecodesToUnknown(t *testing.T) {
	is := is.New(t)

	a, err := Unmarshal([]byte(`{"type":"SomeFutureKind","attributeId":3,"values":[{"value":"x"}]}`))
	is.NoErr(err)

	_, ok := a.(Unknown)
	is.True(ok) // should decode to Unknown
	is.Equal(a.ID(), types.AttributeID(3))
}

func TestMissingDiscriminantUsesHint(t *testing.T) {
	is := is.New(t)

	value := "Acme"
	a, err := Decode(Wire{AttributeID: 1, Values: []RawValue{{Value: &value}}}, types.KindText)
	is.NoErr(err)
	is.Equal(a, Attribute(NewText(1, "Acme")))
}

func TestParseFailureIsDecodeError(t *testing.T) {
	is := is.New(t)

	_, err := Unmarshal([]byte(`{"type":"Integer","attributeId":4,"values":[{"value":"four"}]}`))
	is.True(errors.Is(err, insighterrors.ErrDecode))

	var decodeErr *insighterrors.DecodeError
	is.True(errors.As(err, &decodeErr))
	is.Equal(decodeErr.AttributeID, types.AttributeID(4))
	is.Equal(decodeErr.Kind, types.KindInteger)
}

func TestSchemaConflictIsDecodeError(t *testing.T) {
	is := is.New(t)

	_, err := Unmarshal([]byte(`{"type":"Integer","attributeId":4,"values":[],"schema":{"type":"TextSchema","id":4,"name":"Count"}}`))
	is.True(errors.Is(err, insighterrors.ErrDecode))
}

func TestBlankValuesAreNull(t *testing.T) {
	is := is.New(t)

	blank := " "
	for _, kind := range []types.Kind{types.KindInteger, types.KindBool, types.KindFloat, types.KindDate, types.KindTime, types.KindDateTime} {
		a, err := FromValues(kind, 1, []RawValue{{Value: &blank}})
		is.NoErr(err)
		is.Equal(len(Values(a)), 0) // blank should decode to null
	}
}

func TestReferenceFromValues(t *testing.T) {
	is := is.New(t)

	id := "42"
	a, err := FromValues(types.KindReference, 3, []RawValue{
		{Value: &id},
		{ReferencedObject: &ReferencedObject{ID: 43, ObjectKey: "CMDB-43"}},
	})
	is.NoErr(err)

	ref := a.(Reference)
	is.Equal(ref.IDs(), []types.ObjectID{42, 43})
	is.Equal(ref.String(), ",CMDB-43")
}

func TestBind(t *testing.T) {
	is := is.New(t)

	_, err := Bind(NewText(1, "Acme"), schema.New(types.KindInteger, 1, "Name"))
	is.True(errors.Is(err, insighterrors.ErrInvalidArgument))

	_, err = Bind(NewText(1, "Acme"), schema.New(types.KindText, 2, "Name"))
	is.True(errors.Is(err, insighterrors.ErrInvalidArgument))

	a, err := Bind(NewText(1, "Acme"), schema.New(types.KindText, 1, "Name"))
	is.NoErr(err)
	is.Equal(a.Schema().Name(), "Name")

	a, err = Bind(a, nil)
	is.NoErr(err)
	is.True(a.Schema() == nil)
}

func TestEmptyListsAreNotNil(t *testing.T) {
	is := is.New(t)

	is.True(Empty(types.KindSelect, 1).(Select).Values != nil)
	is.True(Empty(types.KindURL, 1).(URL).Values != nil)
	is.True(Empty(types.KindReference, 1).(Reference).Objects != nil)
	is.True(Empty(types.KindUser, 1).(User).Users != nil)
}

func TestString(t *testing.T) {
	is := is.New(t)

	is.Equal(NewSelect(1, "Gold", "Silver").String(), "Gold,Silver")
	is.Equal(NewFloat(1, 0.5).String(), "0.5")
	is.Equal(NewBool(1, false).String(), "false")
	is.Equal(Empty(types.KindInteger, 1).String(), "")
	is.Equal(NewUser(1, UserRef{Key: "a"}, UserRef{Key: "b"}).String(), "a,b")
}
