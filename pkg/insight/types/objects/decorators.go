package objects

import (
	"time"

	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
)

func A(attrs ...attributes.Attribute) DecoratorFunc {
	return func(o *Object) {
		for _, a := range attrs {
			o.SetAttribute(a)
		}
	}
}

func ObjectID(id types.ObjectID) DecoratorFunc {
	return func(o *Object) { o.ID = id }
}

func Key(key string) DecoratorFunc {
	return func(o *Object) { o.ObjectKey = key }
}

func Label(label string) DecoratorFunc {
	return func(o *Object) { o.Label = label }
}

func TypeName(name string) DecoratorFunc {
	return func(o *Object) { o.ObjectTypeName = name }
}

func Text(id types.AttributeID, value string) DecoratorFunc {
	return A(attributes.NewText(id, value))
}

func Integer(id types.AttributeID, value int64) DecoratorFunc {
	return A(attributes.NewInteger(id, value))
}

func Bool(id types.AttributeID, value bool) DecoratorFunc {
	return A(attributes.NewBool(id, value))
}

func Float(id types.AttributeID, value float64) DecoratorFunc {
	return A(attributes.NewFloat(id, value))
}

func DateTime(id types.AttributeID, value time.Time) DecoratorFunc {
	return A(attributes.NewDateTime(id, value))
}

func Select(id types.AttributeID, values ...string) DecoratorFunc {
	return A(attributes.NewSelect(id, values...))
}

// References points the attribute at the objects with the given ids
func References(id types.AttributeID, objectIDs ...types.ObjectID) DecoratorFunc {
	return A(attributes.NewReferenceToIDs(id, objectIDs...))
}
