package iql

import (
	"fmt"
	"strings"

	"github.com/diwise/insight-client/pkg/insight/types"
)

// QueryDecoratorFunc appends one or more terms to a query. Terms are joined with AND.
type QueryDecoratorFunc func([]string) []string

// Build joins the terms produced by the decorators. Queries are opaque text,
// the conjunction is plain string concatenation.
func Build(decorators ...QueryDecoratorFunc) string {
	terms := make([]string, 0, len(decorators))
	for _, decorate := range decorators {
		terms = decorate(terms)
	}
	return strings.Join(terms, " AND ")
}

func ObjectID(id types.ObjectID) QueryDecoratorFunc {
	return func(terms []string) []string {
		return append(terms, fmt.Sprintf("objectId=%d", id))
	}
}

func Key(key string) QueryDecoratorFunc {
	return func(terms []string) []string {
		return append(terms, fmt.Sprintf("Key=%s", quote(key)))
	}
}

func Name(name string) QueryDecoratorFunc {
	return func(terms []string) []string {
		return append(terms, fmt.Sprintf("Name=%s", quote(name)))
	}
}

func ObjectTypeID(id types.ObjectTypeID) QueryDecoratorFunc {
	return func(terms []string) []string {
		return append(terms, fmt.Sprintf("objectTypeId=%d", id))
	}
}

// ObjectTypeIn restricts a query to a set of object types, e.g. a type and all of its children
func ObjectTypeIn(ids []types.ObjectTypeID) QueryDecoratorFunc {
	if len(ids) == 1 {
		return ObjectTypeID(ids[0])
	}

	return func(terms []string) []string {
		if len(ids) == 0 {
			return terms
		}

		values := make([]string, 0, len(ids))
		for _, id := range ids {
			values = append(values, id.String())
		}
		return append(terms, fmt.Sprintf("objectTypeId IN (%s)", strings.Join(values, ",")))
	}
}

// Raw appends a caller supplied filter. Empty filters are ignored.
func Raw(query string) QueryDecoratorFunc {
	query = strings.TrimSpace(query)

	return func(terms []string) []string {
		if query == "" {
			return terms
		}
		return append(terms, query)
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
