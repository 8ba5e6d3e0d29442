package types

import (
	"strconv"
)

type ObjectID int64
type ObjectTypeID int64
type SchemaID int64
type AttributeID int64

// NotPersistedObjectID is the id carried by objects that have not yet been written to the remote store
const NotPersistedObjectID ObjectID = -1

func (id ObjectID) IsPersisted() bool {
	return id > 0
}

func (id ObjectID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ObjectTypeID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id SchemaID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id AttributeID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Kind is the discriminant shared by attribute values and attribute schemas
type Kind string

const (
	KindText       Kind = "Text"
	KindInteger    Kind = "Integer"
	KindBool       Kind = "Bool"
	KindFloat      Kind = "DoubleNumber"
	KindDate       Kind = "Date"
	KindTime       Kind = "Time"
	KindDateTime   Kind = "DateTime"
	KindURL        Kind = "Url"
	KindEmail      Kind = "Email"
	KindTextarea   Kind = "Textarea"
	KindIPAddress  Kind = "Ipaddress"
	KindSelect     Kind = "Select"
	KindReference  Kind = "Reference"
	KindUser       Kind = "User"
	KindConfluence Kind = "Confluence"
	KindGroup      Kind = "Group"
	KindVersion    Kind = "Version"
	KindProject    Kind = "Project"
	KindStatus     Kind = "Status"
	KindUnknown    Kind = "Unknown"
)

var kinds = []Kind{
	KindText, KindInteger, KindBool, KindFloat, KindDate, KindTime, KindDateTime,
	KindURL, KindEmail, KindTextarea, KindIPAddress, KindSelect,
	KindReference, KindUser, KindConfluence, KindGroup, KindVersion, KindProject, KindStatus,
	KindUnknown,
}

// Kinds returns every known kind, Unknown last
func Kinds() []Kind {
	k := make([]Kind, len(kinds))
	copy(k, kinds)
	return k
}

// ParseKind maps a discriminant to a Kind. Unrecognized names map to KindUnknown.
func ParseKind(name string) (Kind, bool) {
	for _, k := range kinds {
		if string(k) == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// IsValue reports whether the kind is one of the default (value carrying) kinds
func (k Kind) IsValue() bool {
	switch k {
	case KindText, KindInteger, KindBool, KindFloat, KindDate, KindTime, KindDateTime,
		KindURL, KindEmail, KindTextarea, KindIPAddress, KindSelect:
		return true
	}
	return false
}

func (k Kind) IsReference() bool {
	return k == KindReference
}

// IsList reports whether values of this kind are stored as a list
func (k Kind) IsList() bool {
	switch k {
	case KindURL, KindSelect, KindReference, KindUser:
		return true
	}
	return false
}

type ReferenceKind int

const (
	ReferenceKindUnknown    ReferenceKind = -1
	ReferenceKindDependency ReferenceKind = 1
	ReferenceKindLink       ReferenceKind = 2
	ReferenceKindReference  ReferenceKind = 3
	ReferenceKindFinancial  ReferenceKind = 4
	ReferenceKindTechnical  ReferenceKind = 5
)

var referenceKindNames = map[ReferenceKind]string{
	ReferenceKindUnknown:    "UNKNOWN",
	ReferenceKindDependency: "DEPENDENCY",
	ReferenceKindLink:       "LINK",
	ReferenceKindReference:  "REFERENCE",
	ReferenceKindFinancial:  "FINANCIAL",
	ReferenceKindTechnical:  "TECHNICAL",
}

// ReferenceKindFromID maps the remote reference type id, falling back to ReferenceKindUnknown
func ReferenceKindFromID(id int) ReferenceKind {
	rk := ReferenceKind(id)
	if _, ok := referenceKindNames[rk]; ok {
		return rk
	}
	return ReferenceKindUnknown
}

func ParseReferenceKind(name string) ReferenceKind {
	for rk, n := range referenceKindNames {
		if n == name {
			return rk
		}
	}
	return ReferenceKindUnknown
}

func (rk ReferenceKind) String() string {
	if n, ok := referenceKindNames[rk]; ok {
		return n
	}
	return referenceKindNames[ReferenceKindUnknown]
}
