package domain

// Type classifies a language's vitality or status as published in ISO 639-3.
type Type string

const (
	TypeLiving      Type = "Living"
	TypeExtinct     Type = "Extinct"
	TypeAncient     Type = "Ancient"
	TypeHistorical  Type = "Historical"
	TypeConstructed Type = "Constructed"
	TypeSpecial     Type = "Special"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case TypeLiving, TypeExtinct, TypeAncient, TypeHistorical, TypeConstructed, TypeSpecial:
		return true
	}
	return false
}

// Scope classifies what a record denotes: a single language, a macrolanguage,
// a special code, a dialect or a group of languages.
type Scope string

const (
	ScopeIndividual    Scope = "Individual"
	ScopeMacrolanguage Scope = "Macrolanguage"
	ScopeSpecial       Scope = "Special"
	ScopeDialect       Scope = "Dialect"
	ScopeGroup         Scope = "Group"
)

func (s Scope) String() string { return string(s) }

func (s Scope) IsValid() bool {
	switch s {
	case ScopeIndividual, ScopeMacrolanguage, ScopeSpecial, ScopeDialect, ScopeGroup:
		return true
	}
	return false
}

// Field names one string representation of a language record.
// The values mirror the attribute names used by the standards tables.
type Field string

const (
	FieldName       Field = "name"
	FieldPT1        Field = "pt1"
	FieldPT2B       Field = "pt2b"
	FieldPT2T       Field = "pt2t"
	FieldPT3        Field = "pt3"
	FieldPT5        Field = "pt5"
	FieldOtherNames Field = "other_names"
)

func (f Field) String() string { return string(f) }

func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldPT1, FieldPT2B, FieldPT2T, FieldPT3, FieldPT5, FieldOtherNames:
		return true
	}
	return false
}

// IsIdentifier reports whether f is one of the five coded identifier fields.
func (f Field) IsIdentifier() bool {
	switch f {
	case FieldPT1, FieldPT2B, FieldPT2T, FieldPT3, FieldPT5:
		return true
	}
	return false
}

// ProjectedFields lists the fields of the key-value projection of a record,
// in display order.
var ProjectedFields = []Field{FieldName, FieldPT1, FieldPT2B, FieldPT2T, FieldPT3, FieldPT5}
