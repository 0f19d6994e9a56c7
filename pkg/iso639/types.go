package iso639

import "github.com/heartmarshall/iso639/internal/domain"

// Type classifies a language's vitality or status.
type Type = domain.Type

const (
	TypeLiving      = domain.TypeLiving
	TypeExtinct     = domain.TypeExtinct
	TypeAncient     = domain.TypeAncient
	TypeHistorical  = domain.TypeHistorical
	TypeConstructed = domain.TypeConstructed
	TypeSpecial     = domain.TypeSpecial
)

// Scope classifies what a record denotes.
type Scope = domain.Scope

const (
	ScopeIndividual    = domain.ScopeIndividual
	ScopeMacrolanguage = domain.ScopeMacrolanguage
	ScopeSpecial       = domain.ScopeSpecial
	ScopeDialect       = domain.ScopeDialect
	ScopeGroup         = domain.ScopeGroup
)

// Field names one representation of a record.
type Field = domain.Field

const (
	FieldName       = domain.FieldName
	FieldPT1        = domain.FieldPT1
	FieldPT2B       = domain.FieldPT2B
	FieldPT2T       = domain.FieldPT2T
	FieldPT3        = domain.FieldPT3
	FieldPT5        = domain.FieldPT5
	FieldOtherNames = domain.FieldOtherNames
)

// ParseField maps a field name such as "pt3" to a Field.
func ParseField(s string) (Field, bool) {
	f := Field(s)
	return f, f.IsValid()
}

type (
	// InvalidLanguageValueError reports a value that denotes no record.
	InvalidLanguageValueError = domain.InvalidLanguageValueError
	// DeprecatedLanguageValueError reports a withdrawn code or former name,
	// with its replacement when there is one.
	DeprecatedLanguageValueError = domain.DeprecatedLanguageValueError
	// Deprecation describes a withdrawn identifier.
	Deprecation = domain.Deprecation
)

var (
	ErrInvalidLanguageValue    = domain.ErrInvalidLanguageValue
	ErrDeprecatedLanguageValue = domain.ErrDeprecatedLanguageValue
)
