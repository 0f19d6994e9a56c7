package index

import "github.com/heartmarshall/iso639/internal/domain"

// tiers lists the resolution order. The first tier holding an exact match
// wins; the order is also the tie-break for values shared across tiers.
var tiers = [][]domain.Field{
	{domain.FieldPT1},
	{domain.FieldPT2B, domain.FieldPT2T},
	{domain.FieldPT3},
	{domain.FieldPT5},
	{domain.FieldName},
	{domain.FieldOtherNames},
}

// Resolve returns the key of the record denoted by value.
// Matching is exact and case-sensitive. When nothing matches, Resolve returns
// a *domain.DeprecatedLanguageValueError if value is a withdrawn identifier
// or former name, and a *domain.InvalidLanguageValueError otherwise.
func (idx *Index) Resolve(value string) (string, error) {
	if key, field, ok := idx.lookup(value, nil); ok {
		idx.observer.Resolved(field)
		return key, nil
	}

	if dep, ok := idx.deprecated[value]; ok {
		idx.observer.Deprecated()
		return "", &domain.DeprecatedLanguageValueError{Value: value, Deprecation: *dep}
	}

	idx.observer.Invalid()
	return "", &domain.InvalidLanguageValueError{Value: value}
}

// Match runs the resolution tiers restricted to fields and reports the key
// and the field that matched. With no fields, every tier is consulted.
// Match never consults the deprecation map.
func (idx *Index) Match(value string, fields ...domain.Field) (string, domain.Field, bool) {
	var allowed map[domain.Field]bool
	if len(fields) > 0 {
		allowed = make(map[domain.Field]bool, len(fields))
		for _, f := range fields {
			allowed[f] = true
		}
	}
	return idx.lookup(value, allowed)
}

// Deprecation returns the withdrawal record for value, matched by withdrawn
// identifier or former reference name.
func (idx *Index) Deprecation(value string) (domain.Deprecation, bool) {
	dep, ok := idx.deprecated[value]
	if !ok {
		return domain.Deprecation{}, false
	}
	return *dep, true
}

func (idx *Index) lookup(value string, allowed map[domain.Field]bool) (string, domain.Field, bool) {
	if value == "" {
		return "", "", false
	}
	for _, tier := range tiers {
		for _, f := range tier {
			if allowed != nil && !allowed[f] {
				continue
			}
			if key, ok := idx.field(f)[value]; ok {
				return key, f, true
			}
		}
	}
	return "", "", false
}

func (idx *Index) field(f domain.Field) map[string]string {
	if f == domain.FieldOtherNames {
		return idx.otherNames
	}
	return idx.fields[f]
}
