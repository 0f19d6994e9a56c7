package iso639

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/iso639/internal/domain"
)

// Lang is a handle on one ISO 639 record.
//
// Lang is a small value: assigning it copies the handle. Within one
// registry two handles are == when they denote the same record, so a Lang
// works as a map key there. Handles from different registries are never ==;
// compare them with Equal and key maps by Key instead.
//
// Setting any field re-resolves the given value and, on success, makes the
// handle denote the resolved record as a whole; on failure the handle is
// left untouched.
type Lang struct {
	reg *Registry
	key string
}

var emptyLanguage = &domain.Language{}

func (l Lang) record() *domain.Language {
	if l.reg == nil {
		return emptyLanguage
	}
	if rec, ok := l.reg.idx.Record(l.key); ok {
		return rec
	}
	return emptyLanguage
}

func (l Lang) registry() *Registry {
	if l.reg == nil {
		return Default()
	}
	return l.reg
}

// IsZero reports whether l denotes no record.
func (l Lang) IsZero() bool { return l.key == "" }

// Key returns the stable identifier of the record, suitable for hashing.
func (l Lang) Key() string { return l.key }

// Name returns the reference name.
func (l Lang) Name() string { return l.record().Name }

// PT1 returns the two-letter ISO 639-1 code, if any.
func (l Lang) PT1() string { return l.record().PT1 }

// PT2B returns the ISO 639-2 bibliographic code, if any.
func (l Lang) PT2B() string { return l.record().PT2B }

// PT2T returns the ISO 639-2 terminological code, if any.
func (l Lang) PT2T() string { return l.record().PT2T }

// PT3 returns the ISO 639-3 code, if any.
func (l Lang) PT3() string { return l.record().PT3 }

// PT5 returns the ISO 639-5 code, if any.
func (l Lang) PT5() string { return l.record().PT5 }

// Get returns the value of a projected field.
func (l Lang) Get(f Field) string { return l.record().Value(f) }

// Type returns the record's vitality classification. Groups of languages
// carry no type and return "".
func (l Lang) Type() Type { return l.record().Type }

// Scope returns the record's scope.
func (l Lang) Scope() Scope { return l.record().Scope }

// OtherNames returns the alternate names of the record in dataset order.
func (l Lang) OtherNames() []string {
	names := l.record().OtherNames
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Set makes l denote the record that value resolves to. The field only
// documents the caller's intent: resolution runs over every field.
func (l *Lang) Set(f Field, value string) error {
	if !f.IsValid() {
		return domain.NewValidationError("field", fmt.Sprintf("unknown field %q", f))
	}
	reg := l.registry()
	key, err := reg.idx.Resolve(value)
	if err != nil {
		return err
	}
	l.reg, l.key = reg, key
	return nil
}

// SetName makes l denote the record named value.
func (l *Lang) SetName(value string) error { return l.Set(FieldName, value) }

// SetPT1 makes l denote the record with ISO 639-1 code value.
func (l *Lang) SetPT1(value string) error { return l.Set(FieldPT1, value) }

// SetPT2B makes l denote the record with ISO 639-2/B code value.
func (l *Lang) SetPT2B(value string) error { return l.Set(FieldPT2B, value) }

// SetPT2T makes l denote the record with ISO 639-2/T code value.
func (l *Lang) SetPT2T(value string) error { return l.Set(FieldPT2T, value) }

// SetPT3 makes l denote the record with ISO 639-3 code value.
func (l *Lang) SetPT3(value string) error { return l.Set(FieldPT3, value) }

// SetPT5 makes l denote the record with ISO 639-5 code value.
func (l *Lang) SetPT5(value string) error { return l.Set(FieldPT5, value) }

// Equal reports whether l and o denote the same record, by key, even when
// they come from different registries.
func (l Lang) Equal(o Lang) bool { return l.key == o.key }

// Compare orders languages by reference name, then by key.
func (l Lang) Compare(o Lang) int {
	if l.reg != nil && l.reg == o.reg {
		return l.reg.idx.CompareKeys(l.key, o.key)
	}
	if c := cmp.Compare(l.Name(), o.Name()); c != 0 {
		return c
	}
	return cmp.Compare(l.key, o.key)
}

// Macro returns the macrolanguage l belongs to. The second result is false
// for records outside any macrolanguage.
func (l Lang) Macro() (Lang, bool) {
	if l.reg == nil {
		return Lang{}, false
	}
	key, ok := l.reg.idx.Relations().Macro(l.key)
	if !ok {
		return Lang{}, false
	}
	return Lang{reg: l.reg, key: key}, true
}

// Individuals returns the individual languages of macrolanguage l, ordered
// by reference name. It is empty for any other record.
func (l Lang) Individuals() []Lang {
	if l.reg == nil {
		return []Lang{}
	}
	keys := l.reg.idx.Relations().Individuals(l.key)
	out := make([]Lang, 0, len(keys))
	for _, key := range keys {
		out = append(out, Lang{reg: l.reg, key: key})
	}
	return out
}

// AsMap projects the record onto its name and codes, keyed by field name.
func (l Lang) AsMap() map[string]string {
	rec := l.record()
	m := make(map[string]string, len(domain.ProjectedFields))
	for _, f := range domain.ProjectedFields {
		m[string(f)] = rec.Value(f)
	}
	return m
}

// String renders l as Lang(name='French', pt1='fr', ...).
func (l Lang) String() string {
	rec := l.record()
	var b strings.Builder
	b.WriteString("Lang(")
	for i, f := range domain.ProjectedFields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s='%s'", f, rec.Value(f))
	}
	b.WriteString(")")
	return b.String()
}

// MarshalJSON encodes the AsMap projection.
func (l Lang) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.AsMap())
}
