// Package dataset loads the versioned ISO 639 dataset: the canonical
// language records, the table of withdrawn identifiers and the
// macrolanguage mapping. A Dataset is read-only once loaded.
package dataset

import (
	"fmt"
	"sort"

	"github.com/heartmarshall/iso639/internal/domain"
)

// Dataset is the canonical, pre-built ISO 639 dataset.
type Dataset struct {
	Version    string               `json:"version"`
	Languages  []domain.Language    `json:"languages"`
	Deprecated []domain.Deprecation `json:"deprecated"`
	// Macrolanguages maps a macrolanguage key to the keys of its individual languages.
	Macrolanguages map[string][]string `json:"macrolanguages"`
}

// Validate checks the structural invariants of the dataset and sorts the
// records by key so that every later traversal is deterministic.
// All violations are reported together in a *domain.ValidationError.
func (d *Dataset) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if len(d.Languages) == 0 {
		add("languages", "at least one record required")
	}

	keys := make(map[string]int, len(d.Languages))
	seen := make(map[domain.Field]map[string]string, len(domain.ProjectedFields))
	for _, f := range domain.ProjectedFields {
		seen[f] = make(map[string]string, len(d.Languages))
	}

	for i := range d.Languages {
		l := &d.Languages[i]
		at := fmt.Sprintf("languages[%d]", i)

		if l.Name == "" {
			add(at+".name", "required")
		}
		if !l.HasIdentifier() {
			add(at, "record %q has no identifier", l.Name)
			continue
		}
		if !l.Scope.IsValid() {
			add(at+".scope", "unknown scope %q", l.Scope)
		}
		if l.Type != "" && !l.Type.IsValid() {
			add(at+".type", "unknown type %q", l.Type)
		}
		if l.PT3 != "" && l.Type == "" {
			add(at+".type", "required for ISO 639-3 record %q", l.PT3)
		}

		key := l.Key()
		if j, dup := keys[key]; dup {
			add(at, "duplicate key %q (also languages[%d])", key, j)
		}
		keys[key] = i

		for _, f := range domain.ProjectedFields {
			v := l.Value(f)
			if v == "" {
				continue
			}
			if owner, dup := seen[f][v]; dup && owner != key {
				add(at+"."+string(f), "value %q already used by %q", v, owner)
				continue
			}
			seen[f][v] = key
		}
	}

	parents := make(map[string]string)
	for macro, individuals := range d.Macrolanguages {
		at := "macrolanguages." + macro
		if _, ok := keys[macro]; !ok {
			add(at, "unknown macrolanguage key %q", macro)
		}
		for _, ind := range individuals {
			switch {
			case ind == macro:
				add(at, "macrolanguage %q lists itself", macro)
			case d.Macrolanguages[ind] != nil:
				add(at, "individual %q is itself a macrolanguage", ind)
			default:
				if _, ok := keys[ind]; !ok {
					add(at, "unknown individual key %q", ind)
				}
			}
			if prev, dup := parents[ind]; dup && prev != macro {
				add(at, "individual %q already belongs to %q", ind, prev)
			}
			parents[ind] = macro
		}
	}

	deprecated := make(map[string]bool, len(d.Deprecated))
	for i, dep := range d.Deprecated {
		at := fmt.Sprintf("deprecated[%d]", i)
		if dep.ID == "" {
			add(at+".id", "required")
		}
		if !dep.Field.IsIdentifier() {
			add(at+".field", "not an identifier field: %q", dep.Field)
		}
		if deprecated[dep.ID] {
			add(at+".id", "duplicate deprecated id %q", dep.ID)
		}
		deprecated[dep.ID] = true
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	sort.SliceStable(d.Languages, func(i, j int) bool {
		return d.Languages[i].Key() < d.Languages[j].Key()
	})
	sort.SliceStable(d.Deprecated, func(i, j int) bool {
		return d.Deprecated[i].ID < d.Deprecated[j].ID
	})

	return nil
}
