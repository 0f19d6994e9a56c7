package index

import (
	"slices"

	"github.com/heartmarshall/iso639/internal/domain"
)

// Relations is the two-level macrolanguage graph: each macrolanguage points
// to its individual languages and each individual language back to its
// macrolanguage.
type Relations struct {
	individuals map[string][]string
	macro       map[string]string
}

func newRelations(table map[string][]string, records map[string]*domain.Language) *Relations {
	r := &Relations{
		individuals: make(map[string][]string, len(table)),
		macro:       make(map[string]string),
	}

	for macro, members := range table {
		keys := slices.Clone(members)
		slices.SortFunc(keys, func(a, b string) int {
			return compareRecords(records[a], records[b])
		})
		keys = slices.Compact(keys)
		r.individuals[macro] = keys
		for _, ind := range keys {
			r.macro[ind] = macro
		}
	}

	return r
}

// Macro returns the key of the macrolanguage key belongs to.
func (r *Relations) Macro(key string) (string, bool) {
	m, ok := r.macro[key]
	return m, ok
}

// Individuals returns the keys of the individual languages of macrolanguage
// key, ordered by reference name. The result is a copy; it is empty when key
// is not a macrolanguage.
func (r *Relations) Individuals(key string) []string {
	return slices.Clone(r.individuals[key])
}

// IsMacrolanguage reports whether key has at least one individual language.
func (r *Relations) IsMacrolanguage(key string) bool {
	return len(r.individuals[key]) > 0
}
