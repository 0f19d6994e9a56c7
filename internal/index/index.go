// Package index derives the reverse lookup structures of the ISO 639
// dataset and resolves arbitrary strings to record keys.
//
// An Index is built once from a validated dataset and is read-only
// afterwards, so it can be shared by any number of goroutines.
package index

import (
	"cmp"
	"iter"
	"log/slog"
	"slices"

	"github.com/heartmarshall/iso639/internal/dataset"
	"github.com/heartmarshall/iso639/internal/domain"
)

// Index holds one mapping per identifier field and per name variant,
// the deprecation map and the macrolanguage relations.
type Index struct {
	version    string
	records    map[string]*domain.Language
	order      []string
	fields     map[domain.Field]map[string]string
	otherNames map[string]string
	deprecated map[string]*domain.Deprecation
	relations  *Relations
	observer   Observer
	stats      Stats
}

// Stats summarizes what Build derived from the dataset.
type Stats struct {
	Records             int
	OtherNames          int
	OtherNameCollisions int
	Deprecations        int
	MacroEdges          int
}

// Option configures Build.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
}

// WithLogger sets the logger used to report build statistics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithObserver registers an observer notified of every resolution outcome.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// Build derives every reverse mapping from ds. The dataset must already be
// validated; Build does not re-check its invariants.
func Build(ds *dataset.Dataset, opts ...Option) *Index {
	o := options{logger: slog.Default(), observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		version:    ds.Version,
		records:    make(map[string]*domain.Language, len(ds.Languages)),
		order:      make([]string, 0, len(ds.Languages)),
		fields:     make(map[domain.Field]map[string]string, len(domain.ProjectedFields)),
		otherNames: make(map[string]string),
		deprecated: make(map[string]*domain.Deprecation, 2*len(ds.Deprecated)),
		observer:   o.observer,
	}
	for _, f := range domain.ProjectedFields {
		idx.fields[f] = make(map[string]string, len(ds.Languages))
	}

	for i := range ds.Languages {
		l := &ds.Languages[i]
		key := l.Key()
		idx.records[key] = l
		idx.order = append(idx.order, key)

		for _, f := range domain.ProjectedFields {
			v := l.Value(f)
			if v == "" {
				continue
			}
			if _, taken := idx.fields[f][v]; !taken {
				idx.fields[f][v] = key
			}
		}
	}

	// Records are visited in key order, so the first owner of a shared
	// value is deterministic.
	for _, key := range idx.order {
		l := idx.records[key]
		for _, name := range l.OtherNames {
			if name == "" || name == l.Name {
				continue
			}
			if owner, taken := idx.otherNames[name]; taken {
				if owner != key {
					idx.stats.OtherNameCollisions++
				}
				continue
			}
			idx.otherNames[name] = key
		}
	}

	for i := range ds.Deprecated {
		dep := &ds.Deprecated[i]
		if _, ok := idx.deprecated[dep.ID]; !ok {
			idx.deprecated[dep.ID] = dep
		}
	}
	for i := range ds.Deprecated {
		dep := &ds.Deprecated[i]
		if _, ok := idx.deprecated[dep.Name]; !ok && dep.Name != "" {
			idx.deprecated[dep.Name] = dep
		}
	}

	slices.SortFunc(idx.order, func(a, b string) int {
		return compareRecords(idx.records[a], idx.records[b])
	})

	idx.relations = newRelations(ds.Macrolanguages, idx.records)

	idx.stats.Records = len(idx.records)
	idx.stats.OtherNames = len(idx.otherNames)
	idx.stats.Deprecations = len(ds.Deprecated)
	idx.stats.MacroEdges = len(idx.relations.macro)

	o.logger.Debug("iso639 index built",
		slog.String("version", idx.version),
		slog.Int("records", idx.stats.Records),
		slog.Int("other_names", idx.stats.OtherNames),
		slog.Int("other_name_collisions", idx.stats.OtherNameCollisions),
		slog.Int("deprecations", idx.stats.Deprecations),
		slog.Int("macro_edges", idx.stats.MacroEdges),
	)

	return idx
}

// Version returns the version string of the dataset the index was built from.
func (idx *Index) Version() string { return idx.version }

// Stats returns the build statistics.
func (idx *Index) Stats() Stats { return idx.stats }

// Len returns the number of records.
func (idx *Index) Len() int { return len(idx.records) }

// Record returns the record stored under key. The returned value is shared
// and must not be modified.
func (idx *Index) Record(key string) (*domain.Language, bool) {
	l, ok := idx.records[key]
	return l, ok
}

// Relations returns the macrolanguage relation index.
func (idx *Index) Relations() *Relations { return idx.relations }

// Keys yields every record key ordered by reference name, then key.
// Each call starts a fresh traversal.
func (idx *Index) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range idx.order {
			if !yield(key) {
				return
			}
		}
	}
}

// CompareKeys orders two record keys by reference name, then by key.
// Unknown keys sort before known ones.
func (idx *Index) CompareKeys(a, b string) int {
	la, okA := idx.records[a]
	lb, okB := idx.records[b]
	if okA && okB {
		return compareRecords(la, lb)
	}
	if okA != okB {
		if okA {
			return 1
		}
		return -1
	}
	return cmp.Compare(a, b)
}

func compareRecords(a, b *domain.Language) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Key(), b.Key())
}
