package iso639

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"sync"

	"github.com/heartmarshall/iso639/internal/dataset"
	"github.com/heartmarshall/iso639/internal/index"
)

// Registry is an immutable dataset together with its lookup indices.
type Registry struct {
	idx *index.Index
}

// Observer is notified of every resolution outcome of a registry.
type Observer = index.Observer

// Option configures a Registry.
type Option = index.Option

// WithLogger sets the logger that reports index statistics.
func WithLogger(logger *slog.Logger) Option { return index.WithLogger(logger) }

// WithObserver registers a resolution observer, e.g. a metrics collector.
func WithObserver(obs Observer) Option { return index.WithObserver(obs) }

// NewRegistry builds the indices for a validated dataset. The registry keeps
// references into ds, which must not be modified afterwards.
func NewRegistry(ds *dataset.Dataset, opts ...Option) *Registry {
	return &Registry{idx: index.Build(ds, opts...)}
}

// Load decodes a JSON dataset from r, validates it and builds a registry.
func Load(r io.Reader, opts ...Option) (*Registry, error) {
	ds, err := dataset.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("iso639: %w", err)
	}
	return NewRegistry(ds, opts...), nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	ds, err := dataset.Embedded()
	if err != nil {
		panic(fmt.Sprintf("iso639: %v", err))
	}
	return NewRegistry(ds)
})

// Default returns the process-wide registry built from the embedded dataset.
// It is built on first use.
func Default() *Registry { return defaultRegistry() }

// Version returns the version of the registry's dataset.
func (r *Registry) Version() string { return r.idx.Version() }

// Len returns the number of records.
func (r *Registry) Len() int { return r.idx.Len() }

// New returns the language denoted by value.
func (r *Registry) New(value string) (Lang, error) {
	key, err := r.idx.Resolve(value)
	if err != nil {
		return Lang{}, err
	}
	return Lang{reg: r, key: key}, nil
}

// MustNew is like New but panics if value does not resolve.
func (r *Registry) MustNew(value string) Lang {
	lg, err := r.New(value)
	if err != nil {
		panic(err)
	}
	return lg
}

// IsLanguage reports whether value resolves within the given fields, or
// within all fields when none is given. Withdrawn values are not languages.
func (r *Registry) IsLanguage(value string, fields ...Field) bool {
	_, _, ok := r.idx.Match(value, fields...)
	return ok
}

// Deprecation returns the withdrawal record for a withdrawn code or former name.
func (r *Registry) Deprecation(value string) (Deprecation, bool) {
	return r.idx.Deprecation(value)
}

// Langs yields one Lang per record, ordered by reference name.
// Every call starts over from the first record.
func (r *Registry) Langs() iter.Seq[Lang] {
	return func(yield func(Lang) bool) {
		for key := range r.idx.Keys() {
			if !yield(Lang{reg: r, key: key}) {
				return
			}
		}
	}
}

// New returns the language denoted by value in the default registry.
func New(value string) (Lang, error) { return Default().New(value) }

// MustNew is like New but panics if value does not resolve.
func MustNew(value string) Lang { return Default().MustNew(value) }

// IsLanguage reports whether value resolves in the default registry,
// restricted to fields when any are given.
func IsLanguage(value string, fields ...Field) bool {
	return Default().IsLanguage(value, fields...)
}

// Langs yields every language of the default registry ordered by name.
func Langs() iter.Seq[Lang] { return Default().Langs() }
