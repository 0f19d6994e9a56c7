package index

import "github.com/heartmarshall/iso639/internal/domain"

// Observer is notified of the outcome of every Resolve call.
// Implementations must be safe for concurrent use.
type Observer interface {
	Resolved(field domain.Field)
	Deprecated()
	Invalid()
}

type nopObserver struct{}

func (nopObserver) Resolved(domain.Field) {}
func (nopObserver) Deprecated()           {}
func (nopObserver) Invalid()              {}
