package songbook

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog is returned by Random when the catalog holds no entries.
// Load rejects empty documents, so seeing this means the caller constructed a
// Catalog by hand.
var ErrEmptyCatalog = errors.New("catalog has no entries")

// LoadError reports why a source document was rejected. Loading is
// all-or-nothing: one bad record fails the whole document.
type LoadError struct {
	// Record is the zero-based index of the offending record, or -1 when the
	// document itself is unreadable or empty.
	Record int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("load catalog: %v", e.Err)
	}
	return fmt.Sprintf("load catalog: record %d: %v", e.Record, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
