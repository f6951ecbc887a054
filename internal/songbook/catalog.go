package songbook

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// Catalog is the full set of entries in source-document order. It is built
// exactly once at startup and read-only afterward, so any number of handlers
// may scan it concurrently without locks.
type Catalog []Entry

// Load parses a JSON array of catalog records from r. Every record must carry
// a non-empty title, a positive volume, and a valid inclusive page range; the
// first violation aborts the load with a *LoadError. Source order is
// preserved, and an empty document is rejected so the service never starts
// with nothing to serve.
func Load(r io.Reader) (Catalog, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &LoadError{Record: -1, Err: err}
	}
	if len(raw) == 0 {
		return nil, &LoadError{Record: -1, Err: errors.New("document contains no entries")}
	}

	catalog := make(Catalog, len(raw))
	for i, rec := range raw {
		var entry Entry
		if err := json.Unmarshal(rec, &entry); err != nil {
			return nil, &LoadError{Record: i, Err: err}
		}
		if err := entry.validate(); err != nil {
			return nil, &LoadError{Record: i, Err: err}
		}
		catalog[i] = entry
	}
	return catalog, nil
}

// LoadFile loads a catalog from the JSON document at path.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Record: -1, Err: err}
	}
	defer f.Close()
	return Load(f)
}
