package songbook

import (
	"math/rand"
	"sort"
)

// Query holds the optional search filters. A nil pointer means the filter is
// absent; an empty Text behaves the same as an absent one.
type Query struct {
	Text   string
	Volume *int
	Page   *int
}

// Search returns the entries matching every supplied filter, in catalog
// order. Text matches case-insensitively as a substring of the title; Page
// matches when it falls inside the entry's inclusive range. No filters means
// the whole catalog. The result is always non-nil.
func (c Catalog) Search(q Query) []Entry {
	results := make([]Entry, 0)
	for _, e := range c {
		if !e.Matches(q.Text) {
			continue
		}
		if q.Volume != nil && e.Volume != *q.Volume {
			continue
		}
		if q.Page != nil && (*q.Page < e.PageStart || *q.Page > e.PageEnd) {
			continue
		}
		results = append(results, e)
	}
	return results
}

// Random picks one entry uniformly from the whole catalog.
func (c Catalog) Random() (Entry, error) {
	if len(c) == 0 {
		return Entry{}, ErrEmptyCatalog
	}
	return c[rand.Intn(len(c))], nil
}

// VolumeCount is the number of catalog entries in one volume.
type VolumeCount struct {
	Volume int `json:"volume"`
	Count  int `json:"count"`
}

// Volumes groups the catalog by volume and counts the members of each group.
// The result is sorted by ascending volume number so callers get a stable
// order.
func (c Catalog) Volumes() []VolumeCount {
	counts := make(map[int]int)
	for _, e := range c {
		counts[e.Volume]++
	}

	volumes := make([]int, 0, len(counts))
	for v := range counts {
		volumes = append(volumes, v)
	}
	sort.Ints(volumes)

	out := make([]VolumeCount, 0, len(volumes))
	for _, v := range volumes {
		out = append(out, VolumeCount{Volume: v, Count: counts[v]})
	}
	return out
}
