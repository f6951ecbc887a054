package songbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func testCatalog() Catalog {
	return Catalog{
		{Title: "Autumn Leaves", Volume: 1, PageStart: 10, PageEnd: 11},
		{Title: "Blue Bossa", Volume: 1, PageStart: 20, PageEnd: 20},
		{Title: "7", Volume: 2, PageStart: 5, PageEnd: 5},
		{Title: "Autumn in New York", Volume: 2, PageStart: 30, PageEnd: 32},
	}
}

func TestSearch(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name       string
		query      Query
		wantTitles []string
	}{
		{
			name:       "no filters returns full catalog in order",
			query:      Query{},
			wantTitles: []string{"Autumn Leaves", "Blue Bossa", "7", "Autumn in New York"},
		},
		{
			name:       "text filter",
			query:      Query{Text: "blue"},
			wantTitles: []string{"Blue Bossa"},
		},
		{
			name:       "text filter preserves catalog order",
			query:      Query{Text: "autumn"},
			wantTitles: []string{"Autumn Leaves", "Autumn in New York"},
		},
		{
			name:       "volume filter",
			query:      Query{Volume: intPtr(1)},
			wantTitles: []string{"Autumn Leaves", "Blue Bossa"},
		},
		{
			name:       "page inside range",
			query:      Query{Page: intPtr(11)},
			wantTitles: []string{"Autumn Leaves"},
		},
		{
			name:       "page at range start",
			query:      Query{Page: intPtr(30)},
			wantTitles: []string{"Autumn in New York"},
		},
		{
			name:       "page at range end",
			query:      Query{Page: intPtr(32)},
			wantTitles: []string{"Autumn in New York"},
		},
		{
			name:       "page just before range",
			query:      Query{Page: intPtr(9)},
			wantTitles: []string{},
		},
		{
			name:       "page just after range",
			query:      Query{Page: intPtr(13)},
			wantTitles: []string{},
		},
		{
			name:       "filters combine with AND",
			query:      Query{Text: "autumn", Volume: intPtr(2)},
			wantTitles: []string{"Autumn in New York"},
		},
		{
			name:       "all filters supplied",
			query:      Query{Text: "autumn", Volume: intPtr(1), Page: intPtr(10)},
			wantTitles: []string{"Autumn Leaves"},
		},
		{
			name:       "no match is empty, not an error",
			query:      Query{Page: intPtr(15)},
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := catalog.Search(tt.query)
			require.NotNil(t, results)

			titles := make([]string, 0, len(results))
			for _, e := range results {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	catalog := testCatalog()

	upper := catalog.Search(Query{Text: "AUTUMN"})
	lower := catalog.Search(Query{Text: "autumn"})

	assert.Equal(t, lower, upper)
	assert.Len(t, upper, 2)
}

func TestSearchIsSubsetOfCatalog(t *testing.T) {
	catalog := testCatalog()

	results := catalog.Search(Query{Text: "a", Volume: intPtr(2)})
	for _, e := range results {
		assert.Contains(t, catalog, e)
		assert.Equal(t, 2, e.Volume)
		assert.True(t, e.Matches("a"))
	}
}

func TestRandom(t *testing.T) {
	catalog := testCatalog()

	for i := 0; i < 100; i++ {
		entry, err := catalog.Random()
		require.NoError(t, err)
		assert.Contains(t, catalog, entry)
	}
}

func TestRandomEmptyCatalog(t *testing.T) {
	var empty Catalog

	_, err := empty.Random()
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestVolumes(t *testing.T) {
	catalog := testCatalog()

	volumes := catalog.Volumes()
	assert.Equal(t, []VolumeCount{
		{Volume: 1, Count: 2},
		{Volume: 2, Count: 2},
	}, volumes)

	total := 0
	for _, vc := range volumes {
		total += vc.Count
	}
	assert.Equal(t, len(catalog), total, "counts sum to catalog size")
}

func TestVolumesSortedAscending(t *testing.T) {
	catalog := Catalog{
		{Title: "C", Volume: 3, PageStart: 1, PageEnd: 1},
		{Title: "A", Volume: 1, PageStart: 1, PageEnd: 1},
		{Title: "B", Volume: 2, PageStart: 1, PageEnd: 1},
		{Title: "D", Volume: 3, PageStart: 2, PageEnd: 2},
	}

	volumes := catalog.Volumes()
	assert.Equal(t, []VolumeCount{
		{Volume: 1, Count: 1},
		{Volume: 2, Count: 1},
		{Volume: 3, Count: 2},
	}, volumes)
}
