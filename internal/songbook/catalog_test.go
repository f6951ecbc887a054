package songbook

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc := `[
		{"title": "Autumn Leaves", "volume": 1, "page_s": 10, "page_e": 11},
		{"title": "Blue Bossa", "volume": 1, "page_s": 20, "page_e": 20},
		{"title": 7, "volume": 2, "page_s": 5, "page_e": 5}
	]`

	catalog, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, catalog, 3)

	// Source order is preserved.
	assert.Equal(t, "Autumn Leaves", catalog[0].Title)
	assert.Equal(t, "Blue Bossa", catalog[1].Title)
	assert.Equal(t, "7", catalog[2].Title, "numeric title normalized at load")
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantRecord int
	}{
		{
			name:       "not json",
			doc:        `{{{`,
			wantRecord: -1,
		},
		{
			name:       "object instead of array",
			doc:        `{"title": "Solo", "volume": 1, "page_s": 1, "page_e": 1}`,
			wantRecord: -1,
		},
		{
			name:       "empty document",
			doc:        `[]`,
			wantRecord: -1,
		},
		{
			name:       "missing title",
			doc:        `[{"volume": 1, "page_s": 1, "page_e": 1}]`,
			wantRecord: 0,
		},
		{
			name:       "blank title",
			doc:        `[{"title": "   ", "volume": 1, "page_s": 1, "page_e": 1}]`,
			wantRecord: 0,
		},
		{
			name:       "missing volume",
			doc:        `[{"title": "Solo", "page_s": 1, "page_e": 1}]`,
			wantRecord: 0,
		},
		{
			name:       "zero page_s",
			doc:        `[{"title": "Solo", "volume": 1, "page_s": 0, "page_e": 1}]`,
			wantRecord: 0,
		},
		{
			name: "inverted page range fails the whole load",
			doc: `[
				{"title": "Fine", "volume": 1, "page_s": 1, "page_e": 2},
				{"title": "Broken", "volume": 1, "page_s": 9, "page_e": 3}
			]`,
			wantRecord: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Load(strings.NewReader(tt.doc))
			assert.Nil(t, catalog, "load is all-or-nothing")

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.wantRecord, loadErr.Record)
		})
	}
}

func TestLoadFile(t *testing.T) {
	catalog, err := LoadFile("testdata/catalog.json")
	require.NoError(t, err)
	assert.NotEmpty(t, catalog)

	for _, e := range catalog {
		assert.NotEmpty(t, strings.TrimSpace(e.Title))
		assert.Positive(t, e.Volume)
		assert.Positive(t, e.PageStart)
		assert.GreaterOrEqual(t, e.PageEnd, e.PageStart)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/no_such_file.json")

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, -1, loadErr.Record)
}
