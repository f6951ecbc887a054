package songbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// imageBaseURL is where the rendered sheet pages live. Page images are keyed
// by volume*1000+page, so volume 2 page 37 is 2037.jpeg.
const imageBaseURL = "https://wypn9z41ir5bzmgjjalyna.on.drv.tw/realbook/rendered"

// Entry is a single song in the songbook index. A song occupies the inclusive
// page range [PageStart, PageEnd] of its volume. Entries are never modified
// after the catalog is loaded.
type Entry struct {
	Title     string `json:"title"`
	Volume    int    `json:"volume"`
	PageStart int    `json:"page_s"`
	PageEnd   int    `json:"page_e"`
}

// UnmarshalJSON accepts titles encoded either as strings or as bare integers.
// The source document stores purely numeric song titles (e.g. "26") as JSON
// numbers; they are normalized to their decimal string form here so nothing
// past the loader has to care.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title     json.RawMessage `json:"title"`
		Volume    int             `json:"volume"`
		PageStart int             `json:"page_s"`
		PageEnd   int             `json:"page_e"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	title, err := decodeTitle(raw.Title)
	if err != nil {
		return err
	}
	e.Title = title
	e.Volume = raw.Volume
	e.PageStart = raw.PageStart
	e.PageEnd = raw.PageEnd
	return nil
}

func decodeTitle(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", errors.New("title is missing")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	return "", errors.New("title must be a string or an integer")
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title is empty")
	}
	if e.Volume <= 0 {
		return fmt.Errorf("volume must be positive, got %d", e.Volume)
	}
	if e.PageStart <= 0 {
		return fmt.Errorf("page_s must be positive, got %d", e.PageStart)
	}
	if e.PageEnd < e.PageStart {
		return fmt.Errorf("page range %d-%d is inverted", e.PageStart, e.PageEnd)
	}
	return nil
}

// Matches reports whether the entry's title contains query as a
// case-insensitive substring. An empty query matches every entry.
func (e Entry) Matches(query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(e.Title), fold.String(query))
}

// ImageURL returns the sheet image URL for one page of the given volume. It
// is a pure formatting helper: no range checking, no catalog lookup.
func ImageURL(volume, page int) string {
	return fmt.Sprintf("%s/%d.jpeg", imageBaseURL, volume*1000+page)
}

// ImageURL returns the sheet image URL for the given page of this entry.
func (e Entry) ImageURL(page int) string {
	return ImageURL(e.Volume, page)
}

// AllImageURLs returns one image URL per page of the entry's range, in page
// order.
func (e Entry) AllImageURLs() []string {
	urls := make([]string, 0, e.PageEnd-e.PageStart+1)
	for page := e.PageStart; page <= e.PageEnd; page++ {
		urls = append(urls, e.ImageURL(page))
	}
	return urls
}

// PageRange renders the page range for display: "12" for a single page,
// "10-12" for a span.
func (e Entry) PageRange() string {
	if e.PageStart == e.PageEnd {
		return strconv.Itoa(e.PageStart)
	}
	return fmt.Sprintf("%d-%d", e.PageStart, e.PageEnd)
}
