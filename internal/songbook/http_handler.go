package songbook

import (
	"errors"
	"net/http"
	"strconv"

	"songbookapi/internal/httpx"
)

type HTTPHandler struct {
	catalog Catalog
}

func NewHTTPHandler(catalog Catalog) *HTTPHandler {
	return &HTTPHandler{catalog: catalog}
}

// entryResponse is the wire form of an Entry. It carries the raw fields under
// their source-document names plus the derived display range and per-page
// image URLs, so clients never reimplement the URL scheme.
type entryResponse struct {
	Title     string   `json:"title"`
	Volume    int      `json:"volume"`
	PageStart int      `json:"page_s"`
	PageEnd   int      `json:"page_e"`
	PageRange string   `json:"page_range"`
	ImageURLs []string `json:"image_urls"`
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		Title:     e.Title,
		Volume:    e.Volume,
		PageStart: e.PageStart,
		PageEnd:   e.PageEnd,
		PageRange: e.PageRange(),
		ImageURLs: e.AllImageURLs(),
	}
}

// Search handles GET /api/search
// @Summary Search the songbook
// @Description Search entries by title substring, volume, and page
// @Tags songbook
// @Produce json
// @Param query query string false "Case-insensitive title substring"
// @Param volume query int false "Filter by volume number"
// @Param page query int false "Filter by page within the entry's range"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := Query{Text: params.Get("query")}

	volume, details := intParam(params.Get("volume"), "volume")
	if details == nil {
		q.Volume = volume
		q.Page, details = intParam(params.Get("page"), "page")
	}
	if details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameter", details)
		return
	}

	results := h.catalog.Search(q)
	entries := make([]entryResponse, 0, len(results))
	for _, e := range results {
		entries = append(entries, toEntryResponse(e))
	}

	httpx.JSONSuccess(w, r, entries, map[string]any{
		"total": len(entries),
	})
}

// Random handles GET /api/random
// @Summary Random entry
// @Description Pick one entry uniformly from the whole catalog
// @Tags songbook
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/random [get]
func (h *HTTPHandler) Random(w http.ResponseWriter, r *http.Request) {
	entry, err := h.catalog.Random()
	if err != nil {
		if errors.Is(err, ErrEmptyCatalog) {
			httpx.JSONError(w, r, http.StatusNotFound, "NO_ENTRIES", "The catalog has no entries", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, toEntryResponse(entry), nil)
}

// Volumes handles GET /api/volumes
// @Summary List volumes
// @Description Entry counts per volume, ascending by volume number
// @Tags songbook
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/volumes [get]
func (h *HTTPHandler) Volumes(w http.ResponseWriter, r *http.Request) {
	volumes := h.catalog.Volumes()
	httpx.JSONSuccess(w, r, volumes, map[string]any{
		"total_entries": len(h.catalog),
	})
}

// intParam parses an optional positive-integer query parameter. An absent
// value is nil/nil; a malformed one yields the error detail for the 400
// envelope.
func intParam(value, field string) (*int, []httpx.ErrorDetail) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return nil, []httpx.ErrorDetail{{Field: field, Message: field + " must be a positive integer"}}
	}
	return &n, nil
}
