package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"class-search-server/vocab"
)

const KEYWORD_QUERY_ARG = "keyword"

// DiscoveryOperations is the slice of the discovery service the handler
// consumes.
type DiscoveryOperations interface {
	SuggestValues(keyword string) ([]vocab.Suggestion, error)
	ListValues(field string) ([]string, error)
}

type DiscoveryHandler struct {
	discoveryService DiscoveryOperations
}

func NewDiscoveryHandler(discoveryService DiscoveryOperations) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

// SuggestFilterValues handles GET /v1/filters/suggest?keyword=
func (h *DiscoveryHandler) SuggestFilterValues(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.discoveryService.SuggestValues(r.URL.Query().Get(KEYWORD_QUERY_ARG))
	if err != nil {
		writeError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []vocab.Suggestion{}
	}
	writeJSON(w, suggestions)
}

// GetFilterOptions handles GET /v1/filters/{field}
func (h *DiscoveryHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	field := mux.Vars(r)["field"]
	values, err := h.discoveryService.ListValues(field)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"field": field, "values": values})
}
