package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"class-search-server/apperrors"
)

// ErrorBody is the JSON shape written for every handler error.
type ErrorBody struct {
	Error      string   `json:"error"`
	Message    string   `json:"message"`
	Field      string   `json:"field,omitempty"`
	Value      string   `json:"value,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

// writeError maps service errors onto HTTP statuses and a structured body.
func writeError(w http.ResponseWriter, err error) {
	body := ErrorBody{Message: err.Error()}
	status := http.StatusInternalServerError
	body.Error = "internal"

	var fe *apperrors.FilterError
	var nf *apperrors.NotFoundError
	switch {
	case errors.As(err, &fe):
		body.Field = fe.Field
		body.Value = fe.Value
		body.Candidates = fe.Candidates
		if errors.Is(err, apperrors.ErrAmbiguousFilterValue) {
			status = http.StatusConflict
			body.Error = "ambiguous_filter_value"
		} else {
			status = http.StatusBadRequest
			body.Error = "invalid_filter_syntax"
		}
	case errors.Is(err, apperrors.ErrInvalidKeyword):
		status = http.StatusBadRequest
		body.Error = "invalid_keyword"
	case errors.As(err, &nf):
		status = http.StatusNotFound
		body.Error = "not_found"
	case errors.Is(err, apperrors.ErrSearchBackendUnavailable):
		status = http.StatusBadGateway
		body.Error = "search_backend_unavailable"
	default:
		log.Printf("[Handlers] Unexpected error: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		log.Println("Error encoding error response:", encodeErr)
	}
}

// writeJSON writes a 200 response with a JSON body.
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
