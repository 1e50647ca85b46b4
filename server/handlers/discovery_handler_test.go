package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"class-search-server/apperrors"
	"class-search-server/vocab"
)

type stubDiscoveryService struct {
	suggestions []vocab.Suggestion
	values      []string
	err         error
	lastKeyword string
	lastField   string
}

func (s *stubDiscoveryService) SuggestValues(keyword string) ([]vocab.Suggestion, error) {
	s.lastKeyword = keyword
	return s.suggestions, s.err
}

func (s *stubDiscoveryService) ListValues(field string) ([]string, error) {
	s.lastField = field
	return s.values, s.err
}

func TestDiscoveryHandler_SuggestFilterValues(t *testing.T) {
	service := &stubDiscoveryService{suggestions: []vocab.Suggestion{
		{Field: "courseAttribute", Value: "General Education", Score: 1.0},
	}}
	handler := NewDiscoveryHandler(service)

	req := httptest.NewRequest("GET", "/v1/filters/suggest?keyword=gen-ed", nil)
	rr := httptest.NewRecorder()

	handler.SuggestFilterValues(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gen-ed", service.lastKeyword)

	var suggestions []vocab.Suggestion
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &suggestions))
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "General Education", suggestions[0].Value)
}

func TestDiscoveryHandler_SuggestFilterValues_NoMatches(t *testing.T) {
	handler := NewDiscoveryHandler(&stubDiscoveryService{suggestions: nil})

	req := httptest.NewRequest("GET", "/v1/filters/suggest?keyword=zzzz", nil)
	rr := httptest.NewRecorder()

	handler.SuggestFilterValues(rr, req)

	// No matches still yields an empty array, never null.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestDiscoveryHandler_SuggestFilterValues_BlankKeyword(t *testing.T) {
	handler := NewDiscoveryHandler(&stubDiscoveryService{
		err: apperrors.NewInvalidKeyword("keyword must not be blank"),
	})

	req := httptest.NewRequest("GET", "/v1/filters/suggest?keyword=", nil)
	rr := httptest.NewRecorder()

	handler.SuggestFilterValues(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errBody ErrorBody
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
	assert.Equal(t, "invalid_keyword", errBody.Error)
}

func TestDiscoveryHandler_GetFilterOptions(t *testing.T) {
	service := &stubDiscoveryService{values: []string{"Hybrid", "In Person", "Online"}}
	handler := NewDiscoveryHandler(service)

	router := mux.NewRouter()
	router.HandleFunc("/v1/filters/{field}", handler.GetFilterOptions).Methods("GET")

	req := httptest.NewRequest("GET", "/v1/filters/instructionMode", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "instructionMode", service.lastField)

	var payload struct {
		Field  string   `json:"field"`
		Values []string `json:"values"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "instructionMode", payload.Field)
	assert.Equal(t, []string{"Hybrid", "In Person", "Online"}, payload.Values)
}

func TestDiscoveryHandler_GetFilterOptions_UnknownField(t *testing.T) {
	service := &stubDiscoveryService{err: apperrors.NewUnknownField("room")}
	handler := NewDiscoveryHandler(service)

	router := mux.NewRouter()
	router.HandleFunc("/v1/filters/{field}", handler.GetFilterOptions).Methods("GET")

	req := httptest.NewRequest("GET", "/v1/filters/room", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errBody ErrorBody
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
	assert.Equal(t, "invalid_filter_syntax", errBody.Error)
	assert.Equal(t, "room", errBody.Field)
}
