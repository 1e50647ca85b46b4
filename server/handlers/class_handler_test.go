package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"class-search-server/apperrors"
	"class-search-server/models"
)

// stubClassService implements ClassOperations with canned results so the
// handler layer can be exercised without a search backend.
type stubClassService struct {
	page       *models.SectionPage
	sections   []models.ClassSection
	available  *models.Availability
	err        error
	lastFilter map[string]any
	lastFree   []string
	lastBusy   []string
}

func (s *stubClassService) SearchClasses(rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error) {
	s.lastFilter = rawFilters
	return s.page, s.err
}

func (s *stubClassService) FindClassesBySchedule(freeSpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error) {
	s.lastFree = freeSpecs
	return s.page, s.err
}

func (s *stubClassService) CheckScheduleConflicts(busySpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error) {
	s.lastBusy = busySpecs
	return s.page, s.err
}

func (s *stubClassService) SearchByInstructor(term, namePartial string) (*models.SectionPage, error) {
	return s.page, s.err
}

func (s *stubClassService) CompareSections(subject, catalogNumber, term string) ([]models.ClassSection, error) {
	return s.sections, s.err
}

func (s *stubClassService) GetClassDetails(term, classNumbers string) ([]models.ClassSection, error) {
	return s.sections, s.err
}

func (s *stubClassService) CheckAvailability(term, classNumber string) (*models.Availability, error) {
	return s.available, s.err
}

func samplePage() *models.SectionPage {
	return &models.SectionPage{
		TermCode:        "1263",
		TermDescription: "Spring 2026",
		TotalHits:       1,
		Page:            1,
		ResultsPerPage:  10,
		Showing:         "1-1 of 1",
		Sections: []models.ClassSection{
			{Subject: "CS", CatalogNumber: "121", SectionNumber: "001", ClassNumber: "10001", Title: "Computer Science I"},
		},
	}
}

func TestClassHandler_SearchClasses(t *testing.T) {
	service := &stubClassService{page: samplePage()}
	handler := NewClassHandler(service)

	body := `{"page": 1, "resultsPerPage": 10, "filters": {"subject": "computer science"}}`
	req := httptest.NewRequest("POST", "/v1/classes/search", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.SearchClasses(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var page models.SectionPage
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, "1263", page.TermCode)
	assert.Equal(t, 1, page.TotalHits)
	assert.Equal(t, "computer science", service.lastFilter["subject"])
}

func TestClassHandler_SearchClasses_MalformedBody(t *testing.T) {
	handler := NewClassHandler(&stubClassService{})

	req := httptest.NewRequest("POST", "/v1/classes/search", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	handler.SearchClasses(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errBody ErrorBody
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
	assert.Equal(t, "invalid_filter_syntax", errBody.Error)
	assert.Equal(t, "body", errBody.Field)
}

func TestClassHandler_SearchClasses_EmptyBodyFiltersDefaulted(t *testing.T) {
	service := &stubClassService{page: samplePage()}
	handler := NewClassHandler(service)

	req := httptest.NewRequest("POST", "/v1/classes/search", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	handler.SearchClasses(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, service.lastFilter)
}

func TestClassHandler_FindClassesBySchedule(t *testing.T) {
	service := &stubClassService{page: samplePage()}
	handler := NewClassHandler(service)

	body := `{"freeTimes": ["Mon/Wed 10:00-12:00"], "filters": {}}`
	req := httptest.NewRequest("POST", "/v1/classes/fit-schedule", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.FindClassesBySchedule(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Mon/Wed 10:00-12:00"}, service.lastFree)
}

func TestClassHandler_CheckScheduleConflicts(t *testing.T) {
	service := &stubClassService{page: samplePage()}
	handler := NewClassHandler(service)

	body := `{"busyTimes": ["Tue 14:00-15:00"]}`
	req := httptest.NewRequest("POST", "/v1/classes/check-conflicts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.CheckScheduleConflicts(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Tue 14:00-15:00"}, service.lastBusy)
}

func TestClassHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		errorCode  string
	}{
		{
			"Invalid Filter Syntax",
			apperrors.NewInvalidFilterSyntax("catalogNumber", "1*1", "wildcard allowed only as the final character"),
			http.StatusBadRequest,
			"invalid_filter_syntax",
		},
		{
			"Ambiguous Filter Value",
			apperrors.NewAmbiguousFilterValue("subject", "bio", []string{"BIOL", "BIOE"}),
			http.StatusConflict,
			"ambiguous_filter_value",
		},
		{
			"Not Found",
			apperrors.NewNotFound("class", "99999"),
			http.StatusNotFound,
			"not_found",
		},
		{
			"Backend Unavailable",
			apperrors.NewSearchBackendUnavailable(assert.AnError),
			http.StatusBadGateway,
			"search_backend_unavailable",
		},
		{
			"Unexpected",
			assert.AnError,
			http.StatusInternalServerError,
			"internal",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := NewClassHandler(&stubClassService{err: test.err})

			req := httptest.NewRequest("POST", "/v1/classes/search", strings.NewReader(`{}`))
			rr := httptest.NewRecorder()

			handler.SearchClasses(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)

			var errBody ErrorBody
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
			assert.Equal(t, test.errorCode, errBody.Error)
		})
	}
}

func TestClassHandler_ErrorMapping_AmbiguousCandidates(t *testing.T) {
	err := apperrors.NewAmbiguousFilterValue("subject", "bio", []string{"BIOL", "BIOE"})
	handler := NewClassHandler(&stubClassService{err: err})

	req := httptest.NewRequest("POST", "/v1/classes/search", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	handler.SearchClasses(rr, req)

	var errBody ErrorBody
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
	assert.Equal(t, "subject", errBody.Field)
	assert.Equal(t, "bio", errBody.Value)
	assert.Equal(t, []string{"BIOL", "BIOE"}, errBody.Candidates)
}

func TestClassHandler_GetClassDetails(t *testing.T) {
	service := &stubClassService{sections: samplePage().Sections}
	handler := NewClassHandler(service)

	router := mux.NewRouter()
	router.HandleFunc("/v1/classes/{term}/{classNumbers}", handler.GetClassDetails).Methods("GET")

	req := httptest.NewRequest("GET", "/v1/classes/1263/10001", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var sections []models.ClassSection
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sections))
	assert.Len(t, sections, 1)
	assert.Equal(t, "10001", sections[0].ClassNumber)
}

func TestClassHandler_CheckAvailability(t *testing.T) {
	service := &stubClassService{available: &models.Availability{
		TermCode:     "1263",
		ClassNumber:  "10001",
		Status:       models.StatusOpen,
		SeatsOpen:    15,
		Capacity:     40,
		Enrolled:     25,
		WaitlistOpen: 10,
	}}
	handler := NewClassHandler(service)

	router := mux.NewRouter()
	router.HandleFunc("/v1/classes/{term}/{classNumber}/availability", handler.CheckAvailability).Methods("GET")

	req := httptest.NewRequest("GET", "/v1/classes/1263/10001/availability", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var availability models.Availability
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &availability))
	assert.Equal(t, models.StatusOpen, availability.Status)
	assert.Equal(t, 15, availability.SeatsOpen)
}

func TestClassHandler_GetScheduleChart(t *testing.T) {
	service := &stubClassService{sections: samplePage().Sections}
	handler := NewClassHandler(service)

	req := httptest.NewRequest("GET", "/v1/schedule/chart?term=1263&classNumbers=10001", nil)
	rr := httptest.NewRecorder()

	handler.GetScheduleChart(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Weekly schedule load")
}

func TestClassHandler_Ping(t *testing.T) {
	handler := NewClassHandler(&stubClassService{})

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	handler.Ping(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pong")
}
