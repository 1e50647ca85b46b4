package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"class-search-server/apperrors"
	"class-search-server/models"
	"class-search-server/util"
)

const (
	TERM_QUERY_ARG    = "term"
	QUERY_QUERY_ARG   = "query"
	SUBJECT_QUERY_ARG = "subject"
	CATALOG_QUERY_ARG = "catalogNumber"
)

// ClassOperations is the slice of the class service the handler consumes.
type ClassOperations interface {
	SearchClasses(rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error)
	FindClassesBySchedule(freeSpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error)
	CheckScheduleConflicts(busySpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error)
	SearchByInstructor(term, namePartial string) (*models.SectionPage, error)
	CompareSections(subject, catalogNumber, term string) ([]models.ClassSection, error)
	GetClassDetails(term, classNumbers string) ([]models.ClassSection, error)
	CheckAvailability(term, classNumber string) (*models.Availability, error)
}

// searchBody is the POST payload for search and schedule routes. Filters
// holds raw filter fields exactly as the normalizer accepts them.
type searchBody struct {
	Page           int            `json:"page"`
	ResultsPerPage int            `json:"resultsPerPage"`
	Filters        map[string]any `json:"filters"`
	FreeTimes      []string       `json:"freeTimes,omitempty"`
	BusyTimes      []string       `json:"busyTimes,omitempty"`
}

type ClassHandler struct {
	classService ClassOperations
}

func NewClassHandler(classService ClassOperations) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// SearchClasses handles POST /v1/classes/search
func (h *ClassHandler) SearchClasses(w http.ResponseWriter, r *http.Request) {
	body, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	page, err := h.classService.SearchClasses(body.Filters, body.Page, body.ResultsPerPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, page)
}

// FindClassesBySchedule handles POST /v1/classes/fit-schedule
func (h *ClassHandler) FindClassesBySchedule(w http.ResponseWriter, r *http.Request) {
	body, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	page, err := h.classService.FindClassesBySchedule(body.FreeTimes, body.Filters, body.Page, body.ResultsPerPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, page)
}

// CheckScheduleConflicts handles POST /v1/classes/check-conflicts
func (h *ClassHandler) CheckScheduleConflicts(w http.ResponseWriter, r *http.Request) {
	body, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	page, err := h.classService.CheckScheduleConflicts(body.BusyTimes, body.Filters, body.Page, body.ResultsPerPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, page)
}

// SearchByInstructor handles GET /v1/classes/instructor?term=&query=
func (h *ClassHandler) SearchByInstructor(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	page, err := h.classService.SearchByInstructor(vals.Get(TERM_QUERY_ARG), vals.Get(QUERY_QUERY_ARG))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, page)
}

// CompareSections handles GET /v1/classes/compare?term=&subject=&catalogNumber=
func (h *ClassHandler) CompareSections(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	sections, err := h.classService.CompareSections(
		vals.Get(SUBJECT_QUERY_ARG), vals.Get(CATALOG_QUERY_ARG), vals.Get(TERM_QUERY_ARG))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, sections)
}

// GetClassDetails handles GET /v1/classes/{term}/{classNumbers}
func (h *ClassHandler) GetClassDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sections, err := h.classService.GetClassDetails(vars["term"], vars["classNumbers"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, sections)
}

// CheckAvailability handles GET /v1/classes/{term}/{classNumber}/availability
func (h *ClassHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	availability, err := h.classService.CheckAvailability(vars["term"], vars["classNumber"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, availability)
}

// GetScheduleChart handles GET /v1/schedule/chart?term=&classNumbers=
// It renders an HTML bar chart of meeting-time load for the given sections.
func (h *ClassHandler) GetScheduleChart(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	sections, err := h.classService.GetClassDetails(vals.Get(TERM_QUERY_ARG), vals.Get("classNumbers"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	title := "Weekly schedule load, term " + vals.Get(TERM_QUERY_ARG)
	if err := util.PlotWeeklySchedule(w, title, sections); err != nil {
		log.Println("Error rendering schedule chart:", err)
	}
}

// Ping handles GET /ping
func (h *ClassHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *ClassHandler) parseBody(w http.ResponseWriter, r *http.Request) (*searchBody, bool) {
	var body searchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, apperrors.NewInvalidFilterSyntax("body", "", "malformed JSON request body"))
		return nil, false
	}
	if body.Filters == nil {
		body.Filters = map[string]any{}
	}
	return &body, true
}
