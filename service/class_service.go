package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"class-search-server/api/classsearch"
	"class-search-server/apperrors"
	"class-search-server/config"
	"class-search-server/models"
	"class-search-server/normalizer"
	"class-search-server/schedule"
)

const MIN_INSTRUCTOR_QUERY_LENGTH = 2

// ClassService answers class search, detail and schedule questions by
// normalizing raw filters and querying the index API.
type ClassService struct {
	classSearchApi classsearch.ClassSearchAPI
	normalizer     *normalizer.Normalizer
}

// NewClassService constructs a new ClassService with its dependencies.
func NewClassService(
	classSearchApi classsearch.ClassSearchAPI,
	norm *normalizer.Normalizer) *ClassService {

	return &ClassService{
		classSearchApi: classSearchApi,
		normalizer:     norm,
	}
}

// SearchClasses normalizes the raw filters, runs the search and returns
// one page of sections.
func (cs *ClassService) SearchClasses(rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error) {
	canonical, err := cs.normalizer.Normalize(rawFilters)
	if err != nil {
		return nil, err
	}

	req := buildSearchRequest(canonical, page, resultsPerPage)
	resp, err := cs.classSearchApi.Search(req)
	if err != nil {
		return nil, err
	}

	return buildSectionPage(canonical.Term.Code, req, resp.TotalHits, models.SectionsFromDocuments(resp.Documents)), nil
}

// FindClassesBySchedule returns sections whose every meeting block fits
// inside at least one of the caller's free windows.
func (cs *ClassService) FindClassesBySchedule(freeSpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error) {
	if len(freeSpecs) == 0 {
		return nil, apperrors.NewInvalidFilterSyntax("freeTimes", "", "at least one free time window is required")
	}
	free, err := models.ParseTimeWindowSpecs(freeSpecs)
	if err != nil {
		return nil, apperrors.NewInvalidFilterSyntax("freeTimes", strings.Join(freeSpecs, ", "), err.Error())
	}

	return cs.searchAndFilter(rawFilters, page, resultsPerPage, func(s models.ClassSection) bool {
		return schedule.FitsWithinAny(s, free)
	})
}

// CheckScheduleConflicts returns sections that do NOT collide with any of
// the caller's busy windows.
func (cs *ClassService) CheckScheduleConflicts(busySpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error) {
	if len(busySpecs) == 0 {
		return nil, apperrors.NewInvalidFilterSyntax("busyTimes", "", "at least one busy time window is required")
	}
	busy, err := models.ParseTimeWindowSpecs(busySpecs)
	if err != nil {
		return nil, apperrors.NewInvalidFilterSyntax("busyTimes", strings.Join(busySpecs, ", "), err.Error())
	}

	return cs.searchAndFilter(rawFilters, page, resultsPerPage, func(s models.ClassSection) bool {
		return !schedule.ConflictsWithAny(s, busy)
	})
}

// searchAndFilter runs a normalized search and keeps only the sections
// that pass the predicate. TotalHits reflects the index count, not the
// filtered count, since schedule filtering happens on this side.
func (cs *ClassService) searchAndFilter(rawFilters map[string]any, page, resultsPerPage int, keep func(models.ClassSection) bool) (*models.SectionPage, error) {
	canonical, err := cs.normalizer.Normalize(rawFilters)
	if err != nil {
		return nil, err
	}

	req := buildSearchRequest(canonical, page, resultsPerPage)
	resp, err := cs.classSearchApi.Search(req)
	if err != nil {
		return nil, err
	}

	sections := make([]models.ClassSection, 0, len(resp.Documents))
	for _, s := range models.SectionsFromDocuments(resp.Documents) {
		if keep(s) {
			sections = append(sections, s)
		}
	}
	log.Printf("[ClassService] Schedule filter kept %d of %d sections", len(sections), len(resp.Documents))

	return buildSectionPage(canonical.Term.Code, req, resp.TotalHits, sections), nil
}

// SearchByInstructor finds sections taught by instructors whose name
// matches the partial query.
func (cs *ClassService) SearchByInstructor(term, namePartial string) (*models.SectionPage, error) {
	if err := models.ValidateTerm(term); err != nil {
		return nil, apperrors.NewInvalidFilterSyntax("termCode", term, err.Error())
	}
	namePartial = strings.TrimSpace(namePartial)
	if len(namePartial) < MIN_INSTRUCTOR_QUERY_LENGTH {
		return nil, apperrors.NewInvalidFilterSyntax("instructor", namePartial,
			fmt.Sprintf("instructor query must be at least %d characters", MIN_INSTRUCTOR_QUERY_LENGTH))
	}

	resp, err := cs.classSearchApi.SearchByInstructor(term, namePartial)
	if err != nil {
		return nil, err
	}

	sections := models.SectionsFromDocuments(resp.Documents)
	return &models.SectionPage{
		TermCode:        term,
		TermDescription: models.FormatTermDescription(term),
		TotalHits:       resp.TotalHits,
		Page:            1,
		ResultsPerPage:  len(sections),
		Showing:         showingRange(1, len(sections), len(sections), resp.TotalHits),
		Sections:        sections,
	}, nil
}

// CompareSections lists every section of one course in section-number
// order. A course with no sections compares to an empty list, not an
// error.
func (cs *ClassService) CompareSections(subject, catalogNumber, term string) ([]models.ClassSection, error) {
	canonical, err := cs.normalizer.Normalize(map[string]any{
		"termCode":      term,
		"subject":       subject,
		"catalogNumber": catalogNumber,
	})
	if err != nil {
		return nil, err
	}

	req := buildSearchRequest(canonical, 1, config.MAX_RESULTS_PER_PAGE)
	resp, err := cs.classSearchApi.Search(req)
	if err != nil {
		return nil, err
	}

	sections := models.SectionsFromDocuments(resp.Documents)
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].SectionNumber < sections[j].SectionNumber
	})
	return sections, nil
}

// GetClassDetails fetches full details for one or more class numbers.
// classNumbers is a comma-separated list.
func (cs *ClassService) GetClassDetails(term, classNumbers string) ([]models.ClassSection, error) {
	if err := models.ValidateTerm(term); err != nil {
		return nil, apperrors.NewInvalidFilterSyntax("termCode", term, err.Error())
	}

	var numbers []string
	for _, n := range strings.Split(classNumbers, ",") {
		if n = strings.TrimSpace(n); n != "" {
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		return nil, apperrors.NewInvalidFilterSyntax("classNumbers", classNumbers, "at least one class number is required")
	}

	docs, err := cs.classSearchApi.GetClasses(term, numbers)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperrors.NewNotFound("class", classNumbers)
	}
	return models.SectionsFromDocuments(docs), nil
}

// CheckAvailability reports the live seat status for a single section.
func (cs *ClassService) CheckAvailability(term, classNumber string) (*models.Availability, error) {
	if err := models.ValidateTerm(term); err != nil {
		return nil, apperrors.NewInvalidFilterSyntax("termCode", term, err.Error())
	}

	doc, err := cs.classSearchApi.GetAvailability(term, classNumber)
	if err != nil {
		return nil, err
	}

	availability := models.AvailabilityFromSection(models.SectionFromDocument(*doc))
	return &availability, nil
}

// buildSearchRequest maps a canonical query onto the index API's wire
// payload, clamping pagination to the configured bounds.
func buildSearchRequest(q *models.CanonicalQuery, page, resultsPerPage int) models.ClassSearchRequest {
	if page < 1 {
		page = 1
	}
	if resultsPerPage <= 0 {
		resultsPerPage = config.DEFAULT_RESULTS_PER_PAGE
	}
	if resultsPerPage > config.MAX_RESULTS_PER_PAGE {
		resultsPerPage = config.MAX_RESULTS_PER_PAGE
	}

	req := models.ClassSearchRequest{
		Term:           q.Term.Code,
		Page:           page,
		ResultsPerPage: resultsPerPage,

		Query:         q.Query,
		Subject:       q.Subject,
		CatalogNumber: q.CatalogNumber,
		CatalogPrefix: q.CatalogPrefix,
		Instructor:    q.Instructor,

		AcademicLevel:   q.AcademicLevel,
		InstructionMode: q.InstructionMode,
		Campus:          q.Campus,
		Session:         q.Session,
		ClassType:       q.ClassType,
		FeeStructure:    q.FeeStructure,
		CourseID:        q.CourseID,

		Credits:    q.Credits,
		MinCredits: q.MinCredits,
		MaxCredits: q.MaxCredits,

		Attributes: q.Attributes,

		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
	}

	if q.Days != 0 {
		req.Days = q.Days.Days()
	}
	if q.MeetingWindow != nil {
		start, end := q.MeetingWindow.StartMinute, q.MeetingWindow.EndMinute
		req.MeetingTimeStart = &start
		req.MeetingTimeEnd = &end
	}
	if len(q.RequirementDesignations) > 0 {
		req.RequirementDesignation = q.RequirementDesignations[0]
	}
	if q.OpenSeatsOnly {
		req.AvailableSeats = "open"
	}

	// Default to a stable ordering so identical queries page identically.
	if req.SortBy == "" {
		req.SortBy = "Catalog Number"
		req.SortDirection = "Ascending"
	}
	return req
}

func buildSectionPage(termCode string, req models.ClassSearchRequest, totalHits int, sections []models.ClassSection) *models.SectionPage {
	return &models.SectionPage{
		TermCode:        termCode,
		TermDescription: models.FormatTermDescription(termCode),
		TotalHits:       totalHits,
		Page:            req.Page,
		ResultsPerPage:  req.ResultsPerPage,
		Showing:         showingRange(req.Page, req.ResultsPerPage, len(sections), totalHits),
		Sections:        sections,
	}
}

// showingRange echoes "first-last of total". The page offset comes from the
// page size, not the section count: schedule filtering can shrink a page
// without moving its position in the result set.
func showingRange(page, resultsPerPage, count, totalHits int) string {
	if count == 0 {
		return fmt.Sprintf("0 of %d", totalHits)
	}
	first := (page-1)*resultsPerPage + 1
	return fmt.Sprintf("%d-%d of %d", first, first+count-1, totalHits)
}
