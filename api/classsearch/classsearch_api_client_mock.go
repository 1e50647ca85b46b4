package classsearch

import (
	"fmt"
	"path/filepath"

	"class-search-server/apperrors"
	"class-search-server/config"
	"class-search-server/models"
	"class-search-server/util"
)

// ClassSearchApiClientMock serves canned responses from JSON fixtures on
// disk; used for local development and tests.
type ClassSearchApiClientMock struct {
	resourcesDir string
}

// NewClassSearchApiClientMock creates a mock reading fixtures from the given directory.
func NewClassSearchApiClientMock(resourcesDir string) *ClassSearchApiClientMock {
	return &ClassSearchApiClientMock{resourcesDir: resourcesDir}
}

func (c *ClassSearchApiClientMock) resource(name string) string {
	return filepath.Join(c.resourcesDir, name)
}

// Search returns the canned search response regardless of filters.
func (c *ClassSearchApiClientMock) Search(req models.ClassSearchRequest) (*models.ClassSearchResponse, error) {
	response, err := util.ReadClassSearchResponseFromJSON(c.resource(config.SEARCH_CLASSES_RESPONSE_RESOURCE))
	if err != nil {
		return nil, apperrors.NewSearchBackendUnavailable(err)
	}
	return response, nil
}

// GetClasses filters the canned details fixture by class number so missing
// numbers behave like the real API.
func (c *ClassSearchApiClientMock) GetClasses(term string, classNumbers []string) ([]models.ClassDocument, error) {
	docs, err := util.ReadClassDocumentsFromJSON(c.resource(config.CLASS_DETAILS_RESPONSE_RESOURCE))
	if err != nil {
		return nil, apperrors.NewSearchBackendUnavailable(err)
	}
	wanted := make(map[string]struct{}, len(classNumbers))
	for _, n := range classNumbers {
		wanted[n] = struct{}{}
	}
	var out []models.ClassDocument
	for _, d := range docs {
		if _, ok := wanted[d.ClassNumber]; ok {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, apperrors.NewNotFound("class", fmt.Sprintf("%v", classNumbers))
	}
	return out, nil
}

// GetAvailability returns the canned availability document when the class
// number matches, NotFound otherwise.
func (c *ClassSearchApiClientMock) GetAvailability(term, classNumber string) (*models.ClassDocument, error) {
	doc, err := util.ReadClassDocumentFromJSON(c.resource(config.AVAILABILITY_RESPONSE_RESOURCE))
	if err != nil {
		return nil, apperrors.NewSearchBackendUnavailable(err)
	}
	if doc.ClassNumber != classNumber {
		return nil, apperrors.NewNotFound("class", classNumber)
	}
	return doc, nil
}

// SearchByInstructor returns the canned search response.
func (c *ClassSearchApiClientMock) SearchByInstructor(term, query string) (*models.ClassSearchResponse, error) {
	response, err := util.ReadClassSearchResponseFromJSON(c.resource(config.SEARCH_CLASSES_RESPONSE_RESOURCE))
	if err != nil {
		return nil, apperrors.NewSearchBackendUnavailable(err)
	}
	return response, nil
}

// GetFilterOptions reads the per-field fixture (filter_options_<field>.json).
func (c *ClassSearchApiClientMock) GetFilterOptions(term, field string) ([]models.FilterOption, error) {
	name := fmt.Sprintf(config.FILTER_OPTIONS_RESOURCE_FORMAT, field)
	options, err := util.ReadFilterOptionsFromJSON(c.resource(name))
	if err != nil {
		return nil, apperrors.NewNotFound("filter field", field)
	}
	return options.Options, nil
}
