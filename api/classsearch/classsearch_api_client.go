package classsearch

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"class-search-server/api"
	"class-search-server/apperrors"
	"class-search-server/models"
)

// ClassSearchApiClient embeds the common HTTPClient
type ClassSearchApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewClassSearchApiClient creates a new instance of ClassSearchApiClient
func NewClassSearchApiClient(httpClient *api.HTTPClient) *ClassSearchApiClient {
	return &ClassSearchApiClient{
		HTTPClient: httpClient,
	}
}

// Search executes a structured search against the index.
func (c *ClassSearchApiClient) Search(req models.ClassSearchRequest) (*models.ClassSearchResponse, error) {
	var response models.ClassSearchResponse
	if err := c.Request("POST", "/api/search", nil, req, &response); err != nil {
		return nil, backendError(err)
	}
	return &response, nil
}

// GetClasses fetches full documents for one or more class numbers.
func (c *ClassSearchApiClient) GetClasses(term string, classNumbers []string) ([]models.ClassDocument, error) {
	joined := strings.Join(classNumbers, ",")
	var response []models.ClassDocument
	err := c.Request("GET", "/api/class/"+term+"/"+joined, nil, nil, &response)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFound("class", joined)
		}
		return nil, backendError(err)
	}
	return response, nil
}

// GetAvailability fetches the current enrollment counts for one class.
func (c *ClassSearchApiClient) GetAvailability(term, classNumber string) (*models.ClassDocument, error) {
	var response models.ClassDocument
	err := c.Request("GET", "/api/class/"+term+"/"+classNumber+"/availability", nil, nil, &response)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFound("class", classNumber)
		}
		return nil, backendError(err)
	}
	return &response, nil
}

// SearchByInstructor runs the index's professor-name search.
func (c *ClassSearchApiClient) SearchByInstructor(term, query string) (*models.ClassSearchResponse, error) {
	var response models.ClassSearchResponse
	endpoint := "/api/search/" + term + "/professor?query=" + url.QueryEscape(query)
	if err := c.Request("GET", endpoint, nil, nil, &response); err != nil {
		return nil, backendError(err)
	}
	return &response, nil
}

// GetFilterOptions enumerates the distinct values of one indexed field.
func (c *ClassSearchApiClient) GetFilterOptions(term, field string) ([]models.FilterOption, error) {
	var response models.FilterOptionsResponse
	endpoint := "/api/" + term + "/filter-options/" + url.PathEscape(field)
	if err := c.Request("GET", endpoint, nil, nil, &response); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFound("filter field", field)
		}
		return nil, backendError(err)
	}
	return response.Options, nil
}

func isNotFound(err error) bool {
	var statusErr *api.StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// backendError classifies everything that is not a missing resource as a
// retryable backend failure; the engine never returns a silent empty set.
func backendError(err error) error {
	return apperrors.NewSearchBackendUnavailable(err)
}
