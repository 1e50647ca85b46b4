package classsearch

import (
	"class-search-server/models"
)

// ClassSearchAPI defines the interface for interacting with the class search index API
type ClassSearchAPI interface {
	Search(req models.ClassSearchRequest) (*models.ClassSearchResponse, error)
	GetClasses(term string, classNumbers []string) ([]models.ClassDocument, error)
	GetAvailability(term, classNumber string) (*models.ClassDocument, error)
	SearchByInstructor(term, query string) (*models.ClassSearchResponse, error)
	GetFilterOptions(term, field string) ([]models.FilterOption, error)
}
