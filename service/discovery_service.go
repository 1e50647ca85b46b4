package services

import (
	"strings"

	"class-search-server/apperrors"
	"class-search-server/vocab"
)

// DiscoveryService answers "what can I filter on" questions from the
// in-memory vocabulary snapshot.
type DiscoveryService struct {
	store *vocab.Store
}

// NewDiscoveryService constructs a new DiscoveryService.
func NewDiscoveryService(store *vocab.Store) *DiscoveryService {
	return &DiscoveryService{store: store}
}

// SuggestValues maps a free-text keyword to concrete filter values,
// best matches first.
func (ds *DiscoveryService) SuggestValues(keyword string) ([]vocab.Suggestion, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, apperrors.NewInvalidKeyword("keyword must not be blank")
	}
	return ds.store.Snapshot().Suggest(keyword), nil
}

// ListValues enumerates the known values for a filterable field.
func (ds *DiscoveryService) ListValues(field string) ([]string, error) {
	values, ok := ds.store.Snapshot().ListValues(field)
	if !ok {
		return nil, apperrors.NewUnknownField(field)
	}
	return values, nil
}
