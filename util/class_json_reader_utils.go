package util

import (
	"encoding/json"
	"fmt"
	"os"

	"class-search-server/models"
)

// ReadClassSearchResponseFromJSON loads a ClassSearchResponse from JSON on disk.
func ReadClassSearchResponseFromJSON(filePath string) (*models.ClassSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ClassSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ClassSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadClassDocumentsFromJSON loads a slice of ClassDocument from JSON on disk.
func ReadClassDocumentsFromJSON(filePath string) ([]models.ClassDocument, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var docs []models.ClassDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ClassDocument list: %w", err)
	}
	return docs, nil
}

// ReadClassDocumentFromJSON loads a single ClassDocument from JSON on disk.
func ReadClassDocumentFromJSON(filePath string) (*models.ClassDocument, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var doc models.ClassDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ClassDocument: %w", err)
	}
	return &doc, nil
}

// ReadFilterOptionsFromJSON loads a FilterOptionsResponse from JSON on disk.
func ReadFilterOptionsFromJSON(filePath string) (*models.FilterOptionsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.FilterOptionsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FilterOptionsResponse: %w", err)
	}
	return &resp, nil
}
