package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's error taxonomy. Callers classify with
// errors.Is and pull structured detail with errors.As.
var (
	ErrInvalidFilterSyntax      = errors.New("invalid filter syntax")
	ErrAmbiguousFilterValue     = errors.New("ambiguous filter value")
	ErrInvalidKeyword           = errors.New("invalid keyword")
	ErrNotFound                 = errors.New("not found")
	ErrSearchBackendUnavailable = errors.New("search backend unavailable")
)

// FilterError carries the offending field/value and, for ambiguous matches,
// the candidate canonical values the caller must pick from.
type FilterError struct {
	Err        error
	Field      string
	Value      string
	Message    string
	Candidates []string
}

func (e *FilterError) Error() string {
	msg := fmt.Sprintf("%s: field %q value %q", e.Err, e.Field, e.Value)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Candidates) > 0 {
		msg += " (candidates: " + strings.Join(e.Candidates, ", ") + ")"
	}
	return msg
}

func (e *FilterError) Unwrap() error {
	return e.Err
}

// NewInvalidFilterSyntax creates a caller error for malformed filter input.
func NewInvalidFilterSyntax(field, value, message string) error {
	return &FilterError{Err: ErrInvalidFilterSyntax, Field: field, Value: value, Message: message}
}

// NewUnknownField creates a caller error for a filter field the engine does
// not recognize. Unknown fields are rejected, never silently dropped.
func NewUnknownField(field string) error {
	return &FilterError{Err: ErrInvalidFilterSyntax, Field: field, Message: "unknown filter field"}
}

// NewAmbiguousFilterValue creates an error naming the canonical candidates a
// fuzzy match could not decide between.
func NewAmbiguousFilterValue(field, value string, candidates []string) error {
	return &FilterError{Err: ErrAmbiguousFilterValue, Field: field, Value: value, Candidates: candidates}
}

// KeywordError is returned for empty or blank discovery input.
type KeywordError struct {
	Message string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidKeyword, e.Message)
}

func (e *KeywordError) Unwrap() error {
	return ErrInvalidKeyword
}

func NewInvalidKeyword(message string) error {
	return &KeywordError{Message: message}
}

// NotFoundError identifies the resource and identifier that had no match.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Resource, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// BackendError wraps a transport or malformed-response failure from the
// search index. Transient: safe for the caller to retry with backoff.
type BackendError struct {
	Cause error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSearchBackendUnavailable, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return ErrSearchBackendUnavailable
}

func NewSearchBackendUnavailable(cause error) error {
	return &BackendError{Cause: cause}
}
