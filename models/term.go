package models

import (
	"fmt"

	"class-search-server/apperrors"
)

// Term format: IYYT
// - I (1st digit): institution, always 1
// - YY (2nd-3rd digits): two-digit year
// - T (4th digit): semester (3 = Spring, 6 = Summer, 9 = Fall)
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
)

var seasonDigits = map[byte]string{
	'3': SeasonSpring,
	'6': SeasonSummer,
	'9': SeasonFall,
}

// Term is a validated 4-character term code.
type Term struct {
	Code   string
	Year   int
	Season string
}

// ValidateTerm checks the IYYT format. Invalid codes are rejected, never
// silently coerced.
func ValidateTerm(code string) error {
	if len(code) != 4 {
		return apperrors.NewInvalidFilterSyntax("termCode", code, "term must be a 4-digit code (e.g., 1263 for Spring 2026)")
	}
	for i := 0; i < 4; i++ {
		if code[i] < '0' || code[i] > '9' {
			return apperrors.NewInvalidFilterSyntax("termCode", code, "term must contain only digits")
		}
	}
	if code[0] != '1' {
		return apperrors.NewInvalidFilterSyntax("termCode", code, "first digit must be 1")
	}
	if _, ok := seasonDigits[code[3]]; !ok {
		return apperrors.NewInvalidFilterSyntax("termCode", code, "last digit must be 3 (Spring), 6 (Summer), or 9 (Fall)")
	}
	return nil
}

// ParseTerm validates and decodes a term code.
func ParseTerm(code string) (Term, error) {
	if err := ValidateTerm(code); err != nil {
		return Term{}, err
	}
	year := 2000 + int(code[1]-'0')*10 + int(code[2]-'0')
	return Term{Code: code, Year: year, Season: seasonDigits[code[3]]}, nil
}

// EncodeTerm builds the term code for a year and season.
func EncodeTerm(year int, season string) (string, error) {
	if year < 2000 || year > 2099 {
		return "", apperrors.NewInvalidFilterSyntax("termCode", fmt.Sprintf("%d", year), "year must be between 2000 and 2099")
	}
	var digit byte
	for d, s := range seasonDigits {
		if s == season {
			digit = d
		}
	}
	if digit == 0 {
		return "", apperrors.NewInvalidFilterSyntax("termCode", season, "season must be Spring, Summer, or Fall")
	}
	return fmt.Sprintf("1%02d%c", year-2000, digit), nil
}

// Description converts a term to its human-readable form ("Spring 2026").
func (t Term) Description() string {
	return fmt.Sprintf("%s %d", t.Season, t.Year)
}

// FormatTermDescription is a convenience for already-validated codes; it
// returns the raw code unchanged when it does not parse.
func FormatTermDescription(code string) string {
	t, err := ParseTerm(code)
	if err != nil {
		return code
	}
	return t.Description()
}
