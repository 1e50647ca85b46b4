// Package normalizer turns raw filter arguments (abbreviated, wildcarded, or
// informally worded) into a canonical, index-ready predicate set, consulting
// the vocabulary store.
package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"class-search-server/apperrors"
	"class-search-server/models"
	"class-search-server/vocab"
)

// Informal meeting-time buckets, minutes since midnight, end exclusive.
// morning 06:00-11:59, afternoon 12:00-16:59, evening 17:00-22:59.
var meetingTimeBuckets = map[string]models.TimeWindow{
	"morning":   {StartMinute: 6 * 60, EndMinute: 12 * 60},
	"afternoon": {StartMinute: 12 * 60, EndMinute: 17 * 60},
	"evening":   {StartMinute: 17 * 60, EndMinute: 23 * 60},
}

var (
	catalogExactRe  = regexp.MustCompile(`^[0-9]+[A-Za-z]*$`)
	catalogPrefixRe = regexp.MustCompile(`^[0-9]+\*$`)
	subjectCodeRe   = regexp.MustCompile(`^[A-Za-z]{2,6}$`)
)

var sortFields = map[string]string{
	"catalog number": "Catalog Number",
	"alphabetical":   "Alphabetical",
	"enrollment":     "Enrollment",
}

// Normalizer resolves raw filters against the current vocabulary snapshot.
type Normalizer struct {
	store       *vocab.Store
	defaultTerm string
}

func NewNormalizer(store *vocab.Store, defaultTerm string) *Normalizer {
	return &Normalizer{store: store, defaultTerm: defaultTerm}
}

// Normalize resolves every raw filter into its canonical form. Unknown
// fields are rejected so callers get a clear signal instead of a silently
// dropped filter.
func (n *Normalizer) Normalize(raw map[string]any) (*models.CanonicalQuery, error) {
	snap := n.store.Snapshot()
	q := &models.CanonicalQuery{}

	termCode := n.defaultTerm
	if v, ok := raw["termCode"]; ok {
		s, err := asString("termCode", v)
		if err != nil {
			return nil, err
		}
		termCode = strings.TrimSpace(s)
	}
	term, err := models.ParseTerm(termCode)
	if err != nil {
		return nil, err
	}
	q.Term = term

	for field, value := range raw {
		switch field {
		case "termCode":
			// handled above
		case "subject":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			subject, err := resolveSubject(snap, s)
			if err != nil {
				return nil, err
			}
			q.Subject = subject
		case "catalogNumber":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			exact, prefix, err := resolveCatalogNumber(s)
			if err != nil {
				return nil, err
			}
			q.CatalogNumber, q.CatalogPrefix = exact, prefix
		case "instructor":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			s = strings.TrimSpace(s)
			if len(s) < 2 {
				return nil, apperrors.NewInvalidFilterSyntax(field, s, "instructor name must be at least 2 characters")
			}
			q.Instructor = s
		case "query":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			s = strings.TrimSpace(s)
			if len(s) <= 2 {
				return nil, apperrors.NewInvalidFilterSyntax(field, s, "search query must be more than 2 characters")
			}
			q.Query = s
		case "meetingTime":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			w, err := resolveMeetingTime(s)
			if err != nil {
				return nil, err
			}
			q.MeetingWindow = w
		case "days":
			names, err := asStringSlice(field, value)
			if err != nil {
				return nil, err
			}
			mask, err := models.ParseDays(names)
			if err != nil {
				return nil, err
			}
			q.Days = mask
		case "instructionMode":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			mode, err := resolveEnum(snap, vocab.FieldInstructionMode, field, s)
			if err != nil {
				return nil, err
			}
			q.InstructionMode = mode
		case "academicLevel":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			level, err := resolveAcademicLevel(s)
			if err != nil {
				return nil, err
			}
			q.AcademicLevel = level
		case "attributes":
			values, err := asStringSlice(field, value)
			if err != nil {
				return nil, err
			}
			for _, v := range values {
				attr, err := resolveEnum(snap, vocab.FieldAttributes, field, v)
				if err != nil {
					return nil, err
				}
				q.Attributes = append(q.Attributes, attr)
			}
		case "requirementDesignations":
			values, err := asStringSlice(field, value)
			if err != nil {
				return nil, err
			}
			// The index accepts one designation per query.
			if len(values) > 1 {
				return nil, apperrors.NewInvalidFilterSyntax(field, strings.Join(values, ", "),
					"only one requirement designation may be given per search")
			}
			for _, v := range values {
				rd, err := resolveEnum(snap, vocab.FieldRequirementDesignations, field, v)
				if err != nil {
					return nil, err
				}
				q.RequirementDesignations = append(q.RequirementDesignations, rd)
			}
		case "hasOpenSeats":
			b, err := asBool(field, value)
			if err != nil {
				return nil, err
			}
			q.OpenSeatsOnly = b
		case "campus":
			if q.Campus, err = asString(field, value); err != nil {
				return nil, err
			}
		case "session":
			if q.Session, err = asString(field, value); err != nil {
				return nil, err
			}
		case "credits":
			if q.Credits, err = asString(field, value); err != nil {
				return nil, err
			}
		case "classType":
			if q.ClassType, err = asString(field, value); err != nil {
				return nil, err
			}
		case "feeStructure":
			if q.FeeStructure, err = asString(field, value); err != nil {
				return nil, err
			}
		case "courseId":
			if q.CourseID, err = asString(field, value); err != nil {
				return nil, err
			}
		case "minCredits":
			v, err := asInt(field, value)
			if err != nil {
				return nil, err
			}
			q.MinCredits = &v
		case "maxCredits":
			v, err := asInt(field, value)
			if err != nil {
				return nil, err
			}
			q.MaxCredits = &v
		case "sortBy":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			canonical, ok := sortFields[vocab.NormalizeKeyword(s)]
			if !ok {
				return nil, apperrors.NewInvalidFilterSyntax(field, s, "sort field must be Catalog Number, Alphabetical, or Enrollment")
			}
			q.SortBy = canonical
		case "sortDirection":
			s, err := asString(field, value)
			if err != nil {
				return nil, err
			}
			switch vocab.NormalizeKeyword(s) {
			case "ascending", "asc":
				q.SortDirection = "Ascending"
			case "descending", "desc":
				q.SortDirection = "Descending"
			default:
				return nil, apperrors.NewInvalidFilterSyntax(field, s, "sort direction must be Ascending or Descending")
			}
		default:
			return nil, apperrors.NewUnknownField(field)
		}
	}
	return q, nil
}

// resolveSubject resolves a department code or name. Resolution order: exact
// canonical code, exact full name, fuzzy. A fuzzy tie fails with
// AmbiguousFilterValue naming the candidates rather than guessing.
func resolveSubject(snap *vocab.Snapshot, input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", apperrors.NewInvalidFilterSyntax("subject", input, "subject must not be empty")
	}
	codes, _ := snap.ListValues(vocab.FieldSubject)
	if len(codes) == 0 && subjectCodeRe.MatchString(trimmed) {
		// Vocabulary not yet populated; accept a code-shaped input as-is.
		return strings.ToUpper(trimmed), nil
	}
	matches := snap.ResolveSubject(trimmed)
	switch len(matches) {
	case 0:
		return "", apperrors.NewInvalidFilterSyntax("subject", input, "unrecognized subject")
	case 1:
		return matches[0], nil
	default:
		return "", apperrors.NewAmbiguousFilterValue("subject", input, matches)
	}
}

// resolveCatalogNumber accepts exact numbers (trailing letters allowed) or a
// single-trailing-wildcard pattern; '*' anywhere else is a syntax error.
func resolveCatalogNumber(input string) (exact, prefix string, err error) {
	s := strings.TrimSpace(input)
	switch {
	case catalogExactRe.MatchString(s):
		return strings.ToUpper(s), "", nil
	case catalogPrefixRe.MatchString(s):
		return "", strings.TrimSuffix(s, "*"), nil
	case strings.Contains(s, "*"):
		return "", "", apperrors.NewInvalidFilterSyntax("catalogNumber", input, "wildcard must be the final character")
	default:
		return "", "", apperrors.NewInvalidFilterSyntax("catalogNumber", input, "expected digits with an optional letter suffix or trailing *")
	}
}

// resolveMeetingTime maps informal buckets to fixed minute ranges;
// out-of-range literal times pass through unchanged.
func resolveMeetingTime(input string) (*models.TimeWindow, error) {
	norm := vocab.NormalizeKeyword(input)
	if bucket, ok := meetingTimeBuckets[norm]; ok {
		w := bucket
		return &w, nil
	}
	parts := strings.SplitN(strings.TrimSpace(input), "-", 2)
	if len(parts) != 2 {
		return nil, apperrors.NewInvalidFilterSyntax("meetingTime", input, "expected morning, afternoon, evening, or HH:MM-HH:MM")
	}
	start, err := models.ParseClock(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := models.ParseClock(parts[1])
	if err != nil {
		return nil, err
	}
	w := models.TimeWindow{StartMinute: start, EndMinute: end}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

func resolveAcademicLevel(input string) (string, error) {
	switch vocab.NormalizeKeyword(input) {
	case "ugrd", "undergrad", "undergraduate":
		return "UGRD", nil
	case "grad", "graduate":
		return "GRAD", nil
	default:
		return "", apperrors.NewInvalidFilterSyntax("academicLevel", input, "academic level must be UGRD or GRAD")
	}
}

// resolveEnum resolves an informal value against one field's canonical set.
func resolveEnum(snap *vocab.Snapshot, vocabField, rawField, input string) (string, error) {
	if vals, _ := snap.ListValues(vocabField); len(vals) == 0 {
		// Vocabulary not yet populated; pass through trimmed.
		return strings.TrimSpace(input), nil
	}
	matches := snap.ResolveValue(vocabField, input)
	switch len(matches) {
	case 0:
		return "", apperrors.NewInvalidFilterSyntax(rawField, input, "no matching canonical value")
	case 1:
		return matches[0], nil
	default:
		return "", apperrors.NewAmbiguousFilterValue(rawField, input, matches)
	}
}

func asString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", apperrors.NewInvalidFilterSyntax(field, fmt.Sprintf("%v", v), "expected a string")
	}
	return s, nil
}

func asStringSlice(field string, v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, nil
		}
		return strings.Split(t, "/"), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, apperrors.NewInvalidFilterSyntax(field, fmt.Sprintf("%v", e), "expected a list of strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, apperrors.NewInvalidFilterSyntax(field, fmt.Sprintf("%v", v), "expected a list of strings")
	}
}

func asBool(field string, v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, apperrors.NewInvalidFilterSyntax(field, t, "expected a boolean")
		}
		return b, nil
	default:
		return false, apperrors.NewInvalidFilterSyntax(field, fmt.Sprintf("%v", v), "expected a boolean")
	}
}

func asInt(field string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		return int(t), nil
	case string:
		i, err := strconv.Atoi(t)
		if err != nil {
			return 0, apperrors.NewInvalidFilterSyntax(field, t, "expected an integer")
		}
		return i, nil
	default:
		return 0, apperrors.NewInvalidFilterSyntax(field, fmt.Sprintf("%v", v), "expected an integer")
	}
}
