package vocab

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/agnivade/levenshtein"
)

// Canonical filterable fields.
const (
	FieldSubject                 = "subject"
	FieldInstructionMode         = "instructionMode"
	FieldAttributes              = "attributes"
	FieldRequirementDesignations = "requirementDesignations"
	FieldAcademicLevel           = "academicLevel"
	FieldCampus                  = "campus"
	FieldSession                 = "session"
)

// EnumerableFields are refreshed from the index's distinct-value enumeration.
var EnumerableFields = []string{
	FieldSubject,
	FieldInstructionMode,
	FieldAttributes,
	FieldRequirementDesignations,
	FieldAcademicLevel,
	FieldCampus,
	FieldSession,
}

// indexFieldNames maps engine field names to the index's document fields.
var indexFieldNames = map[string]string{
	FieldSubject:                 "subject",
	FieldInstructionMode:         "instructionMode",
	FieldAttributes:              "courseAttributeValues",
	FieldRequirementDesignations: "requirementDesignation",
	FieldAcademicLevel:           "academicLevel",
	FieldCampus:                  "campus",
	FieldSession:                 "sessionCode",
}

// IndexFieldName returns the index document field backing an engine field.
func IndexFieldName(field string) (string, bool) {
	name, ok := indexFieldNames[field]
	return name, ok
}

// fieldPriority breaks similarity-score ties during discovery:
// attributes > requirementDesignations > subject > instructionMode > rest.
var fieldPriority = map[string]int{
	FieldAttributes:              0,
	FieldRequirementDesignations: 1,
	FieldSubject:                 2,
	FieldInstructionMode:         3,
}

func priorityOf(field string) int {
	if p, ok := fieldPriority[field]; ok {
		return p
	}
	return len(fieldPriority)
}

// Fuzzy-match tuning. SimilarityThreshold is the minimum score accepted as a
// match; two candidates within AmbiguityBand of the best are reported as
// ambiguous rather than guessed between.
const (
	SimilarityThreshold = 0.72
	AmbiguityBand       = 0.05
	containmentFloor    = 0.60
)

// Suggestion is one ranked discovery result.
type Suggestion struct {
	Field string  `json:"field"`
	Value string  `json:"value"`
	Score float64 `json:"score"`
}

// Snapshot is an immutable view of the controlled vocabulary. Readers always
// see a complete snapshot; refresh swaps the whole value, never mutates.
type Snapshot struct {
	// Values holds the sorted canonical value set per field.
	Values map[string][]string
	// SubjectNames maps normalized full department names to canonical codes.
	SubjectNames map[string]string
	// Keywords maps normalized free-text keywords to maintained suggestions.
	Keywords map[string][]Suggestion
}

// Store holds the current vocabulary snapshot behind an atomic reference.
type Store struct {
	snap atomic.Value
}

// NewStore seeds a store with the builtin keyword table and no index-derived
// values; the refresher populates the rest.
func NewStore() *Store {
	s := &Store{}
	s.Swap(BuildSnapshot(nil))
	return s
}

// Snapshot returns the current immutable snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load().(*Snapshot)
}

// Swap installs a new snapshot. Safe for concurrent readers.
func (s *Store) Swap(snap *Snapshot) {
	s.snap.Store(snap)
}

// BuildSnapshot assembles an immutable snapshot from index-derived value
// sets, merging in the maintained keyword table and subject-name synonyms.
func BuildSnapshot(values map[string][]string) *Snapshot {
	snap := &Snapshot{
		Values:       make(map[string][]string, len(values)),
		SubjectNames: make(map[string]string, len(builtinSubjectNames)),
		Keywords:     make(map[string][]Suggestion, len(builtinKeywords)),
	}
	for field, vals := range values {
		seen := make(map[string]struct{}, len(vals))
		out := make([]string, 0, len(vals))
		for _, v := range vals {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
		sort.Strings(out)
		snap.Values[field] = out
	}
	// Every enumerable field is present even before the first refresh, so a
	// valid field lists empty instead of reading as unknown.
	for _, field := range EnumerableFields {
		if _, ok := snap.Values[field]; !ok {
			snap.Values[field] = []string{}
		}
	}
	for name, code := range builtinSubjectNames {
		snap.SubjectNames[NormalizeKeyword(name)] = code
	}
	for keyword, suggestions := range builtinKeywords {
		snap.Keywords[NormalizeKeyword(keyword)] = suggestions
	}
	return snap
}

// AddKeywords merges extra keyword entries into a snapshot before it is
// swapped in. Entries override builtins with the same keyword, which lets
// operator-maintained rows in the cache win.
func (snap *Snapshot) AddKeywords(extra map[string][]Suggestion) {
	for keyword, suggestions := range extra {
		snap.Keywords[NormalizeKeyword(keyword)] = suggestions
	}
}

// NormalizeKeyword lower-cases and collapses internal whitespace.
func NormalizeKeyword(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Similarity scores how closely an input matches a canonical value, in
// [0, 1]. Exact match after normalization is 1; containment gets at least
// the containment floor; otherwise normalized edit distance.
func Similarity(input, candidate string) float64 {
	a := NormalizeKeyword(input)
	b := NormalizeKeyword(candidate)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	score := 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
	if strings.Contains(b, a) || strings.Contains(a, b) {
		shortest := len(a) + len(b) - longest
		contained := containmentFloor + (1-containmentFloor)*float64(shortest)/float64(longest)
		if contained > score {
			score = contained
		}
	}
	return score
}

// ListValues returns the canonical value set for one field.
func (snap *Snapshot) ListValues(field string) ([]string, bool) {
	vals, ok := snap.Values[field]
	return vals, ok
}

// ResolveSubject resolves a department code or name to canonical code(s).
// Resolution order: exact code, exact full name, fuzzy. The returned slice
// has one element for an unambiguous match, several for a tie within the
// ambiguity band, and none when nothing clears the threshold.
func (snap *Snapshot) ResolveSubject(input string) []string {
	norm := NormalizeKeyword(input)
	if norm == "" {
		return nil
	}
	codes := snap.Values[FieldSubject]

	for _, code := range codes {
		if strings.EqualFold(code, norm) {
			return []string{code}
		}
	}
	if code, ok := snap.SubjectNames[norm]; ok {
		return []string{code}
	}

	type scored struct {
		code  string
		score float64
	}
	var candidates []scored
	for _, code := range codes {
		s := Similarity(norm, code)
		if name := subjectNameFor(code); name != "" {
			if ns := Similarity(norm, name); ns > s {
				s = ns
			}
		}
		if s >= SimilarityThreshold {
			candidates = append(candidates, scored{code, s})
		}
	}
	// Synonym names whose codes the index has not (yet) enumerated.
	for name, code := range snap.SubjectNames {
		if s := Similarity(norm, name); s >= SimilarityThreshold {
			candidates = append(candidates, scored{code, s})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].code < candidates[j].code
	})
	best := candidates[0].score
	var out []string
	seen := make(map[string]struct{})
	for _, c := range candidates {
		if best-c.score > AmbiguityBand {
			break
		}
		if _, dup := seen[c.code]; dup {
			continue
		}
		seen[c.code] = struct{}{}
		out = append(out, c.code)
	}
	return out
}

// ResolveValue resolves an informal value against one field's canonical set,
// with the same exact-then-fuzzy order and ambiguity handling as subjects.
func (snap *Snapshot) ResolveValue(field, input string) []string {
	norm := NormalizeKeyword(input)
	if norm == "" {
		return nil
	}
	vals := snap.Values[field]
	for _, v := range vals {
		if NormalizeKeyword(v) == norm {
			return []string{v}
		}
	}
	type scored struct {
		value string
		score float64
	}
	var candidates []scored
	for _, v := range vals {
		if s := Similarity(norm, v); s >= SimilarityThreshold {
			candidates = append(candidates, scored{v, s})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].value < candidates[j].value
	})
	best := candidates[0].score
	var out []string
	for _, c := range candidates {
		if best-c.score > AmbiguityBand {
			break
		}
		out = append(out, c.value)
	}
	return out
}

// Suggest maps a free-text keyword to ranked (field, value) pairs: the
// maintained keyword table first, then fuzzy matching across all canonical
// values, ranked by score descending with field-priority tie-breaks.
func (snap *Snapshot) Suggest(keyword string) []Suggestion {
	norm := NormalizeKeyword(keyword)
	if norm == "" {
		return nil
	}
	if suggestions, ok := snap.Keywords[norm]; ok {
		out := make([]Suggestion, len(suggestions))
		copy(out, suggestions)
		return out
	}

	var out []Suggestion
	for _, field := range EnumerableFields {
		for _, v := range snap.Values[field] {
			if s := Similarity(norm, v); s >= SimilarityThreshold {
				out = append(out, Suggestion{Field: field, Value: v, Score: s})
			}
		}
	}
	if code, ok := snap.SubjectNames[norm]; ok {
		out = append(out, Suggestion{Field: FieldSubject, Value: code, Score: 1})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if pi, pj := priorityOf(out[i].Field), priorityOf(out[j].Field); pi != pj {
			return pi < pj
		}
		return out[i].Value < out[j].Value
	})
	return out
}
