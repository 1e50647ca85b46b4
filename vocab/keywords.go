package vocab

// builtinSubjectNames maps full department names (and common synonyms) to
// canonical subject codes. Keyword mappings are a maintained lookup table,
// not derived from indexed values: informal phrasing cannot be inferred from
// the index's canonical vocabulary.
var builtinSubjectNames = map[string]string{
	"computer science":       "CS",
	"comp sci":               "CS",
	"mathematics":            "MATH",
	"math":                   "MATH",
	"biology":                "BIOL",
	"chemistry":              "CHEM",
	"physics":                "PHYS",
	"english":                "ENGL",
	"history":                "HIST",
	"psychology":             "PSYC",
	"sociology":              "SOC",
	"economics":              "ECON",
	"political science":      "POLS",
	"philosophy":             "PHIL",
	"communication":          "COMM",
	"business":               "BUS",
	"accounting":             "ACCT",
	"nursing":                "NURS",
	"kinesiology":            "KINES",
	"mechanical engineering": "ME",
	"electrical engineering": "ECE",
	"civil engineering":      "CE",
	"geosciences":            "GEOS",
	"spanish":                "SPAN",
	"french":                 "FREN",
	"german":                 "GERM",
	"art":                    "ART",
	"music":                  "MUS",
	"theatre":                "THEA",
	"anthropology":           "ANTH",
	"criminal justice":       "CJ",
}

// builtinKeywords maps informal requirement phrasing to canonical filter
// values. Score 1.0 entries are curated exact meanings; lower scores mark
// looser associations kept in ranked order.
var builtinKeywords = map[string][]Suggestion{
	"gen-ed": {
		{Field: FieldAttributes, Value: "Foundations of Humanities", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Social Sciences", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Mathematics", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Natural Sciences", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Arts", Score: 1},
	},
	"general education": {
		{Field: FieldAttributes, Value: "Foundations of Humanities", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Social Sciences", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Mathematics", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Natural Sciences", Score: 1},
		{Field: FieldAttributes, Value: "Foundations of Arts", Score: 1},
	},
	"honors": {
		{Field: FieldRequirementDesignations, Value: "HON", Score: 1},
	},
	"service learning": {
		{Field: FieldRequirementDesignations, Value: "SERV", Score: 1},
	},
	"writing": {
		{Field: FieldAttributes, Value: "Communication in Writing", Score: 1},
		{Field: FieldAttributes, Value: "Writing Emphasis", Score: 0.9},
	},
	"writing intensive": {
		{Field: FieldAttributes, Value: "Writing Emphasis", Score: 1},
	},
	"online": {
		{Field: FieldInstructionMode, Value: "Online", Score: 1},
	},
	"remote": {
		{Field: FieldInstructionMode, Value: "Remote", Score: 1},
		{Field: FieldInstructionMode, Value: "Online", Score: 0.9},
	},
	"in person": {
		{Field: FieldInstructionMode, Value: "In-Person", Score: 1},
	},
	"face to face": {
		{Field: FieldInstructionMode, Value: "In-Person", Score: 1},
	},
	"hybrid": {
		{Field: FieldInstructionMode, Value: "Hybrid", Score: 1},
	},
	"undergrad": {
		{Field: FieldAcademicLevel, Value: "UGRD", Score: 1},
	},
	"undergraduate": {
		{Field: FieldAcademicLevel, Value: "UGRD", Score: 1},
	},
	"graduate": {
		{Field: FieldAcademicLevel, Value: "GRAD", Score: 1},
	},
	"grad school": {
		{Field: FieldAcademicLevel, Value: "GRAD", Score: 1},
	},
}

// subjectNameFor returns a full name for a subject code, or "" when the
// maintained table has none.
func subjectNameFor(code string) string {
	for name, c := range builtinSubjectNames {
		if c == code {
			return name
		}
	}
	return ""
}
