package models

// CanonicalQuery is the normalizer's output: every field holds an exact,
// index-ready value. Use zero-values to omit, pointer fields for optional
// numerics.
type CanonicalQuery struct {
	Term          Term
	Query         string
	Subject       string
	CatalogNumber string // exact match
	CatalogPrefix string // resolved trailing-wildcard pattern
	Instructor    string

	AcademicLevel   string
	InstructionMode string
	Campus          string
	Session         string
	ClassType       string
	FeeStructure    string
	CourseID        string

	Credits    string
	MinCredits *int
	MaxCredits *int

	Days          DayMask
	MeetingWindow *TimeWindow // bucket or literal time range, days may be empty

	Attributes              []string
	RequirementDesignations []string
	OpenSeatsOnly           bool

	SortBy        string
	SortDirection string
}

// ClassSearchRequest mirrors the index API's search payload.
type ClassSearchRequest struct {
	Term           string `json:"term"`
	Page           int    `json:"page"`
	ResultsPerPage int    `json:"resultsPerPage"`

	Query         string `json:"query,omitempty"`
	Subject       string `json:"subjectCode,omitempty"`
	CatalogNumber string `json:"catalogNumber,omitempty"`
	CatalogPrefix string `json:"catalogNumberPrefix,omitempty"`
	Instructor    string `json:"instructor,omitempty"`

	AcademicLevel   string `json:"academicLevel,omitempty"`
	InstructionMode string `json:"instructionMode,omitempty"`
	Campus          string `json:"campus,omitempty"`
	Session         string `json:"session,omitempty"`
	ClassType       string `json:"classType,omitempty"`
	FeeStructure    string `json:"feeStructure,omitempty"`
	CourseID        string `json:"courseId,omitempty"`

	Credits    string `json:"credits,omitempty"`
	MinCredits *int   `json:"minCredits,omitempty"`
	MaxCredits *int   `json:"maxCredits,omitempty"`

	Days             []string `json:"days,omitempty"`
	MeetingTimeStart *int     `json:"meetingTimeStart,omitempty"`
	MeetingTimeEnd   *int     `json:"meetingTimeEnd,omitempty"`

	Attributes             []string `json:"courseAttributeValues,omitempty"`
	RequirementDesignation string   `json:"requirementDesignation,omitempty"`
	AvailableSeats         string   `json:"availableSeats,omitempty"`

	SortBy        string `json:"sortBy,omitempty"`
	SortDirection string `json:"sortDirection,omitempty"`
}

// ClassSearchResponse is the index API's search reply.
type ClassSearchResponse struct {
	TotalHits int             `json:"totalHits"`
	Documents []ClassDocument `json:"documents"`
}

// FilterOption is one enumerated value for a filterable field, with the
// number of documents carrying it.
type FilterOption struct {
	Value    string `json:"key"`
	DocCount int    `json:"docCount"`
}

// FilterOptionsResponse is the index API's distinct-value enumeration reply.
type FilterOptionsResponse struct {
	Options []FilterOption `json:"options"`
}
