package models

import (
	"strings"
)

// Instructor mirrors the index's nested instructor object.
type Instructor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (i Instructor) DisplayName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// ClassDocument is the raw section document as stored in the search index.
// Field names follow the index schema; the engine never writes these back.
type ClassDocument struct {
	Subject                string       `json:"subject"`
	CatalogNumber          string       `json:"catalogNumber"`
	SectionNumber          string       `json:"sectionNumber"`
	ClassNumber            string       `json:"classNumber"`
	Term                   string       `json:"term"`
	CourseTitle            string       `json:"courseTitle"`
	Description            string       `json:"description,omitempty"`
	CourseCredits          float64      `json:"courseCredits"`
	Instructors            []Instructor `json:"instructors"`
	MeetingDays            []string     `json:"meetingDays"`
	MeetingTimeStart       string       `json:"meetingTimeStart"`
	MeetingTimeEnd         string       `json:"meetingTimeEnd"`
	BuildingRoom           string       `json:"buildingRoom,omitempty"`
	Location               string       `json:"location,omitempty"`
	InstructionMode        string       `json:"instructionMode"`
	AcademicCareer         string       `json:"academicCareer"`
	ClassCapacity          int          `json:"classCapacity"`
	EnrollmentTotal        int          `json:"enrollmentTotal"`
	AvailableSeats         int          `json:"availableSeats"`
	WaitListCapacity       int          `json:"waitListCapacity"`
	WaitListTotal          int          `json:"waitListTotal"`
	CourseAttributeValues  []string     `json:"courseAttributeValues,omitempty"`
	RequirementDesignation string       `json:"requirementDesignation,omitempty"`
	SessionCode            string       `json:"sessionCode,omitempty"`
	Campus                 string       `json:"campus,omitempty"`
	ClassStatus            string       `json:"classStatus,omitempty"`
}

// ClassSection is one scheduled offering of a course, normalized from a
// ClassDocument snapshot. Sourced read-only from the index; never mutated.
type ClassSection struct {
	Subject                 string         `json:"subject"`
	CatalogNumber           string         `json:"catalogNumber"`
	SectionNumber           string         `json:"sectionNumber"`
	TermCode                string         `json:"termCode"`
	ClassNumber             string         `json:"classNumber"`
	Title                   string         `json:"title"`
	Description             string         `json:"description,omitempty"`
	Instructor              string         `json:"instructor"`
	Credits                 float64        `json:"credits"`
	InstructionMode         string         `json:"instructionMode"`
	AcademicLevel           string         `json:"academicLevel"`
	Location                string         `json:"location,omitempty"`
	Attributes              []string       `json:"attributes,omitempty"`
	RequirementDesignations []string       `json:"requirementDesignations,omitempty"`
	SeatsCapacity           int            `json:"seatsCapacity"`
	SeatsFilled             int            `json:"seatsFilled"`
	WaitlistCapacity        int            `json:"waitlistCapacity"`
	WaitlistFilled          int            `json:"waitlistFilled"`
	Meetings                []MeetingBlock `json:"meetings,omitempty"`
}

// HasOpenSeats tolerates source data where filled exceeds capacity: such a
// section is treated as full, not as an error.
func (s ClassSection) HasOpenSeats() bool {
	return s.SeatsFilled < s.SeatsCapacity
}

// SectionFromDocument converts an index document into a section. Meeting
// blocks that fail to parse are dropped rather than failing the whole
// section; a section without blocks is asynchronous.
func SectionFromDocument(doc ClassDocument) ClassSection {
	instructor := "TBA"
	var names []string
	for _, i := range doc.Instructors {
		if n := i.DisplayName(); n != "" {
			names = append(names, n)
		}
	}
	if len(names) > 0 {
		instructor = strings.Join(names, ", ")
	}

	location := doc.BuildingRoom
	if location == "" {
		location = doc.Location
	}

	var designations []string
	if doc.RequirementDesignation != "" {
		designations = []string{doc.RequirementDesignation}
	}

	return ClassSection{
		Subject:                 doc.Subject,
		CatalogNumber:           doc.CatalogNumber,
		SectionNumber:           doc.SectionNumber,
		TermCode:                doc.Term,
		ClassNumber:             doc.ClassNumber,
		Title:                   doc.CourseTitle,
		Description:             doc.Description,
		Instructor:              instructor,
		Credits:                 doc.CourseCredits,
		InstructionMode:         doc.InstructionMode,
		AcademicLevel:           doc.AcademicCareer,
		Location:                location,
		Attributes:              doc.CourseAttributeValues,
		RequirementDesignations: designations,
		SeatsCapacity:           doc.ClassCapacity,
		SeatsFilled:             doc.EnrollmentTotal,
		WaitlistCapacity:        doc.WaitListCapacity,
		WaitlistFilled:          doc.WaitListTotal,
		Meetings:                meetingBlocksFromDocument(doc),
	}
}

func meetingBlocksFromDocument(doc ClassDocument) []MeetingBlock {
	if len(doc.MeetingDays) == 0 || doc.MeetingTimeStart == "" || doc.MeetingTimeEnd == "" {
		return nil
	}
	days, err := ParseDays(doc.MeetingDays)
	if err != nil {
		return nil
	}
	start, err := ParseClock12(doc.MeetingTimeStart)
	if err != nil {
		return nil
	}
	end, err := ParseClock12(doc.MeetingTimeEnd)
	if err != nil || start >= end {
		return nil
	}
	return []MeetingBlock{{Days: days, StartMinute: start, EndMinute: end}}
}

// SectionsFromDocuments converts a batch of index documents.
func SectionsFromDocuments(docs []ClassDocument) []ClassSection {
	sections := make([]ClassSection, 0, len(docs))
	for _, d := range docs {
		sections = append(sections, SectionFromDocument(d))
	}
	return sections
}

// SectionPage is one page of search results.
type SectionPage struct {
	TermCode        string         `json:"termCode"`
	TermDescription string         `json:"termDescription"`
	TotalHits       int            `json:"totalHits"`
	Page            int            `json:"page"`
	ResultsPerPage  int            `json:"resultsPerPage"`
	Showing         string         `json:"showing,omitempty"`
	Sections        []ClassSection `json:"sections"`
}
