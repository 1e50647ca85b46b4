package models

import (
	"testing"
)

func TestSectionFromDocument(t *testing.T) {
	doc := ClassDocument{
		Subject:          "CS",
		CatalogNumber:    "121",
		SectionNumber:    "001",
		ClassNumber:      "10001",
		Term:             "1263",
		CourseTitle:      "Computer Science I",
		CourseCredits:    3,
		Instructors:      []Instructor{{FirstName: "Amit", LastName: "Jain"}, {FirstName: "Shane", LastName: "Panter"}},
		MeetingDays:      []string{"Mon", "Wed", "Fri"},
		MeetingTimeStart: "10:30 AM",
		MeetingTimeEnd:   "11:45 AM",
		BuildingRoom:     "CCP 221",
		InstructionMode:  "In Person",
		AcademicCareer:   "UGRD",
		ClassCapacity:    40,
		EnrollmentTotal:  25,
	}

	s := SectionFromDocument(doc)

	if s.Instructor != "Amit Jain, Shane Panter" {
		t.Errorf("Expected joined instructor names, got %q", s.Instructor)
	}
	if s.Location != "CCP 221" {
		t.Errorf("Expected building room as location, got %q", s.Location)
	}
	if len(s.Meetings) != 1 {
		t.Fatalf("Expected 1 meeting block, got %d", len(s.Meetings))
	}
	m := s.Meetings[0]
	if m.Days != Monday|Wednesday|Friday {
		t.Errorf("Expected MWF days, got %v", m.Days)
	}
	if m.StartMinute != 630 || m.EndMinute != 705 {
		t.Errorf("Expected 630-705, got %d-%d", m.StartMinute, m.EndMinute)
	}
	if !s.HasOpenSeats() {
		t.Error("Expected open seats with 25/40 filled")
	}
}

func TestSectionFromDocument_NoMeetings(t *testing.T) {
	doc := ClassDocument{
		Subject:         "MATH",
		CatalogNumber:   "175",
		ClassNumber:     "10004",
		Location:        "Online",
		InstructionMode: "Online",
	}

	s := SectionFromDocument(doc)

	if len(s.Meetings) != 0 {
		t.Errorf("Expected no meeting blocks, got %d", len(s.Meetings))
	}
	if s.Instructor != "TBA" {
		t.Errorf("Expected TBA instructor, got %q", s.Instructor)
	}
	if s.Location != "Online" {
		t.Errorf("Expected location fallback, got %q", s.Location)
	}
}

func TestSectionFromDocument_BadMeetingDropped(t *testing.T) {
	doc := ClassDocument{
		ClassNumber:      "10005",
		MeetingDays:      []string{"Mon"},
		MeetingTimeStart: "11:45 AM",
		MeetingTimeEnd:   "10:30 AM",
	}

	s := SectionFromDocument(doc)
	if len(s.Meetings) != 0 {
		t.Errorf("Expected inverted time range to be dropped, got %v", s.Meetings)
	}
}

func TestHasOpenSeats_OverCapacity(t *testing.T) {
	s := ClassSection{SeatsCapacity: 30, SeatsFilled: 32}
	if s.HasOpenSeats() {
		t.Error("Over-enrolled section should report as full")
	}
}
