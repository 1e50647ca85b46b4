package models

// AvailabilityStatus classifies a section's enrollment state.
type AvailabilityStatus string

const (
	StatusOpen               AvailabilityStatus = "Open"
	StatusFullWaitlistOpen   AvailabilityStatus = "Full-WaitlistOpen"
	StatusFullWaitlistClosed AvailabilityStatus = "Full-WaitlistClosed"
	StatusClosed             AvailabilityStatus = "Closed"
)

// Availability is the seat/waitlist report for one section, derived purely
// from the capacity fields.
type Availability struct {
	TermCode        string             `json:"termCode"`
	TermDescription string             `json:"termDescription"`
	ClassNumber     string             `json:"classNumber"`
	Status          AvailabilityStatus `json:"status"`
	SeatsOpen       int                `json:"seatsOpen"`
	WaitlistOpen    int                `json:"waitlistOpen"`

	Capacity         int `json:"capacity"`
	Enrolled         int `json:"enrolled"`
	WaitlistCapacity int `json:"waitlistCapacity"`
	WaitlistEnrolled int `json:"waitlistEnrolled"`
}

// AvailabilityFromSection derives the availability report. A section with no
// seat capacity at all, or full with no waitlist, reports Closed; a full
// section with an exhausted waitlist reports Full-WaitlistClosed.
func AvailabilityFromSection(s ClassSection) Availability {
	a := Availability{
		TermCode:         s.TermCode,
		TermDescription:  FormatTermDescription(s.TermCode),
		ClassNumber:      s.ClassNumber,
		Capacity:         s.SeatsCapacity,
		Enrolled:         s.SeatsFilled,
		WaitlistCapacity: s.WaitlistCapacity,
		WaitlistEnrolled: s.WaitlistFilled,
	}
	if open := s.SeatsCapacity - s.SeatsFilled; open > 0 {
		a.SeatsOpen = open
	}
	if open := s.WaitlistCapacity - s.WaitlistFilled; open > 0 {
		a.WaitlistOpen = open
	}

	switch {
	case s.SeatsCapacity == 0:
		a.Status = StatusClosed
	case a.SeatsOpen > 0:
		a.Status = StatusOpen
	case s.WaitlistCapacity == 0:
		a.Status = StatusClosed
	case a.WaitlistOpen > 0:
		a.Status = StatusFullWaitlistOpen
	default:
		a.Status = StatusFullWaitlistClosed
	}
	return a
}
