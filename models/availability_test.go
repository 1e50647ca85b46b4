package models

import (
	"testing"
)

func TestAvailabilityFromSection(t *testing.T) {
	tests := []struct {
		name    string
		section ClassSection
		status  AvailabilityStatus
	}{
		{
			name:    "open seats",
			section: ClassSection{SeatsCapacity: 40, SeatsFilled: 25, WaitlistCapacity: 10},
			status:  StatusOpen,
		},
		{
			name:    "full with waitlist room",
			section: ClassSection{SeatsCapacity: 30, SeatsFilled: 30, WaitlistCapacity: 10, WaitlistFilled: 3},
			status:  StatusFullWaitlistOpen,
		},
		{
			name:    "full with exhausted waitlist",
			section: ClassSection{SeatsCapacity: 30, SeatsFilled: 30, WaitlistCapacity: 10, WaitlistFilled: 10},
			status:  StatusFullWaitlistClosed,
		},
		{
			name:    "full with no waitlist",
			section: ClassSection{SeatsCapacity: 30, SeatsFilled: 30},
			status:  StatusClosed,
		},
		{
			name:    "no capacity at all",
			section: ClassSection{},
			status:  StatusClosed,
		},
		{
			name:    "over-enrolled counts as full",
			section: ClassSection{SeatsCapacity: 30, SeatsFilled: 32, WaitlistCapacity: 5, WaitlistFilled: 0},
			status:  StatusFullWaitlistOpen,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := AvailabilityFromSection(test.section)
			if a.Status != test.status {
				t.Errorf("Expected status %s, got %s", test.status, a.Status)
			}
			if a.SeatsOpen < 0 || a.WaitlistOpen < 0 {
				t.Errorf("Open counts must not go negative: %+v", a)
			}
		})
	}
}

func TestAvailabilityFromSection_Counts(t *testing.T) {
	s := ClassSection{
		TermCode:         "1263",
		ClassNumber:      "20001",
		SeatsCapacity:    30,
		SeatsFilled:      30,
		WaitlistCapacity: 10,
		WaitlistFilled:   3,
	}

	a := AvailabilityFromSection(s)

	if a.WaitlistOpen != 7 {
		t.Errorf("Expected 7 waitlist spots, got %d", a.WaitlistOpen)
	}
	if a.Enrolled != 30 || a.Capacity != 30 {
		t.Errorf("Raw counts should pass through: %+v", a)
	}
	if a.TermDescription != "Spring 2026" {
		t.Errorf("Expected Spring 2026, got %s", a.TermDescription)
	}
}
