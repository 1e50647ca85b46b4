// Package schedule implements the meeting-time overlap and containment
// arithmetic used for conflict detection and availability-window search.
// Pure functions, no external calls.
package schedule

import (
	"class-search-server/models"
)

// Overlaps reports whether two windows collide: they share at least one day
// and their minute ranges intersect. Touching endpoints (a.end == b.start)
// do not count as overlap.
func Overlaps(a, b models.TimeWindow) bool {
	if !a.Days.Intersects(b.Days) {
		return false
	}
	return a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
}

// ConflictsWithAny reports whether any meeting block of the section overlaps
// any busy block. A section with no blocks (asynchronous) never conflicts.
func ConflictsWithAny(section models.ClassSection, busy []models.TimeWindow) bool {
	for _, block := range section.Meetings {
		if block.Days == 0 {
			// No fixed meeting time; never matches a day-based check.
			continue
		}
		for _, b := range busy {
			if Overlaps(block.Window(), b) {
				return true
			}
		}
	}
	return false
}

// FitsWithinAny reports whether every meeting block of the section is fully
// contained in at least one free window: the block's days a subset of the
// window's days, start no earlier, end no later. Containment is evaluated
// per block, so a section spanning two windows on different days still
// qualifies. A section with no blocks always fits.
func FitsWithinAny(section models.ClassSection, free []models.TimeWindow) bool {
	for _, block := range section.Meetings {
		if block.Days == 0 {
			continue
		}
		if !containedInAny(block, free) {
			return false
		}
	}
	return true
}

func containedInAny(block models.MeetingBlock, windows []models.TimeWindow) bool {
	for _, w := range windows {
		if block.Days.SubsetOf(w.Days) &&
			block.StartMinute >= w.StartMinute &&
			block.EndMinute <= w.EndMinute {
			return true
		}
	}
	return false
}
