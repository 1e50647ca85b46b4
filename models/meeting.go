package models

import (
	"fmt"
	"strconv"
	"strings"

	"class-search-server/apperrors"
)

// DayMask is a set of weekdays packed into a bitmask. Days are an unordered
// set; no contiguity is assumed.
type DayMask uint8

const (
	Monday DayMask = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const MinutesPerDay = 1440

var dayNames = []struct {
	Mask  DayMask
	Short string
	Long  string
}{
	{Monday, "Mon", "Monday"},
	{Tuesday, "Tue", "Tuesday"},
	{Wednesday, "Wed", "Wednesday"},
	{Thursday, "Thu", "Thursday"},
	{Friday, "Fri", "Friday"},
	{Saturday, "Sat", "Saturday"},
	{Sunday, "Sun", "Sunday"},
}

// ParseDay resolves a day name ("Mon" or "Monday", case-insensitive) to its mask bit.
func ParseDay(s string) (DayMask, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range dayNames {
		if name == strings.ToLower(d.Short) || name == strings.ToLower(d.Long) {
			return d.Mask, nil
		}
	}
	return 0, apperrors.NewInvalidFilterSyntax("days", s, "unknown day of week")
}

// ParseDays folds a list of day names into one mask.
func ParseDays(names []string) (DayMask, error) {
	var mask DayMask
	for _, n := range names {
		d, err := ParseDay(n)
		if err != nil {
			return 0, err
		}
		mask |= d
	}
	return mask, nil
}

// Days lists the short names of the set bits, Monday first.
func (m DayMask) Days() []string {
	var out []string
	for _, d := range dayNames {
		if m&d.Mask != 0 {
			out = append(out, d.Short)
		}
	}
	return out
}

func (m DayMask) String() string {
	if m == 0 {
		return "TBA"
	}
	return strings.Join(m.Days(), "/")
}

// Intersects reports whether two day sets share at least one day.
func (m DayMask) Intersects(other DayMask) bool {
	return m&other != 0
}

// SubsetOf reports whether every day in m is also in other.
func (m DayMask) SubsetOf(other DayMask) bool {
	return m&^other == 0
}

// MeetingBlock is one recurring weekly time range for a section. Minutes are
// since midnight, campus local time; EndMinute is exclusive. A block with an
// empty day set has no fixed meeting time and never matches day-based checks.
type MeetingBlock struct {
	Days        DayMask `json:"days"`
	StartMinute int     `json:"startMinute"`
	EndMinute   int     `json:"endMinute"`
}

func (b MeetingBlock) Window() TimeWindow {
	return TimeWindow{Days: b.Days, StartMinute: b.StartMinute, EndMinute: b.EndMinute}
}

func (b MeetingBlock) String() string {
	return fmt.Sprintf("%s %s-%s", b.Days, FormatClock(b.StartMinute), FormatClock(b.EndMinute))
}

// TimeWindow is caller input for conflict and availability queries: either a
// busy block or a free window, same shape and invariants as MeetingBlock.
type TimeWindow struct {
	Days        DayMask `json:"days"`
	StartMinute int     `json:"startMinute"`
	EndMinute   int     `json:"endMinute"`
}

// ParseClock parses a 24-hour "HH:MM" clock into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, apperrors.NewInvalidFilterSyntax("time", s, "expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, apperrors.NewInvalidFilterSyntax("time", s, "hour out of range")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, apperrors.NewInvalidFilterSyntax("time", s, "minute out of range")
	}
	min := h*60 + m
	if min > MinutesPerDay {
		return 0, apperrors.NewInvalidFilterSyntax("time", s, "time past end of day")
	}
	return min, nil
}

// ParseClock12 parses the index's 12-hour form ("9:00 AM", "12:15 pm").
func ParseClock12(s string) (int, error) {
	raw := strings.TrimSpace(s)
	upper := strings.ToUpper(raw)
	pm := strings.HasSuffix(upper, "PM")
	am := strings.HasSuffix(upper, "AM")
	if !pm && !am {
		return ParseClock(raw)
	}
	min, err := ParseClock(strings.TrimSpace(upper[:len(upper)-2]))
	if err != nil {
		return 0, err
	}
	h := min / 60
	if pm && h < 12 {
		min += 12 * 60
	}
	if am && h == 12 {
		min -= 12 * 60
	}
	return min, nil
}

// FormatClock renders minutes since midnight as 24-hour "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseTimeWindowSpec parses the compact window form shared by the REST and
// MCP surfaces: "Mon/Wed 10:00-11:15". Days are '/'-separated, times 24-hour.
func ParseTimeWindowSpec(spec string) (TimeWindow, error) {
	fields := strings.Fields(strings.TrimSpace(spec))
	if len(fields) != 2 {
		return TimeWindow{}, apperrors.NewInvalidFilterSyntax("timeWindow", spec, "expected \"Days HH:MM-HH:MM\" (e.g. \"Mon/Wed 10:00-11:15\")")
	}
	days, err := ParseDays(strings.Split(fields[0], "/"))
	if err != nil {
		return TimeWindow{}, err
	}
	rangeParts := strings.SplitN(fields[1], "-", 2)
	if len(rangeParts) != 2 {
		return TimeWindow{}, apperrors.NewInvalidFilterSyntax("timeWindow", spec, "expected a HH:MM-HH:MM range")
	}
	start, err := ParseClock(rangeParts[0])
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := ParseClock(rangeParts[1])
	if err != nil {
		return TimeWindow{}, err
	}
	w := TimeWindow{Days: days, StartMinute: start, EndMinute: end}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

// ParseTimeWindowSpecs parses a list of compact window specs.
func ParseTimeWindowSpecs(specs []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(specs))
	for _, s := range specs {
		w, err := ParseTimeWindowSpec(s)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// Validate enforces 0 <= start < end <= 1440.
func (w TimeWindow) Validate() error {
	if w.StartMinute < 0 || w.EndMinute > MinutesPerDay || w.StartMinute >= w.EndMinute {
		return apperrors.NewInvalidFilterSyntax("timeWindow",
			fmt.Sprintf("%s-%s", FormatClock(w.StartMinute), FormatClock(w.EndMinute)),
			"window start must be before end and inside a single day")
	}
	return nil
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s %s-%s", w.Days, FormatClock(w.StartMinute), FormatClock(w.EndMinute))
}
