package models

import (
	"testing"
)

func TestParseDays(t *testing.T) {
	mask, err := ParseDays([]string{"Mon", "wednesday", "FRI"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := Monday | Wednesday | Friday
	if mask != want {
		t.Errorf("Expected mask %v, got %v", want, mask)
	}

	if _, err := ParseDays([]string{"Mon", "Noday"}); err == nil {
		t.Error("Expected error for unknown day, got none")
	}
}

func TestDayMask_SubsetAndIntersect(t *testing.T) {
	mw := Monday | Wednesday
	mwf := Monday | Wednesday | Friday
	tt := Tuesday | Thursday

	if !mw.SubsetOf(mwf) {
		t.Error("Mon/Wed should be a subset of Mon/Wed/Fri")
	}
	if mwf.SubsetOf(mw) {
		t.Error("Mon/Wed/Fri should not be a subset of Mon/Wed")
	}
	if mwf.Intersects(tt) {
		t.Error("Mon/Wed/Fri should not intersect Tue/Thu")
	}
	if !mwf.Intersects(Friday | Saturday) {
		t.Error("Mon/Wed/Fri should intersect Fri/Sat")
	}
}

func TestDayMask_String(t *testing.T) {
	if got := (Monday | Wednesday).String(); got != "Mon/Wed" {
		t.Errorf("Expected Mon/Wed, got %s", got)
	}
	if got := DayMask(0).String(); got != "TBA" {
		t.Errorf("Expected TBA for empty mask, got %s", got)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"10:30", 630},
		{"23:59", 1439},
	}
	for _, test := range tests {
		got, err := ParseClock(test.in)
		if err != nil {
			t.Fatalf("ParseClock(%s) failed: %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("ParseClock(%s) = %d, want %d", test.in, got, test.want)
		}
	}

	for _, bad := range []string{"", "10", "25:00", "10:75", "ten:30"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("Expected error for %q, got none", bad)
		}
	}
}

func TestParseClock12(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"9:00 AM", 540},
		{"12:15 pm", 735},
		{"12:05 AM", 5},
		{"1:30 PM", 810},
		{"13:30", 810},
	}
	for _, test := range tests {
		got, err := ParseClock12(test.in)
		if err != nil {
			t.Fatalf("ParseClock12(%s) failed: %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("ParseClock12(%s) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestParseTimeWindowSpec(t *testing.T) {
	w, err := ParseTimeWindowSpec("Mon/Wed 10:00-11:15")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if w.Days != Monday|Wednesday {
		t.Errorf("Expected Mon/Wed days, got %v", w.Days)
	}
	if w.StartMinute != 600 || w.EndMinute != 675 {
		t.Errorf("Expected 600-675, got %d-%d", w.StartMinute, w.EndMinute)
	}

	bad := []string{
		"",
		"Mon",
		"Mon 10:00",
		"Mon 11:00-10:00",
		"Noday 10:00-11:00",
		"Mon 10:00-25:00",
	}
	for _, spec := range bad {
		if _, err := ParseTimeWindowSpec(spec); err == nil {
			t.Errorf("Expected error for %q, got none", spec)
		}
	}
}

func TestTimeWindow_Validate(t *testing.T) {
	good := TimeWindow{Days: Monday, StartMinute: 0, EndMinute: MinutesPerDay}
	if err := good.Validate(); err != nil {
		t.Errorf("Expected full-day window to validate, got %v", err)
	}

	bad := []TimeWindow{
		{StartMinute: 600, EndMinute: 600},
		{StartMinute: 700, EndMinute: 600},
		{StartMinute: -1, EndMinute: 600},
		{StartMinute: 600, EndMinute: MinutesPerDay + 1},
	}
	for _, w := range bad {
		if err := w.Validate(); err == nil {
			t.Errorf("Expected %v to fail validation", w)
		}
	}
}
