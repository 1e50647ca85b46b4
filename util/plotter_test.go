package util

import (
	"bytes"
	"strings"
	"testing"

	"class-search-server/models"
)

func TestPlotWeeklySchedule_Renders(t *testing.T) {
	sections := []models.ClassSection{
		{
			ClassNumber: "10001",
			Meetings: []models.MeetingBlock{
				{Days: models.Monday | models.Wednesday, StartMinute: 630, EndMinute: 705},
			},
		},
		{
			ClassNumber: "10003",
			Meetings: []models.MeetingBlock{
				{Days: models.Tuesday, StartMinute: 1080, EndMinute: 1245},
			},
		},
		{ClassNumber: "10004"}, // no meetings, must not break plotting
	}

	var buf bytes.Buffer
	if err := PlotWeeklySchedule(&buf, "Weekly schedule load, term 1263", sections); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Weekly schedule load, term 1263") {
		t.Error("Rendered chart should contain the title")
	}
	for _, series := range []string{"Morning", "Afternoon", "Evening"} {
		if !strings.Contains(html, series) {
			t.Errorf("Rendered chart should contain the %s series", series)
		}
	}
}
