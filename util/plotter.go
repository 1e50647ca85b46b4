package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"class-search-server/models"
)

var plotDays = []struct {
	Label string
	Mask  models.DayMask
}{
	{"Mon", models.Monday},
	{"Tue", models.Tuesday},
	{"Wed", models.Wednesday},
	{"Thu", models.Thursday},
	{"Fri", models.Friday},
	{"Sat", models.Saturday},
	{"Sun", models.Sunday},
}

// PlotWeeklySchedule renders an HTML bar chart of how many sections meet on
// each weekday, split into morning/afternoon/evening series.
func PlotWeeklySchedule(w io.Writer, title string, sections []models.ClassSection) error {
	morning := make([]int, len(plotDays))
	afternoon := make([]int, len(plotDays))
	evening := make([]int, len(plotDays))

	for _, s := range sections {
		for _, block := range s.Meetings {
			bucket := bucketFor(block.StartMinute)
			for i, d := range plotDays {
				if block.Days&d.Mask == 0 {
					continue
				}
				switch bucket {
				case "morning":
					morning[i]++
				case "afternoon":
					afternoon[i]++
				default:
					evening[i]++
				}
			}
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Schedule",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	labels := make([]string, len(plotDays))
	for i, d := range plotDays {
		labels[i] = d.Label
	}
	bar.SetXAxis(labels).
		AddSeries("Morning", barData(morning)).
		AddSeries("Afternoon", barData(afternoon)).
		AddSeries("Evening", barData(evening))

	return bar.Render(w)
}

func bucketFor(startMinute int) string {
	switch {
	case startMinute < 12*60:
		return "morning"
	case startMinute < 17*60:
		return "afternoon"
	default:
		return "evening"
	}
}

func barData(counts []int) []opts.BarData {
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	return data
}
