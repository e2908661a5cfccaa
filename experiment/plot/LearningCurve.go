// Package plot renders experiment data as HTML charts
package plot

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LearningCurve writes an HTML page to filename with two line charts:
// the return of each episode and the length of each episode
func LearningCurve(filename string, returns []float64, lengths []int) error {
	page := components.NewPage()
	page.PageTitle = "Learning Curve"
	page.AddCharts(
		returnChart(returns),
		lengthChart(lengths),
	)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("learningCurve: could not create %v: %v",
			filename, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("learningCurve: could not render: %v", err)
	}
	return nil
}

func returnChart(returns []float64) *charts.Line {
	items := make([]opts.LineData, 0, len(returns))
	for _, r := range returns {
		items = append(items, opts.LineData{Value: r})
	}

	line := newLine("Episodic Return", "Return")
	line.SetXAxis(episodes(len(returns))).AddSeries("Return", items)
	return line
}

func lengthChart(lengths []int) *charts.Line {
	items := make([]opts.LineData, 0, len(lengths))
	for _, l := range lengths {
		items = append(items, opts.LineData{Value: l})
	}

	line := newLine("Episode Length", "Steps")
	line.SetXAxis(episodes(len(lengths))).AddSeries("Steps", items)
	return line
}

func newLine(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}

// episodes returns the x-axis labels 1, 2, ..., n
func episodes(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}
