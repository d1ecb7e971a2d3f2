package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/convert"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Rates at or above these thresholds are rendered as good or fair.
const (
	goodRate = 0.8
	fairRate = 0.5
)

var (
	goodColor = color.New(color.FgGreen)
	fairColor = color.New(color.FgYellow)
	poorColor = color.New(color.FgRed, color.Bold)
)

// Render writes the per package rates as a table followed by the total coverage.
func Render(w io.Writer, s convert.Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Package", "Line Rate", "Branch Rate", "Complexity"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range s.Packages {
		data = append(data, []string{
			p.Name,
			colorRate(p.LineRate),
			colorRate(p.BranchRate),
			p.Complexity,
		})
	}
	if len(data) > 0 {
		if err := table.Bulk(data); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if s.TotalErr != nil {
		_, err := fmt.Fprintf(w, "Total coverage: unknown (%s)\n", s.TotalErr)
		return err
	}
	total := rateColor(float64(s.Total) / 100).Sprintf("%d%%", s.Total)
	_, err := fmt.Fprintf(w, "Total coverage: %s\n", total)
	return err
}

func colorRate(rate string) string {
	value, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return rate
	}
	return rateColor(value).Sprint(rate)
}

func rateColor(rate float64) *color.Color {
	switch {
	case rate >= goodRate:
		return goodColor
	case rate >= fairRate:
		return fairColor
	default:
		return poorColor
	}
}
