// Package report renders Statistics as a plain-text report.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkordes/travel-tracker/internal/domain"
)

const displayDate = "Jan 2, 2006"

// Render writes a report for s to w. generatedAt is printed in the header.
func Render(w io.Writer, s domain.Statistics, generatedAt time.Time) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("TRAVEL REPORT\n")
	p.Fprintf(&b, "Generated %s\n\n", generatedAt.Format(displayDate))

	b.WriteString("World progress\n")
	p.Fprintf(&b, "  Visited %d of %d (%.1f%%)\n\n", s.VisitedCount, s.TotalCountries, s.VisitedPercentage)

	b.WriteString("By continent\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Continent\tVisited\tTotal\tPercent")
	for _, cs := range s.ContinentStats {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%.1f%%\n", cs.Continent, cs.Visited, cs.Total, cs.Percentage)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report.Render: continents: %w", err)
	}
	b.WriteString("\n")

	b.WriteString("Trips\n")
	p.Fprintf(&b, "  Total trips:         %d\n", s.TotalTrips)
	p.Fprintf(&b, "  Days traveled:       %d\n", s.TotalDaysTraveled)
	p.Fprintf(&b, "  Average trip length: %.1f days\n\n", s.AverageTripLength)

	if len(s.VisitTypes) > 0 {
		b.WriteString("Visit types\n")
		for _, vt := range s.VisitTypes {
			p.Fprintf(&b, "  %-10s %d\n", vt.Label, vt.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("Timeline\n")
	if len(s.Timeline) == 0 {
		b.WriteString("  No visits recorded yet.\n")
	}
	for _, e := range s.Timeline {
		date := e.Date
		if t, err := time.Parse(domain.DateLayout, e.Date); err == nil {
			date = t.Format(displayDate)
		}
		fmt.Fprintf(&b, "  %s: %s\n", date, strings.Join(e.CountryNames, ", "))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report.Render: %w", err)
	}
	return nil
}
