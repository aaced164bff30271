package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/service"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print behavior insights for the configured store",
	Long: `Analyze the behavior log over a look-back window and print:
  - Totals and averages
  - Daily trend
  - Most frequent behaviors and triggers
  - Intensity breakdown
  - Training recommendations`,
	RunE: runInsights,
}

var insightsDays int

func init() {
	insightsCmd.Flags().IntVarP(&insightsDays, "days", "d", 0, "Look-back window in days (default from config)")
}

func runInsights(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd.Context(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	svc := service.NewAnalyticsService(st.events, st.catalog, service.SystemClock(loc), service.AnalyticsOptions{
		DefaultWindowDays: cfg.Analytics.DefaultWindowDays,
		QuickAddLimit:     cfg.Analytics.QuickAddLimit,
	}, log, nil)

	report, err := svc.Insights(cmd.Context(), insightsDays)
	if err != nil {
		return fmt.Errorf("compute insights: %w", err)
	}

	printReport(cmd.OutOrStdout(), report)
	return nil
}

// printReport renders an insights report for the terminal
func printReport(w io.Writer, r *models.InsightsReport) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	cyan.Fprintf(w, "\n=== Behavior Insights (last %d days) ===\n\n", r.WindowDays)

	if r.TotalEvents == 0 {
		fmt.Fprintf(w, "No behaviors logged in this window.\n")
	} else {
		cyan.Fprintf(w, "Overview:\n")
		fmt.Fprintf(w, "  Total events: %d\n", r.TotalEvents)
		fmt.Fprintf(w, "  Per day: %.1f\n", r.DailyAverage)
		fmt.Fprintf(w, "  Average intensity: ")
		intensityColor(r.AverageIntensity, green, yellow, red).Fprintf(w, "%.1f\n", r.AverageIntensity)

		fmt.Fprintf(w, "\n")
		cyan.Fprintf(w, "Daily Trend:\n")
		peak := 0
		for _, p := range r.Trend {
			if p.Count > peak {
				peak = p.Count
			}
		}
		for _, p := range r.Trend {
			fmt.Fprintf(w, "  %s %3d %s\n", p.Label, p.Count, bar(p.Count, peak, 30))
		}

		printCounts(w, cyan, "Behaviors:", r.TypeDistribution)
		printCounts(w, cyan, "Top Triggers:", r.TopTriggers)

		fmt.Fprintf(w, "\n")
		cyan.Fprintf(w, "Intensity:\n")
		for _, l := range r.Intensity.Levels {
			fmt.Fprintf(w, "  %d %-10s %d\n", l.Level, l.Label, l.Count)
		}
	}

	fmt.Fprintf(w, "\n")
	cyan.Fprintf(w, "Recommendations:\n")
	for _, rec := range r.Recommendations {
		green.Fprintf(w, "  - %s\n", rec)
	}
	fmt.Fprintf(w, "\n")
}

func printCounts(w io.Writer, heading *color.Color, title string, counts []models.LabelCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n")
	heading.Fprintf(w, "%s\n", title)
	for _, c := range counts {
		fmt.Fprintf(w, "  %-20s %d\n", c.Label, c.Count)
	}
}

func intensityColor(avg float64, low, mid, high *color.Color) *color.Color {
	switch {
	case avg >= 4:
		return high
	case avg >= 3:
		return mid
	default:
		return low
	}
}

// bar scales count against peak into at most width cells
func bar(count, peak, width int) string {
	if peak == 0 || count == 0 {
		return ""
	}
	n := count * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}
