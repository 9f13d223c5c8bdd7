package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/tracker"
)

// heatmapGlyphs renders levels 0..5.
const heatmapGlyphs = ".:-=+#"

func (a *app) newStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics",
		Long: `Show completion statistics for a day, a week or a month.

Examples:
  timetable stats day --date yesterday
  timetable stats week
  timetable stats month --year 2024 --month 2`,
	}

	var date string
	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Stats for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(date)
			if err != nil {
				return err
			}
			st, err := a.uc.DailyStats(cmd.Context(), d)
			if err != nil {
				return err
			}
			return a.printStats(cmd.OutOrStdout(), d.String(), st)
		},
	}
	dayCmd.Flags().StringVar(&date, "date", "", "Day (default today)")

	var start string
	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Stats for seven days (default the current Monday-based week)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parseDate(start)
			if err != nil {
				return err
			}
			if start == "" {
				s = s.StartOfWeek()
			}
			st, err := a.uc.WeeklyStats(cmd.Context(), s)
			if err != nil {
				return err
			}
			label := fmt.Sprintf("%s..%s", s, s.AddDays(6))
			return a.printStats(cmd.OutOrStdout(), label, st)
		},
	}
	weekCmd.Flags().StringVar(&start, "start", "", "First day (default this week's Monday)")

	var (
		year  int
		month int
	)
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Stats for a calendar month (default the current month)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := a.parser.Today(a.now())
			if year == 0 {
				year = today.Year()
			}
			if month == 0 {
				month = int(today.Month())
			}

			st, err := a.uc.MonthlyStats(cmd.Context(), tracker.MonthInput{Year: year, Month: time.Month(month)})
			if err != nil {
				return err
			}
			return a.printStats(cmd.OutOrStdout(), fmt.Sprintf("%04d-%02d", year, month), st)
		},
	}
	monthCmd.Flags().IntVar(&year, "year", 0, "Year (default current)")
	monthCmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default current)")

	statsCmd.AddCommand(dayCmd, weekCmd, monthCmd)
	return statsCmd
}

type statsOutput struct {
	Period    string  `json:"period"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

func (a *app) printStats(w io.Writer, period string, st engine.Stats) error {
	if a.outputJSON {
		return outputJSON(w, statsOutput{Period: period, Completed: st.Completed, Total: st.Total, Rate: st.Rate})
	}
	_, err := fmt.Fprintf(w, "%s: %d/%d completed (%.1f%%)\n", period, st.Completed, st.Total, st.Rate)
	return err
}

func (a *app) newStreakCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "streak [task-id]",
		Short: "Show the streak of a task, or the overall streak",
		Long: `Show consecutive completed days ending at a date (default today).

With a task id, counts the days the task was completed. Without one, counts
the days on which every active task was completed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(date)
			if err != nil {
				return err
			}

			var n int
			if len(args) == 1 {
				n, err = a.uc.Streak(cmd.Context(), tracker.StreakInput{TaskID: args[0], Date: d})
			} else {
				n, err = a.uc.OverallStreak(cmd.Context(), d)
			}
			if err != nil {
				return err
			}

			if a.outputJSON {
				return outputJSON(cmd.OutOrStdout(), map[string]any{"date": d, "streak": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d day streak as of %s\n", n, d)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Reference day (default today)")
	return cmd
}

func (a *app) newHeatmapCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show the yearly activity heatmap",
		Long: `Show the 365 days ending at a date as a weekday-by-week grid.

Levels from 0 to 5 are drawn as ` + heatmapGlyphs + `; 5 means every active task was done.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(date)
			if err != nil {
				return err
			}

			entries, err := a.uc.Heatmap(cmd.Context(), d)
			if err != nil {
				return err
			}

			if a.outputJSON {
				return outputJSON(cmd.OutOrStdout(), entries)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), renderHeatmap(entries))
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Last day (default today)")
	return cmd
}

// renderHeatmap draws one row per weekday (Monday first) and one column per
// week. Cells before the first entry are blank.
func renderHeatmap(entries []engine.HeatmapEntry) string {
	if len(entries) == 0 {
		return ""
	}

	first := entries[0].Date
	offset := first.DaysSince(first.StartOfWeek())
	weeks := (offset + len(entries) + 6) / 7

	rows := [7][]byte{}
	for r := range rows {
		rows[r] = []byte(strings.Repeat(" ", weeks))
	}
	for i, e := range entries {
		cell := offset + i
		rows[cell%7][cell/7] = heatmapGlyphs[e.Level]
	}

	labels := [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	var b strings.Builder
	for r, row := range rows {
		b.WriteString(strings.TrimRight(labels[r]+" "+string(row), " "))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s .. %s\n", first, entries[len(entries)-1].Date)
	return b.String()
}
