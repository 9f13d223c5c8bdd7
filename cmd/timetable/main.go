// Package main implements the timetable CLI, which works directly on the
// tracker's file store.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"timetable-tracker/config"
	"timetable-tracker/internal/tracker"
	"timetable-tracker/internal/tracker/repository/file"
	"timetable-tracker/internal/tracker/usecase"
	"timetable-tracker/pkg/datemath"
	"timetable-tracker/pkg/log"
)

var version = "dev"

func main() {
	if err := newRootCmd(afero.NewOsFs(), time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	fs  afero.Fs
	now func() time.Time

	storePath  string
	timezone   string
	outputJSON bool
	verbose    bool

	uc     tracker.UseCase
	parser *datemath.Parser
}

func newRootCmd(fs afero.Fs, now func() time.Time) *cobra.Command {
	a := &app{fs: fs, now: now}

	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Track recurring daily tasks from the command line",
		Long: `timetable manages recurring daily tasks and their completion records.

It reads and writes the same store document as the HTTP API, so both can be
used on one data file.

Dates accept YYYY-MM-DD or relative text: today, yesterday, tomorrow,
"in 3 days", "2 weeks ago", "next monday".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
	}

	defaults := loadDefaults()
	rootCmd.PersistentFlags().StringVar(&a.storePath, "store", defaults.Storage.Path, "Path of the store document")
	rootCmd.PersistentFlags().StringVar(&a.timezone, "timezone", defaults.Tracker.Timezone, "IANA timezone that decides today")
	rootCmd.PersistentFlags().BoolVar(&a.outputJSON, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log use-case activity to stdout")

	rootCmd.AddCommand(a.newTaskCmd())
	rootCmd.AddCommand(a.newToggleCmd())
	rootCmd.AddCommand(a.newTodayCmd())
	rootCmd.AddCommand(a.newStatsCmd())
	rootCmd.AddCommand(a.newStreakCmd())
	rootCmd.AddCommand(a.newHeatmapCmd())

	return rootCmd
}

// loadDefaults reads config.yaml and the environment for flag defaults.
func loadDefaults() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return &config.Config{
			Storage: config.StorageConfig{Driver: config.StorageDriverFile, Path: "data/timetable.json"},
			Tracker: config.TrackerConfig{Timezone: "Local"},
		}
	}
	return cfg
}

func (a *app) init(ctx context.Context) error {
	parser, err := datemath.NewParser(a.timezone)
	if err != nil {
		return fmt.Errorf("invalid --timezone: %w", err)
	}
	a.parser = parser

	l := log.NewNop()
	if a.verbose {
		l = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole})
	}

	uc := usecase.New(l, file.New(a.fs, a.storePath), nil,
		usecase.WithClock(a.now),
		usecase.WithLocation(parser.Location()),
	)
	if err := uc.Load(ctx); err != nil {
		return fmt.Errorf("failed to load %s: %w", a.storePath, err)
	}
	a.uc = uc
	return nil
}

// parseDate resolves flag text; empty text means today.
func (a *app) parseDate(text string) (datemath.Date, error) {
	return a.parser.Parse(text, a.now())
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
