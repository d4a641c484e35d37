package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/nba-season-fetch/internal/config"
	"github.com/pfrederiksen/nba-season-fetch/internal/export"
	"github.com/pfrederiksen/nba-season-fetch/internal/logger"
	"github.com/pfrederiksen/nba-season-fetch/internal/nbastats"
	"github.com/pfrederiksen/nba-season-fetch/internal/season"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOutput  string
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nba-season-fetch",
		Short: "Fetch and merge current NBA season stats into a CSV feed",
		Long: `Fetches live NBA season stats from two official endpoints, merges
standings with advanced team stats by team ID, and writes a CSV consumed by
the downstream playoff prediction service.`,
		SilenceUsage: true,
		RunE:         runFetch,
	}

	// Define flags
	cmd.Flags().StringVar(&flagOutput, "output", config.DefaultOutput, "Output CSV file path")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Optional YAML config file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// The flag wins over the config file when given explicitly
	if cmd.Flags().Changed("output") {
		cfg.Output = flagOutput
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}
	logger.Debug("Run configuration", logger.Fields{
		"season":      cfg.Season,
		"season_type": cfg.SeasonType,
		"output":      cfg.Output,
		"base_url":    cfg.BaseURL,
	})

	fmt.Printf("NBA season stats fetch | season %s\n", cfg.Season)

	client := nbastats.New(cfg.Season, cfg.SeasonType, cfg.RequestDelay, cfg.Timeout)
	client.BaseURL = cfg.BaseURL

	// The two fetches are strictly sequential; each sleeps its courtesy
	// delay inside the client before hitting the endpoint.
	start := time.Now()
	standings, err := client.FetchStandings()
	if err != nil {
		return fmt.Errorf("fetching standings: %w", err)
	}
	logger.RecordTiming("fetch.standings", time.Since(start))

	start = time.Now()
	advanced, err := client.FetchAdvanced()
	if err != nil {
		return fmt.Errorf("fetching advanced stats: %w", err)
	}
	logger.RecordTiming("fetch.advanced", time.Since(start))

	rows := season.BuildRows(standings, advanced, cfg.Season)
	logger.Debug("Merged standings with advanced stats", logger.Fields{
		"standings": len(standings),
		"advanced":  len(advanced),
		"rows":      len(rows),
	})
	if len(rows) == 0 {
		return fmt.Errorf("no rows produced: no team appears in both standings and advanced stats")
	}

	if err := export.WriteCSV(cfg.Output, rows); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("Export complete", logger.Fields{
		"rows":   len(rows),
		"output": cfg.Output,
	})

	WritePreview(os.Stdout, rows)

	if flagVerbose {
		if data, err := json.MarshalIndent(logger.GetMetricsSnapshot(), "", "  "); err == nil {
			fmt.Fprintf(os.Stderr, "Metrics: %s\n", data)
		}
	}

	fmt.Printf("\n%s is ready for the prediction service\n", cfg.Output)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
