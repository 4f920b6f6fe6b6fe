package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/maumlab/maumlog/internal/journal"
	"github.com/maumlab/maumlog/internal/report"
	"github.com/maumlab/maumlog/internal/store"
)

var (
	advicePeriod string
	adviceDate   string
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Print coaching advice for a period",
	Long: `Generate coaching advice for the logged counters of a period. Advice
records are fetched once per process from the configured sheet and matched
against the period summary.`,
	RunE: runAdvice,
}

func init() {
	adviceCmd.Flags().StringVar(&advicePeriod, "period", "daily", "Period (daily, weekly, monthly)")
	adviceCmd.Flags().StringVar(&adviceDate, "date", "", "Anchor date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	anchor := time.Now()
	if adviceDate != "" {
		anchor, err = time.Parse(store.DayFormat, adviceDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", adviceDate)
		}
	}

	period := journal.ParsePeriod(advicePeriod)
	rep, err := report.Build(deps.db, period, anchor)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	text := deps.engine.Generate(context.Background(), rep.Summary, rep.Label)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{"label": rep.Label, "advice": text})
	}

	fmt.Println(text)
	return nil
}
