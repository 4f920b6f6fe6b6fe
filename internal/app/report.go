package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/maumlab/maumlog/internal/journal"
	"github.com/maumlab/maumlog/internal/output"
	"github.com/maumlab/maumlog/internal/report"
	"github.com/maumlab/maumlog/internal/store"
)

var (
	reportPeriod string
	reportDate   string
	reportNoAdv  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a daily, weekly, or monthly report",
	Long: `Aggregate the logged counters over a period and display them together
with coaching advice generated from the configured advice dataset.

Examples:
  maumlog report
  maumlog report --period weekly
  maumlog report --period monthly --date 2026-07-15`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "daily", "Report period (daily, weekly, monthly)")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Anchor date (YYYY-MM-DD, default today)")
	reportCmd.Flags().BoolVar(&reportNoAdv, "no-advice", false, "Skip advice generation (no network fetch)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	if flagNoColor || !deps.cfg.Output.Color {
		output.SetNoColor(true)
	}

	anchor := time.Now()
	if reportDate != "" {
		anchor, err = time.Parse(store.DayFormat, reportDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", reportDate)
		}
	}

	period := journal.ParsePeriod(reportPeriod)
	rep, err := report.Build(deps.db, period, anchor)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	adviceText := ""
	if !reportNoAdv {
		adviceText = deps.engine.Generate(context.Background(), rep.Summary, rep.Label)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"report": rep, "advice": adviceText})
	}

	fmt.Println(output.Section(rep.Label))
	fmt.Println()

	tbl := output.NewTable("Field", "Count")
	for _, name := range journal.FieldNames() {
		v, _ := rep.Summary.Field(name)
		tbl.AddRow(name, strconv.Itoa(v))
	}
	tbl.Print()

	barWidth := deps.cfg.Output.Width / 4
	if barWidth < 10 {
		barWidth = 10
	}

	fmt.Println()
	fmt.Println(" thoughts " + output.BalanceBar(rep.Summary.GoodThoughts, rep.Summary.BadThoughts, barWidth))
	fmt.Println(" actions  " + output.BalanceBar(rep.Summary.GoodActions, rep.Summary.BadActions, barWidth))
	fmt.Println(" words    " + output.BalanceBar(rep.Summary.GoodWordsCount, rep.Summary.BadWordsCount, barWidth))
	fmt.Println(" events   " + output.BalanceBar(rep.Summary.HappyEvents, rep.Summary.ToughEvents, barWidth))

	if adviceText != "" {
		fmt.Println(output.Section("코칭 조언"))
		fmt.Println()
		fmt.Println(adviceText)
	}

	return nil
}
