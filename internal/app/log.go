package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/maumlab/maumlog/internal/journal"
	"github.com/maumlab/maumlog/internal/output"
	"github.com/maumlab/maumlog/internal/store"
)

var (
	logDate string
	logList bool
)

var logCmd = &cobra.Command{
	Use:   "log [field] [delta]",
	Short: "Record counter changes for a day",
	Long: `Record a change to one of the daily counters. The delta defaults to +1.

Fields: goodThoughts, badThoughts, goodActions, badActions,
goodWordsCount, badWordsCount, happyEvents, toughEvents

Examples:
  maumlog log goodThoughts
  maumlog log badActions +2
  maumlog log toughEvents -1 --date 2026-08-20
  maumlog log --list`,
	Args: cobra.ArbitraryArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Day to log against (YYYY-MM-DD, default today)")
	logCmd.Flags().BoolVar(&logList, "list", false, "Show the counters logged for the day")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	day := logDate
	if day == "" {
		day = time.Now().Format(store.DayFormat)
	} else if _, err := time.Parse(store.DayFormat, day); err != nil {
		return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", logDate)
	}

	if logList {
		return runLogList(db, day)
	}

	if len(args) < 1 {
		return fmt.Errorf("usage: maumlog log <field> [delta]\nUse --list to view the day's counters")
	}

	field := args[0]
	if !journal.IsField(field) {
		return fmt.Errorf("unknown field %q; fields: %s", field, strings.Join(journal.FieldNames(), ", "))
	}

	delta := 1
	if len(args) >= 2 {
		delta, err = strconv.Atoi(strings.TrimPrefix(args[1], "+"))
		if err != nil {
			return fmt.Errorf("invalid delta %q: expected an integer", args[1])
		}
	}

	if err := db.AddDelta(day, field, delta); err != nil {
		return fmt.Errorf("saving log: %w", err)
	}

	sum, err := db.GetDay(day)
	if err != nil {
		return fmt.Errorf("reading day: %w", err)
	}
	value, _ := sum.Field(field)
	fmt.Printf("Logged %s %+d (%s, now %d)\n", field, delta, day, value)

	return nil
}

// runLogList displays the counters logged for one day.
func runLogList(db *store.DB, day string) error {
	sum, err := db.GetDay(day)
	if err != nil {
		return fmt.Errorf("reading day: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"date": day, "summary": sum})
	}

	fmt.Println(output.Section("Counters for " + day))
	fmt.Println()
	printSummaryTable(sum)
	return nil
}

// printSummaryTable renders the eight counters as a table.
func printSummaryTable(sum *journal.Summary) {
	tbl := output.NewTable("Field", "Count")
	for _, name := range journal.FieldNames() {
		v, _ := sum.Field(name)
		tbl.AddRow(name, strconv.Itoa(v))
	}
	tbl.Print()
}
