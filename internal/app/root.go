// Package app contains the Cobra command tree for maumlog.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "maumlog",
	Short: "Personal habit and mood journal with rule-based coaching",
	Long: `maumlog tracks daily counts of positive and negative thoughts, actions,
words, and life events. It aggregates them into daily, weekly, and monthly
reports and generates coaching advice from an externally configured
spreadsheet dataset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("maumlog", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  log      Record counter changes for a day")
		fmt.Println("  report   Show a daily, weekly, or monthly report")
		fmt.Println("  advice   Print coaching advice for a period")
		fmt.Println("  serve    Start the JSON HTTP API")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/maumlog/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
