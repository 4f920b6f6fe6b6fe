// Package config provides configuration loading and defaults for maumlog.
package config

// DefaultConfigDir is the default location for maumlog configuration.
const DefaultConfigDir = "~/.config/maumlog"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "maumlog.db"

// DefaultListenAddr is the default HTTP listen address for serve.
const DefaultListenAddr = ":8776"

// DefaultLogMode selects the logger configuration ("dev" or "prod").
const DefaultLogMode = "dev"

// Default published-sheet URLs. These point at the public demo sheets;
// users override them with their own published CSV URLs.
const (
	DefaultAdviceSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-maumlog-advice/pub?output=csv"
	DefaultAdsSheetURL    = "https://docs.google.com/spreadsheets/d/e/2PACX-maumlog-ads/pub?output=csv"
)

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
