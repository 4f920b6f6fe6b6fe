// Package logging builds the zap logger shared across commands.
package logging

import "go.uber.org/zap"

// New creates a logger for the given mode. "prod" or "production"
// selects the JSON production config; anything else uses the
// development config.
func New(mode string) (*zap.Logger, error) {
	switch mode {
	case "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}
