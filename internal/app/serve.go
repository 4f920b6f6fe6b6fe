package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON HTTP API",
	Long: `Serve the journal, reports, advice, and ad banner over HTTP for the
web frontend. The advice dataset is fetched lazily on the first advice
request and cached for the life of the process; POST /api/advice/reload
refetches it.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.Close()

	addr := serveAddr
	if addr == "" {
		addr = deps.cfg.ListenAddr
	}

	srv := server.New(deps.db, deps.engine, deps.loader, deps.banners, deps.log)
	deps.log.Info("starting API server", zap.String("addr", addr))

	if err := srv.Run(addr); err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	return nil
}
