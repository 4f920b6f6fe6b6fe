package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/ads"
	"github.com/maumlab/maumlog/internal/advice"
	"github.com/maumlab/maumlog/internal/config"
	"github.com/maumlab/maumlog/internal/logging"
	"github.com/maumlab/maumlog/internal/sheet"
	"github.com/maumlab/maumlog/internal/store"
)

// commandDeps holds the shared wiring built by most commands.
type commandDeps struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *store.DB
	engine  *advice.Engine
	loader  *advice.Loader
	banners *ads.Rotation
}

// buildDeps loads config, opens the database, and wires the advice and
// ad stacks. Callers must Close when done.
func buildDeps() (*commandDeps, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	client := sheet.NewClient(nil)
	loader := advice.NewLoader(client, cfg.AdviceSheetURL, log)
	engine := advice.NewEngine(loader, log)
	banners := ads.NewRotation(client, cfg.AdsSheetURL, log)

	return &commandDeps{
		cfg:     cfg,
		log:     log,
		db:      db,
		engine:  engine,
		loader:  loader,
		banners: banners,
	}, nil
}

// Close releases the database and flushes the logger.
func (d *commandDeps) Close() {
	_ = d.db.Close()
	_ = d.log.Sync()
}

// openStore is the lighter path for commands that only touch the
// journal database.
func openStore() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}
