// Package server exposes the journal, reports, advice, and ad banner
// over a JSON HTTP API for the web frontend.
package server

import (
	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/ads"
	"github.com/maumlab/maumlog/internal/advice"
	"github.com/maumlab/maumlog/internal/store"
)

// Server bundles the API dependencies behind a gin engine.
type Server struct {
	db      *store.DB
	engine  *advice.Engine
	loader  *advice.Loader
	banners *ads.Rotation
	log     *zap.Logger
}

// New creates the API server.
func New(db *store.DB, engine *advice.Engine, loader *advice.Loader, banners *ads.Rotation, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		db:      db,
		engine:  engine,
		loader:  loader,
		banners: banners,
		log:     log,
	}
}

// Run starts the HTTP server on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}
