// Package app wires configuration, logging, storage and the planner
// service into one runtime shared by the CLI and the HTTP server.
package app

import (
	"database/sql"
	"fmt"

	"github.com/alexanderramin/trailmap/internal/config"
	"github.com/alexanderramin/trailmap/internal/db"
	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/alexanderramin/trailmap/internal/service"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Runtime holds the opened store and the services built on it.
type Runtime struct {
	Config  *config.Config
	Logger  *log.Logger
	Store   repository.TaskStore
	Planner service.PlannerService

	database *sql.DB
}

// Open builds a runtime on the real filesystem.
func Open(cfg *config.Config, logger *log.Logger) (*Runtime, error) {
	return OpenWithFs(cfg, afero.NewOsFs(), logger)
}

// OpenWithFs builds a runtime whose directory store lives on fs.
func OpenWithFs(cfg *config.Config, fs afero.Fs, logger *log.Logger) (*Runtime, error) {
	rt := &Runtime{Config: cfg, Logger: logger}

	switch cfg.Store.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.Store.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		rt.database = database
		rt.Store = repository.NewSQLiteTaskStore(database, db.NewSQLiteUnitOfWork(database))
	case config.BackendDir:
		if err := fs.MkdirAll(cfg.Store.RootDir, 0755); err != nil {
			return nil, fmt.Errorf("creating root dir: %w", err)
		}
		rt.Store = repository.NewDirTaskStore(fs, cfg.Store.RootDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if logger != nil {
		observer = service.NewLogUseCaseObserver(logger)
	}
	rt.Planner = service.NewPlannerService(rt.Store, cfg.RepetitionSchedule(), service.WithObserver(observer))

	if logger != nil {
		logger.Debug("runtime ready", "backend", cfg.Store.Backend)
	}
	return rt, nil
}

// Close releases the database, if any.
func (r *Runtime) Close() error {
	if r.database == nil {
		return nil
	}
	return r.database.Close()
}
