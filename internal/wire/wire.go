// Package wire provides dependency injection for the scribe application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/scribe/internal/adapters/sqlite"
	"github.com/example/scribe/internal/app"
	"github.com/example/scribe/internal/config"
	"github.com/example/scribe/internal/db"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/titles"
)

var (
	importService primary.ImportService
	once          sync.Once
)

// ImportService returns the singleton ImportService instance.
func ImportService() primary.ImportService {
	once.Do(initServices)
	return importService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("failed to get home directory: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DatabasePath != "" {
		db.SetPath(cfg.DatabasePath)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	storePath, err := db.GetDBPath()
	if err != nil {
		log.Fatalf("failed to resolve database path: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	repos := app.Repositories{
		Accounts:     sqlite.NewAccountRepository(database),
		Events:       sqlite.NewEventRepository(database),
		ShortLinks:   sqlite.NewShortLinkRepository(database),
		Quotes:       sqlite.NewQuoteRepository(database),
		Positions:    sqlite.NewPositionRepository(database),
		Assignments:  sqlite.NewAssignmentRepository(database),
		Recognitions: sqlite.NewRecognitionRepository(database),
		HandoverDocs: sqlite.NewHandoverDocRepository(database),
	}

	importService = app.NewImportService(repos, titles.Default(), app.Options{
		AccountDomain:  cfg.AccountDomain,
		PositionDomain: cfg.PositionDomain,
		PrimarySuffix:  cfg.PrimarySuffix,
		StorePath:      storePath,
	}, os.Stdout)
}
