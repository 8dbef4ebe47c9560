package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/trackr/internal/cli"
	"github.com/alexanderramin/trackr/internal/db"
	"github.com/alexanderramin/trackr/internal/repository"
	"github.com/alexanderramin/trackr/internal/service"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.trackr/trackr.db
	dbPath := os.Getenv("TRACKR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".trackr", "trackr.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if os.Getenv("TRACKR_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	groupStatRepo := repository.NewSQLiteGroupStatRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	stateRepo := repository.NewSQLiteStateRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	groupStatSvc := service.NewGroupStatService(groupStatRepo, uow, logger)

	app := &cli.App{
		Tracker:    service.NewTrackerService(sessionRepo, groupStatSvc, logger),
		Sessions:   service.NewSessionService(sessionRepo, groupStatSvc, logger),
		GroupStats: groupStatSvc,
		Export:     service.NewExportService(sessionRepo),
		Users:      service.NewUserService(userRepo, stateRepo),
	}

	// Detect interactive terminal for the live tracker view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
