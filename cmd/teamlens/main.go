package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/teamlens/internal/cli"
	"github.com/alexanderramin/teamlens/internal/config"
	"github.com/alexanderramin/teamlens/internal/db"
	"github.com/alexanderramin/teamlens/internal/logger"
	"github.com/alexanderramin/teamlens/internal/repository"
	"github.com/alexanderramin/teamlens/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	personaRepo := repository.NewSQLitePersonaRepo(database)

	// Imports replace the snapshot and dashboards read it, each in one transaction.
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(log.With("component", "service"))

	app := &cli.App{
		Dashboard: service.NewDashboardService(uow, cfg.Benchmarks(), observer),
		Import:    service.NewImportService(uow, observer),
		Personas:  service.NewPersonaService(personaRepo),
		Config:    cfg,
		Log:       log,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
