package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/siteworks/internal/cli"
	"github.com/alexanderramin/siteworks/internal/config"
	"github.com/alexanderramin/siteworks/internal/db"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/repository"
	"github.com/alexanderramin/siteworks/internal/service"
	"github.com/alexanderramin/siteworks/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		// Validation and not-found outcomes were already shown as notifications.
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	logger.Debug("opening snapshot store", "kind", string(cfg.Store), "path", cfg.StorePath())
	repo, closeRepo, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	st := store.New(repo, store.WithLogger(logger))
	st.Load(context.Background())

	out := cli.NewOutputSink(os.Stdout)
	sink := notify.Sink(out)
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		sink = notify.Fanout(out, notify.NewLogSink(os.Stderr))
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	tasks := service.NewTaskService(st, sink, observers...)
	payments := service.NewPaymentService(st, sink, nil, observers...)

	app := &cli.App{
		Workspace: service.NewWorkspace(st, sink, tasks, payments),
		Output:    out,
		VendorID:  cfg.VendorID,
	}

	// Prompts and the board only run on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func openRepo(cfg config.Config) (repository.SnapshotRepo, func(), error) {
	switch cfg.Store {
	case config.StoreFile:
		return repository.NewFileSnapshotRepo(cfg.FilePath), func() {}, nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		repo := repository.NewSQLiteSnapshotRepo(db.NewSQLiteUnitOfWork(database))
		return repo, func() { database.Close() }, nil
	}
}
