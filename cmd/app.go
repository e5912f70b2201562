package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/roomdesk/internal/booking"
	"github.com/example/roomdesk/internal/config"
	"github.com/example/roomdesk/internal/db"
	"github.com/example/roomdesk/internal/hotel"
	"github.com/example/roomdesk/internal/ledger"
	"github.com/example/roomdesk/internal/migrate"
	"github.com/example/roomdesk/internal/store"
)

// app wires config, catalog, ledger and the booking service for one command
// invocation. Every subcommand opens the app, which loads the persisted ledger
// up front; a load failure aborts the command rather than starting empty.
type app struct {
	cfg config.Config
	log *slog.Logger
	svc *booking.Service
	db  *db.DB // nil when the file ledger is in use
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	catalog := hotel.DefaultCatalog()
	if cfg.CatalogFile != "" {
		catalog, err = hotel.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", cfg.CatalogFile, err)
		}
	}

	var (
		led ledger.Ledger
		d   *db.DB
	)
	if cfg.DatabaseURL != "" {
		d, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := d.Ping(ctx); err != nil {
			d.Close()
			return nil, fmt.Errorf("db ping: %w", err)
		}
		if err := migrate.Up(ctx, d); err != nil {
			d.Close()
			return nil, err
		}
		led = ledger.NewPostgresLedger(d)
	} else {
		led = ledger.NewFileLedger(cfg.DataFile)
	}

	svc := booking.NewService(catalog, store.New(led, nil), logger)
	if err := svc.LoadOnStartup(ctx); err != nil {
		if d != nil {
			d.Close()
		}
		return nil, err
	}

	return &app{cfg: cfg, log: logger, svc: svc, db: d}, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
