package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-drill/internal/config"
	"github.com/phrazzld/scry-drill/internal/console"
	"github.com/phrazzld/scry-drill/internal/i18n"
	"github.com/phrazzld/scry-drill/internal/menu"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/platform/sqlstore"
	"github.com/phrazzld/scry-drill/internal/redact"
)

// application holds the wired components of one interactive session.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sqlstore.DB
	session *menu.Session
}

// run loads configuration, opens the store and drives the menu until the
// user leaves. Logs go to errOut so they never mix with the terminal.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := newApplication(ctx, in, out, errOut)
	if err != nil {
		return err
	}
	defer app.close()

	ctx = logger.WithLogger(ctx, app.logger)

	stop := watchSignals(ctx, app.logger)
	defer stop()

	return app.session.Run(ctx)
}

// newApplication wires configuration, logging, translations, storage and
// the terminal into a ready session.
func newApplication(ctx context.Context, in io.Reader, out, errOut io.Writer) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	base, err := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, errOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	log := base.With(slog.String("session_id", uuid.NewString()))

	log.Info("configuration loaded",
		slog.String("locale", cfg.Locale),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("database_url", redact.String(cfg.Database.URL)))

	tr, err := i18n.Load(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	db, err := sqlstore.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %s", redact.Error(err))
	}

	shell := console.NewTerminal(in, out, log)
	controller := menu.NewController(sqlstore.New(db, log), shell, tr, log)

	return &application{
		config:  cfg,
		logger:  log,
		db:      db,
		session: menu.NewSession(controller, shell, tr, log),
	}, nil
}

func (a *application) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", slog.String("error", err.Error()))
	}
}
