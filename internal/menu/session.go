package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-drill/internal/console"
	"github.com/phrazzld/scry-drill/internal/i18n"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/redact"
)

// Session is the interactive main loop around a Controller.
type Session struct {
	controller *Controller
	shell      console.Shell
	tr         i18n.Translator
	logger     *slog.Logger
}

// NewSession creates a Session for controller on shell.
func NewSession(controller *Controller, shell console.Shell, tr i18n.Translator, logger *slog.Logger) *Session {
	if controller == nil {
		panic("controller cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		controller: controller,
		shell:      shell,
		tr:         tr,
		logger:     logger.With(slog.String("component", "session")),
	}
}

// Run shows the menu and handles choices until the user exits or input
// ends, then says goodbye. Action failures are reported to the user with
// sensitive details removed and the menu is shown again.
func (s *Session) Run(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.controller.ShowMenu()

		response, err := s.shell.Ask(s.tr.T("interaction.enter_option"))
		if errors.Is(err, io.EOF) {
			log.Info("input closed")
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read menu option: %w", err)
		}

		exit, err := s.controller.Handle(ctx, response)
		if errors.Is(err, io.EOF) {
			log.Info("input closed")
			break
		}
		if err != nil {
			log.Error("menu action failed",
				slog.String("option", response),
				slog.String("error", redact.Error(err)))
			s.shell.Error(s.tr.T("errors.store_failure", i18n.P("reason", redact.Error(err))))
			continue
		}
		if exit {
			break
		}
	}

	if stats, err := s.controller.Statistics(ctx); err == nil {
		log.Info("session finished",
			slog.Int("cards", stats.Total),
			slog.Int("correct", stats.Correct))
	}

	s.shell.Line(s.tr.T("interaction.thanks"))
	return nil
}
