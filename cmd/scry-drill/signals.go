package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// ignoredSignals are caught so they cannot end a session halfway through an
// answer. Interrupting with Ctrl+C still works.
var ignoredSignals = []os.Signal{syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGABRT}

// watchSignals logs and swallows ignoredSignals until the returned stop
// function is called or ctx is done.
func watchSignals(ctx context.Context, log *slog.Logger) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, ignoredSignals...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-ch:
				log.Warn("ignoring signal", slog.String("signal", sig.String()))
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
