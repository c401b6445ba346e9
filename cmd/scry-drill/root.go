package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scry-drill",
		Short: "An interactive flashcard trainer for the terminal",
		Long: `scry-drill quizzes you on flashcards you create yourself.

It keeps the latest answer per card and shows which questions are still
open. Cards are stored in a local SQLite file by default; set
SCRY_DRILL_DATABASE_DRIVER=postgres and SCRY_DRILL_DATABASE_URL to use
PostgreSQL instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
