// Package main implements the scry-drill command, an interactive terminal
// flashcard trainer: create question and answer cards, practice them and
// follow your progress.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
