// Package console provides the line-based interactive shell the trainer talks
// through: prompting for a line of input and printing lines, info and error
// messages, and tables.
package console

// Asker reads one line of user input after showing a prompt.
type Asker interface {
	// Ask shows prompt and returns the trimmed response. At end of input
	// it returns io.EOF.
	Ask(prompt string) (string, error)
}

// Printer writes output for the user.
type Printer interface {
	Line(text string)
	Info(text string)
	Error(text string)
	Table(headers []string, rows [][]string)
}

// Shell is the full interactive surface.
type Shell interface {
	Asker
	Printer
}
