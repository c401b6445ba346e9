package console

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

// Terminal is a Shell reading lines from in and rendering with pterm to out.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

var _ Shell = (*Terminal)(nil)

// NewTerminal creates a Terminal. If logger is nil, a default logger will be used.
func NewTerminal(in io.Reader, out io.Writer, logger *slog.Logger) *Terminal {
	if in == nil || out == nil {
		panic("terminal needs both input and output")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.With(slog.String("component", "terminal")),
	}
}

// Ask implements Asker. Surrounding whitespace is trimmed from the response.
// A final line without a newline is still returned; io.EOF is only reported
// once no input is left.
func (t *Terminal) Ask(prompt string) (string, error) {
	pterm.Fprint(t.out, pterm.FgLightCyan.Sprint(prompt), "\n", pterm.FgGray.Sprint("> "))

	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if !errors.Is(err, io.EOF) {
			t.logger.Error("failed to read input", slog.String("error", err.Error()))
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Line implements Printer.
func (t *Terminal) Line(text string) {
	pterm.Fprintln(t.out, text)
}

// Info implements Printer.
func (t *Terminal) Info(text string) {
	pterm.Success.WithWriter(t.out).Println(text)
}

// Error implements Printer.
func (t *Terminal) Error(text string) {
	pterm.Error.WithWriter(t.out).Println(text)
}

// Table implements Printer. The headers form the first row.
func (t *Terminal) Table(headers []string, rows [][]string) {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, headers)
	data = append(data, rows...)

	err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		WithWriter(t.out).
		Render()
	if err != nil {
		t.logger.Error("failed to render table", slog.String("error", err.Error()))
	}
}
