// Package consoletest provides a scripted console.Shell for tests.
package consoletest

import (
	"io"
	"strings"
	"sync"

	"github.com/phrazzld/scry-drill/internal/console"
)

// Kind identifies what a recorded Event was.
type Kind string

// Event kinds recorded by Shell.
const (
	KindAsk   Kind = "ask"
	KindLine  Kind = "line"
	KindInfo  Kind = "info"
	KindError Kind = "error"
	KindTable Kind = "table"
)

// Event is one interaction with the shell, in order.
type Event struct {
	Kind    Kind
	Text    string
	Headers []string
	Rows    [][]string
}

// Shell answers prompts from a fixed script and records everything printed.
// Once the script runs out, Ask returns io.EOF.
type Shell struct {
	mu     sync.Mutex
	inputs []string
	events []Event
}

var _ console.Shell = (*Shell)(nil)

// New returns a Shell that will answer prompts with inputs, in order.
func New(inputs ...string) *Shell {
	return &Shell{inputs: inputs}
}

// Ask implements console.Asker.
func (s *Shell) Ask(prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, Event{Kind: KindAsk, Text: prompt})
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

// Line implements console.Printer.
func (s *Shell) Line(text string) { s.record(Event{Kind: KindLine, Text: text}) }

// Info implements console.Printer.
func (s *Shell) Info(text string) { s.record(Event{Kind: KindInfo, Text: text}) }

// Error implements console.Printer.
func (s *Shell) Error(text string) { s.record(Event{Kind: KindError, Text: text}) }

// Table implements console.Printer.
func (s *Shell) Table(headers []string, rows [][]string) {
	s.record(Event{Kind: KindTable, Headers: headers, Rows: rows})
}

func (s *Shell) record(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of everything recorded so far.
func (s *Shell) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Texts returns the text of every event of the given kind.
func (s *Shell) Texts(kind Kind) []string {
	var texts []string
	for _, e := range s.Events() {
		if e.Kind == kind {
			texts = append(texts, e.Text)
		}
	}
	return texts
}

// Tables returns every rendered table.
func (s *Shell) Tables() []Event {
	var tables []Event
	for _, e := range s.Events() {
		if e.Kind == KindTable {
			tables = append(tables, e)
		}
	}
	return tables
}

// Remaining reports how many scripted inputs were not consumed.
func (s *Shell) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs)
}

// Transcript renders the events as "kind: text" lines, handy in failure output.
func (s *Shell) Transcript() string {
	var b strings.Builder
	for _, e := range s.Events() {
		b.WriteString(string(e.Kind))
		b.WriteString(": ")
		if e.Kind == KindTable {
			b.WriteString(strings.Join(e.Headers, " | "))
			for _, row := range e.Rows {
				b.WriteString("\n  ")
				b.WriteString(strings.Join(row, " | "))
			}
		} else {
			b.WriteString(e.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
