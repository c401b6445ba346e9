package console

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func TestTerminalAsk(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("  first  \r\n\nlast"), &out, nil)

	got, err := term.Ask("Question one")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
	assert.Contains(t, out.String(), "Question one")

	got, err = term.Ask("Question two")
	require.NoError(t, err)
	assert.Equal(t, "", got, "an empty line is an empty response")

	got, err = term.Ask("Question three")
	require.NoError(t, err)
	assert.Equal(t, "last", got, "unterminated final line is still returned")

	_, err = term.Ask("Question four")
	assert.ErrorIs(t, err, io.EOF)
}

func TestTerminalOutput(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, nil)

	term.Line("1 - Create a flashcard")
	term.Info("Correct!")
	term.Error("Incorrect!")
	term.Table([]string{"#", "Question"}, [][]string{{"1", "2+2?"}, {"2", "Capital of France?"}})

	text := out.String()
	assert.Contains(t, text, "1 - Create a flashcard\n")
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, "Incorrect!")
	assert.Contains(t, text, "Question")
	assert.Contains(t, text, "2+2?")
	assert.Contains(t, text, "Capital of France?")
}

func TestNewTerminalRequiresStreams(t *testing.T) {
	assert.Panics(t, func() { NewTerminal(nil, &bytes.Buffer{}, nil) })
	assert.Panics(t, func() { NewTerminal(strings.NewReader(""), nil, nil) })
}
