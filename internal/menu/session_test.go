package menu_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/scry-drill/internal/console/consoletest"
	"github.com/phrazzld/scry-drill/internal/menu"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const thanks = "Thanks for practicing, see you next time!"

func runSession(t *testing.T, st *storetest.Memory, inputs ...string) *consoletest.Shell {
	t.Helper()
	sh := consoletest.New(inputs...)
	tr := english(t)
	session := menu.NewSession(menu.NewController(st, sh, tr, nil), sh, tr, nil)
	require.NoError(t, session.Run(context.Background()), sh.Transcript())
	return sh
}

func lastLine(sh *consoletest.Shell) string {
	lines := sh.Texts(consoletest.KindLine)
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestSessionExitOption(t *testing.T) {
	t.Parallel()
	sh := runSession(t, storetest.NewMemory(), "6", "unused")

	assert.Equal(t, 1, sh.Remaining())
	lines := sh.Texts(consoletest.KindLine)
	require.Len(t, lines, 7)
	assert.Equal(t, "1 - Create a flashcard", lines[0])
	assert.Equal(t, thanks, lines[6])
}

func TestSessionEndOfInput(t *testing.T) {
	t.Parallel()
	sh := runSession(t, storetest.NewMemory())

	assert.Equal(t, thanks, lastLine(sh))
}

func TestSessionEndOfInputDuringAction(t *testing.T) {
	t.Parallel()
	st := storetest.NewMemory()
	sh := runSession(t, st, "1", "a question")

	assert.Equal(t, thanks, lastLine(sh))
	assert.Zero(t, st.Calls(storetest.OpCreateCard))
}

func TestSessionInvalidOptionShowsMenuAgain(t *testing.T) {
	t.Parallel()
	sh := runSession(t, storetest.NewMemory(), "9", "6")

	assert.Equal(t, []string{"The response must not be greater than 6."}, sh.Texts(consoletest.KindError))
	assert.Len(t, sh.Texts(consoletest.KindLine), 13, "menu twice plus farewell")
}

func TestSessionEndToEnd(t *testing.T) {
	t.Parallel()
	st := storetest.NewMemory()

	sh := runSession(t, st,
		"1", "2+2", "4",
		"1", "3+3", "6",
		"3", "1", "4", "2", "5", "x",
		"4",
		"6",
	)

	assert.Zero(t, sh.Remaining())
	assert.Equal(t, []string{"Flashcard saved.", "Flashcard saved.", "Correct!"}, sh.Texts(consoletest.KindInfo))
	assert.Equal(t, []string{"Incorrect!"}, sh.Texts(consoletest.KindError))

	tables := sh.Tables()
	require.NotEmpty(t, tables)
	assert.Equal(t, [][]string{
		{"Total questions", "2  "},
		{"% answered", "100.0 %"},
		{"% correct", "50.0 %"},
	}, tables[len(tables)-1].Rows)
	assert.Equal(t, thanks, lastLine(sh))
}

func TestSessionReportsFailuresRedacted(t *testing.T) {
	t.Parallel()
	st := storetest.NewMemory()
	st.FailOn(storetest.OpListCards, errors.New("open /var/lib/drill/drill.db: permission denied"))

	sh := runSession(t, st, "2", "6")

	assert.Equal(t,
		[]string{"Something went wrong: failed to list cards: open [REDACTED_PATH]: permission denied"},
		sh.Texts(consoletest.KindError))
	assert.Equal(t, thanks, lastLine(sh))
}

func TestSessionLogsWithContextLogger(t *testing.T) {
	t.Parallel()
	log, buf := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), log.With("session_id", "abc"))
	sh := consoletest.New("6")
	tr := english(t)

	err := menu.NewSession(menu.NewController(storetest.NewMemory(), sh, tr, nil), sh, tr, nil).Run(ctx)
	require.NoError(t, err)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "abc", e["session_id"])
	}
}
