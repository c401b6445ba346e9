package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/scry-drill/internal/console"
)

// MessageSeparator joins the messages of a rejected response into one line.
const MessageSeparator = ", "

// Prompt asks until the response passes check and returns it. Each rejected
// response is reported as a single error line and the prompt is repeated;
// there is no retry limit. It returns early only when the shell fails to
// read (io.EOF at end of input) or ctx is done.
func Prompt(ctx context.Context, sh console.Shell, prompt string, check Check) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		response, err := sh.Ask(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read response: %w", err)
		}

		if messages := check(response); len(messages) > 0 {
			sh.Error(strings.Join(messages, MessageSeparator))
			continue
		}

		return response, nil
	}
}

// Validate runs check once and reports a failure on the shell, returning
// whether the response was accepted. It is the single-shot form of Prompt
// for input that was already read, such as a menu choice.
func Validate(sh console.Printer, response string, check Check) bool {
	if messages := check(response); len(messages) > 0 {
		sh.Error(strings.Join(messages, MessageSeparator))
		return false
	}
	return true
}
