package practice

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/scry-drill/internal/console"
	"github.com/phrazzld/scry-drill/internal/domain"
	"github.com/phrazzld/scry-drill/internal/i18n"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/validation"
)

// Exit codes accepted at the selection prompt.
const (
	exitLower = "x"
	exitUpper = "X"
)

// Selector shows the progress table and asks which question to practice.
type Selector struct {
	evaluator *Evaluator
	shell     console.Shell
	tr        i18n.Translator
	logger    *slog.Logger
}

// NewSelector creates a Selector. It panics if a dependency is nil.
func NewSelector(evaluator *Evaluator, shell console.Shell, tr i18n.Translator, logger *slog.Logger) *Selector {
	if evaluator == nil {
		panic("evaluator cannot be nil")
	}
	if shell == nil {
		panic("shell cannot be nil")
	}
	if tr == nil {
		panic("translator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Selector{
		evaluator: evaluator,
		shell:     shell,
		tr:        tr,
		logger:    logger.With(slog.String("component", "question_selector")),
	}
}

// SelectQuestion returns the ID of the card the user chose. ok is false when
// there is nothing to practice or the user chose to exit.
//
// Only cards that are not yet answered correctly can be chosen. Invalid
// choices are reported and asked again without limit.
func (s *Selector) SelectQuestion(ctx context.Context) (cardID int64, ok bool, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.evaluator.BuildProgressTable(ctx)
	if err != nil {
		return 0, false, err
	}
	stats := domain.ComputeStatistics(rows)

	if stats.Total == 0 {
		s.shell.Error(s.tr.T("errors.nothing_to_do"))
		return 0, false, nil
	}

	s.renderTable(rows)
	pct, _ := stats.PercentCorrect()
	s.shell.Line(s.tr.T("interaction.completed", i18n.P("pct", fmt.Sprintf("%-3.1f", pct))))

	if stats.Open() == 0 {
		s.shell.Error(s.tr.T("errors.all_questions_answered"))
		return 0, false, nil
	}

	eligible := eligibleCodes(rows)
	check := validation.For(s.tr, "response").
		Required().
		In(eligible, "errors.invalid_question").
		Check

	response, err := validation.Prompt(ctx, s.shell, s.tr.T("interaction.enter_or_exit"), check)
	if err != nil {
		return 0, false, err
	}

	if strings.EqualFold(response, exitLower) {
		log.Debug("selection exited")
		return 0, false, nil
	}

	row, err := rowForCode(rows, response)
	if err != nil {
		log.Error("selection invariant violated",
			slog.String("response", response),
			slog.Int("rows", len(rows)))
		return 0, false, err
	}

	log.Debug("question selected", slog.Int64("card_id", row.CardID), slog.Int("seq", row.Seq))
	return row.CardID, true, nil
}

func (s *Selector) renderTable(rows []domain.ProgressRow) {
	headers := []string{"#", s.tr.T("headers.question"), s.tr.T("headers.result")}
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, []string{
			strconv.Itoa(row.Seq),
			row.Question,
			s.tr.T("statistics." + row.Result.String()),
		})
	}
	s.shell.Table(headers, body)
}

// eligibleCodes lists the sequence numbers of rows that still need practice,
// followed by the exit codes.
func eligibleCodes(rows []domain.ProgressRow) []string {
	codes := make([]string, 0, len(rows)+2)
	for _, row := range rows {
		switch row.Result {
		case domain.NotAnswered, domain.Incorrect:
			codes = append(codes, strconv.Itoa(row.Seq))
		case domain.Correct:
		}
	}
	return append(codes, exitLower, exitUpper)
}

func rowForCode(rows []domain.ProgressRow, code string) (domain.ProgressRow, error) {
	var (
		found   domain.ProgressRow
		matches int
	)
	for _, row := range rows {
		if strconv.Itoa(row.Seq) == code {
			found = row
			matches++
		}
	}
	if matches != 1 {
		return domain.ProgressRow{}, fmt.Errorf("%w: code %q matched %d rows", ErrSelectionInvariant, code, matches)
	}
	return found, nil
}
