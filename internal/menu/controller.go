package menu

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/phrazzld/scry-drill/internal/console"
	"github.com/phrazzld/scry-drill/internal/domain"
	"github.com/phrazzld/scry-drill/internal/i18n"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/practice"
	"github.com/phrazzld/scry-drill/internal/store"
	"github.com/phrazzld/scry-drill/internal/validation"
)

// Menu options, as typed by the user.
const (
	OptionCreate   = "1"
	OptionList     = "2"
	OptionPractice = "3"
	OptionStats    = "4"
	OptionReset    = "5"
	OptionExit     = "6"
)

// options lists the menu in display order with the label keys.
var options = []struct {
	code  string
	label string
}{
	{OptionCreate, "menu.create_flashcard"},
	{OptionList, "menu.list_flashcards"},
	{OptionPractice, "menu.practice"},
	{OptionStats, "menu.stats"},
	{OptionReset, "menu.reset"},
	{OptionExit, "menu.exit"},
}

// Controller renders the main menu and runs the chosen action.
type Controller struct {
	store     store.Store
	shell     console.Shell
	tr        i18n.Translator
	trainer   *practice.Trainer
	evaluator *practice.Evaluator
	choice    validation.Check
	logger    *slog.Logger
}

// NewController creates a Controller. It panics if a dependency is nil.
func NewController(st store.Store, shell console.Shell, tr i18n.Translator, logger *slog.Logger) *Controller {
	if st == nil {
		panic("store cannot be nil")
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

	return &Controller{
		store:     st,
		shell:     shell,
		tr:        tr,
		trainer:   practice.NewTrainer(st, shell, tr, logger),
		evaluator: practice.NewEvaluator(st, st, logger),
		choice:    validation.For(tr, "response").Required().Integer().Min(1).Max(len(options)).Check,
		logger:    logger.With(slog.String("component", "menu_controller")),
	}
}

// ShowMenu prints one "N - label" line per option.
func (c *Controller) ShowMenu() {
	for _, opt := range options {
		c.shell.Line(opt.code + " - " + c.tr.T(opt.label))
	}
}

// Handle validates a menu response and runs the matching action. exit is
// true only for the exit option. An invalid response is reported on the
// shell and nothing runs. Errors come from the action, typically a store
// failure or the end of input.
func (c *Controller) Handle(ctx context.Context, response string) (exit bool, err error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if !validation.Validate(c.shell, response, c.choice) {
		return false, nil
	}

	// "+3" selects option 3; only the literal "6" exits.
	n, _ := strconv.Atoi(response)
	option := strconv.Itoa(n)
	log.Debug("menu option chosen", slog.String("option", option))

	switch option {
	case OptionCreate:
		err = c.createCard(ctx)
	case OptionList:
		err = c.listCards(ctx)
	case OptionPractice:
		err = c.trainer.Run(ctx)
	case OptionStats:
		err = c.showStatistics(ctx)
	case OptionReset:
		err = c.reset(ctx)
	}

	return response == OptionExit, err
}

func (c *Controller) createCard(ctx context.Context) error {
	question, err := c.shell.Ask(c.tr.T("interaction.question_or_enter"))
	if err != nil {
		return fmt.Errorf("failed to read question: %w", err)
	}
	if question == "" {
		return nil
	}

	check := validation.For(c.tr, "answer").Required().Check
	answer, err := validation.Prompt(ctx, c.shell, c.tr.T("interaction.answer"), check)
	if err != nil {
		return err
	}

	if _, err := c.store.CreateCard(ctx, question, answer); err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	c.shell.Info(c.tr.T("interaction.card_created"))
	return nil
}

func (c *Controller) listCards(ctx context.Context) error {
	cards, err := c.store.ListCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []string{card.Question, card.Answer})
	}
	c.shell.Table([]string{c.tr.T("headers.question"), c.tr.T("headers.answer")}, rows)
	return nil
}

func (c *Controller) showStatistics(ctx context.Context) error {
	stats, err := c.evaluator.Statistics(ctx)
	if err != nil {
		return err
	}

	c.shell.Table(
		[]string{c.tr.T("headers.statistic"), c.tr.T("headers.value")},
		[][]string{
			{c.tr.T("statistics.total_questions"), fmt.Sprintf("%-3d", stats.Total)},
			{c.tr.T("statistics.pct_answered"), c.percentage(stats.PercentAnswered())},
			{c.tr.T("statistics.pct_correct"), c.percentage(stats.PercentCorrect())},
		},
	)
	return nil
}

func (c *Controller) percentage(pct float64, ok bool) string {
	if !ok {
		return c.tr.T("statistics.not_available")
	}
	return fmt.Sprintf("%-3.1f %%", pct)
}

func (c *Controller) reset(ctx context.Context) error {
	if err := c.store.TruncateAnswers(ctx); err != nil {
		return fmt.Errorf("failed to reset answers: %w", err)
	}
	c.shell.Info(c.tr.T("interaction.reset_done"))
	return nil
}

// Statistics exposes the aggregate progress, for callers outside the menu.
func (c *Controller) Statistics(ctx context.Context) (domain.Statistics, error) {
	return c.evaluator.Statistics(ctx)
}
