package practice

import (
	"context"
	"log/slog"

	"github.com/phrazzld/scry-drill/internal/console"
	"github.com/phrazzld/scry-drill/internal/domain"
	"github.com/phrazzld/scry-drill/internal/i18n"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/store"
	"github.com/phrazzld/scry-drill/internal/validation"
)

// Trainer runs the practice loop: select a question, ask it, record the
// answer and tell the user whether it was right.
type Trainer struct {
	selector *Selector
	store    store.Store
	shell    console.Shell
	tr       i18n.Translator
	logger   *slog.Logger
}

// NewTrainer wires a Trainer and its Selector and Evaluator over st.
// It panics if a dependency is nil.
func NewTrainer(st store.Store, shell console.Shell, tr i18n.Translator, logger *slog.Logger) *Trainer {
	if st == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	evaluator := NewEvaluator(st, st, logger)
	return &Trainer{
		selector: NewSelector(evaluator, shell, tr, logger),
		store:    st,
		shell:    shell,
		tr:       tr,
		logger:   logger.With(slog.String("component", "practice_trainer")),
	}
}

// Run repeats practice rounds until the user exits or nothing is left to
// practice. Invalid answers are asked again; a store failure or the end of
// input ends the session with an error.
func (t *Trainer) Run(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, t.logger)
	log.Debug("practice started")

	rounds := 0
	for {
		cardID, ok, err := t.selector.SelectQuestion(ctx)
		if err != nil {
			return err
		}
		if !ok {
			log.Debug("practice finished", slog.Int("rounds", rounds))
			return nil
		}

		if err := t.practice(ctx, log, cardID); err != nil {
			return err
		}
		rounds++
	}
}

func (t *Trainer) practice(ctx context.Context, log *slog.Logger, cardID int64) error {
	card, err := t.store.GetCard(ctx, cardID)
	if err != nil {
		log.Error("failed to load card", slog.Int64("card_id", cardID), slog.String("error", err.Error()))
		return newPracticeError("load_card", "failed to load card", err)
	}

	previous, err := t.store.GetAnswer(ctx, cardID)
	switch {
	case store.IsNotFoundError(err):
		previous = nil
	case err != nil:
		log.Error("failed to load answer", slog.Int64("card_id", cardID), slog.String("error", err.Error()))
		return newPracticeError("load_answer", "failed to load previous answer", err)
	}

	check := validation.For(t.tr, "response").Required().Check
	response, err := validation.Prompt(ctx, t.shell, card.Question, check)
	if err != nil {
		return err
	}

	if _, err := t.store.UpsertAnswer(ctx, card.ID, response); err != nil {
		log.Error("failed to record answer", slog.Int64("card_id", cardID), slog.String("error", err.Error()))
		return newPracticeError("record_answer", "failed to record answer", err)
	}

	correct := card.IsCorrect(response)
	log.Info("answer recorded",
		slog.Int64("card_id", card.ID),
		slog.String("previous", domain.Classify(*card, previous).String()),
		slog.Bool("correct", correct))

	if correct {
		t.shell.Info(t.tr.T("interaction.correct_answer"))
	} else {
		t.shell.Error(t.tr.T("interaction.incorrect_answer"))
	}
	return nil
}
