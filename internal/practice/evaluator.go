package practice

import (
	"context"
	"log/slog"

	"github.com/phrazzld/scry-drill/internal/domain"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/store"
)

// Evaluator joins cards with their recorded answers into a progress table.
// Nothing it produces is cached or persisted; every call reads the store.
type Evaluator struct {
	cards   store.CardStore
	answers store.AnswerStore
	logger  *slog.Logger
}

// NewEvaluator creates an Evaluator. It panics if a store is nil.
func NewEvaluator(cards store.CardStore, answers store.AnswerStore, logger *slog.Logger) *Evaluator {
	if cards == nil {
		panic("cards cannot be nil")
	}
	if answers == nil {
		panic("answers cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Evaluator{
		cards:   cards,
		answers: answers,
		logger:  logger.With(slog.String("component", "progress_evaluator")),
	}
}

// BuildProgressTable returns one row per card, in ascending card ID order,
// numbered from 1. Cards without an answer are reported as not answered.
func (e *Evaluator) BuildProgressTable(ctx context.Context) ([]domain.ProgressRow, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	cards, err := e.cards.ListCards(ctx)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", err.Error()))
		return nil, newPracticeError("build_progress", "failed to list cards", err)
	}

	answers, err := e.answers.ListAnswers(ctx)
	if err != nil {
		log.Error("failed to list answers", slog.String("error", err.Error()))
		return nil, newPracticeError("build_progress", "failed to list answers", err)
	}

	byCard := make(map[int64]*domain.Answer, len(answers))
	for i := range answers {
		byCard[answers[i].CardID] = &answers[i]
	}

	rows := domain.BuildProgress(cards, byCard)
	log.Debug("progress table built",
		slog.Int("cards", len(cards)),
		slog.Int("answers", len(answers)))
	return rows, nil
}

// Statistics builds the progress table and aggregates it.
func (e *Evaluator) Statistics(ctx context.Context) (domain.Statistics, error) {
	rows, err := e.BuildProgressTable(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	return domain.ComputeStatistics(rows), nil
}
