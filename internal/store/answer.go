package store

import (
	"context"

	"github.com/phrazzld/scry-drill/internal/domain"
)

// AnswerStore defines the interface for answer data persistence.
// A card has at most one answer; writes replace it.
type AnswerStore interface {
	// GetAnswer retrieves the answer recorded for a card.
	// Returns ErrAnswerNotFound if the card has not been answered.
	GetAnswer(ctx context.Context, cardID int64) (*domain.Answer, error)

	// ListAnswers returns all recorded answers in ascending card ID order.
	ListAnswers(ctx context.Context) ([]domain.Answer, error)

	// UpsertAnswer records text as the answer for a card: it creates the
	// answer if none exists and overwrites it otherwise. The write is a
	// single atomic statement.
	// Returns ErrInvalidEntity if the card does not exist.
	UpsertAnswer(ctx context.Context, cardID int64, text string) (*domain.Answer, error)

	// TruncateAnswers deletes every answer. Cards are left untouched.
	TruncateAnswers(ctx context.Context) error
}

// Store combines card and answer persistence behind one value.
type Store interface {
	CardStore
	AnswerStore
}
