package store

import (
	"context"

	"github.com/phrazzld/scry-drill/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// ListCards returns every card in ascending ID order, which is the order
	// the cards were created in. Returns an empty slice when there are none.
	ListCards(ctx context.Context) ([]domain.Card, error)

	// GetCard retrieves a card by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetCard(ctx context.Context, id int64) (*domain.Card, error)

	// CreateCard validates and saves a new card, returning it with the
	// store-assigned ID.
	CreateCard(ctx context.Context, question, answer string) (*domain.Card, error)
}
