package domain

import (
	"fmt"
	"time"
)

// Common validation errors for Answer
var (
	ErrAnswerCardIDEmpty = fmt.Errorf("%w: answer card", ErrInvalidID)
	ErrAnswerTextEmpty   = fmt.Errorf("%w: answer text", ErrEmptyContent)
)

// Answer is the latest response a user gave to a card.
// There is at most one Answer per card; answering again overwrites it.
type Answer struct {
	ID        int64     `json:"id"`
	CardID    int64     `json:"card_id"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAnswer creates an unsaved Answer bound to the given card.
func NewAnswer(cardID int64, text string) (*Answer, error) {
	now := time.Now().UTC()
	answer := &Answer{
		CardID:    cardID,
		Answer:    text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := answer.Validate(); err != nil {
		return nil, err
	}

	return answer, nil
}

// Validate checks if the Answer has valid data.
func (a *Answer) Validate() error {
	if a.CardID <= 0 {
		return ErrAnswerCardIDEmpty
	}

	if a.Answer == "" {
		return ErrAnswerTextEmpty
	}

	return nil
}

// Overwrite replaces the recorded response and bumps UpdatedAt.
// The card binding and creation time are kept.
func (a *Answer) Overwrite(text string) error {
	previous := a.Answer
	a.Answer = text

	if err := a.Validate(); err != nil {
		a.Answer = previous
		return err
	}

	a.UpdatedAt = time.Now().UTC()
	return nil
}
