package domain

import (
	"fmt"
	"time"
)

// Card-specific validation errors
var (
	// ErrCardQuestionEmpty is returned when a card has no question text.
	ErrCardQuestionEmpty = fmt.Errorf("%w: card question", ErrEmptyContent)

	// ErrCardAnswerEmpty is returned when a card has no canonical answer.
	ErrCardAnswerEmpty = fmt.Errorf("%w: card answer", ErrEmptyContent)
)

// Card is a flashcard: a question and its canonical correct answer.
// Cards are immutable once stored; the ID is assigned by the store.
type Card struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCard creates a Card that has not been persisted yet.
// Returns an error if validation fails.
func NewCard(question, answer string) (*Card, error) {
	card := &Card{
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks that both question and answer are present.
// The ID is not checked because new cards do not have one yet.
func (c *Card) Validate() error {
	if c.Question == "" {
		return ErrCardQuestionEmpty
	}

	if c.Answer == "" {
		return ErrCardAnswerEmpty
	}

	return nil
}

// IsCorrect reports whether response matches the canonical answer.
// The comparison is literal: case and surrounding whitespace matter.
func (c *Card) IsCorrect(response string) bool {
	return response == c.Answer
}
