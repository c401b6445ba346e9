package domain

import "fmt"

// Result classifies a card by its latest recorded answer.
type Result uint8

// The three possible results. The zero value is NotAnswered.
const (
	NotAnswered Result = iota
	Correct
	Incorrect
)

// String returns the stable name of the result, also used as the
// suffix of its translation key.
func (r Result) String() string {
	switch r {
	case NotAnswered:
		return "not_answered"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Classify derives the result of a card from its answer, which is nil
// when the card has never been answered.
func Classify(card Card, answer *Answer) Result {
	if answer == nil {
		return NotAnswered
	}
	if card.IsCorrect(answer.Answer) {
		return Correct
	}
	return Incorrect
}
