package domain

// ProgressRow is the derived, per-card view used for display and selection.
// Seq is a 1-based display index; it is only meaningful within the table
// it was produced in and must never be stored.
type ProgressRow struct {
	Seq      int
	CardID   int64
	Question string
	Result   Result
}

// Statistics aggregates a progress table.
// Correct+Incorrect+NotAnswered always equals Total.
type Statistics struct {
	Correct     int `json:"correct"`
	Incorrect   int `json:"incorrect"`
	NotAnswered int `json:"not_answered"`
	Total       int `json:"total"`
}

// BuildProgress left-joins cards with answers keyed by card ID. Every card
// produces exactly one row, in the order given, numbered from 1.
func BuildProgress(cards []Card, answers map[int64]*Answer) []ProgressRow {
	rows := make([]ProgressRow, 0, len(cards))
	for i, card := range cards {
		rows = append(rows, ProgressRow{
			Seq:      i + 1,
			CardID:   card.ID,
			Question: card.Question,
			Result:   Classify(card, answers[card.ID]),
		})
	}
	return rows
}

// ComputeStatistics counts the rows per result. An empty table yields all
// zeroes, so callers must check Total before computing percentages.
func ComputeStatistics(rows []ProgressRow) Statistics {
	var stats Statistics
	for _, row := range rows {
		switch row.Result {
		case Correct:
			stats.Correct++
		case Incorrect:
			stats.Incorrect++
		case NotAnswered:
			stats.NotAnswered++
		}
		stats.Total++
	}
	return stats
}

// Open returns the number of cards still eligible for practice.
func (s Statistics) Open() int {
	return s.Incorrect + s.NotAnswered
}

// PercentCorrect returns 100*correct/total. ok is false when there are no
// cards and the percentage is undefined.
func (s Statistics) PercentCorrect() (pct float64, ok bool) {
	return percent(s.Correct, s.Total)
}

// PercentAnswered returns 100*(correct+incorrect)/total, with the same
// zero-total rule as PercentCorrect.
func (s Statistics) PercentAnswered() (pct float64, ok bool) {
	return percent(s.Correct+s.Incorrect, s.Total)
}

func percent(part, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return 100 * float64(part) / float64(total), true
}
