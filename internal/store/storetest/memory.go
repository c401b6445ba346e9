// Package storetest provides an in-memory store.Store for tests.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/scry-drill/internal/domain"
	"github.com/phrazzld/scry-drill/internal/store"
)

// Op names a store method for failure injection.
type Op string

// Store operations.
const (
	OpListCards       Op = "ListCards"
	OpGetCard         Op = "GetCard"
	OpCreateCard      Op = "CreateCard"
	OpGetAnswer       Op = "GetAnswer"
	OpListAnswers     Op = "ListAnswers"
	OpUpsertAnswer    Op = "UpsertAnswer"
	OpTruncateAnswers Op = "TruncateAnswers"
)

// Memory is a store.Store kept in maps. It mirrors the SQL stores: ids are
// assigned in increasing order, answers are keyed by card, and upserts for
// unknown cards fail with store.ErrInvalidEntity.
type Memory struct {
	mu      sync.Mutex
	nextID  int64
	nextAns int64
	cards   map[int64]domain.Card
	answers map[int64]domain.Answer
	fail    map[Op]error
	calls   map[Op]int
}

var _ store.Store = (*Memory)(nil)

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		cards:   make(map[int64]domain.Card),
		answers: make(map[int64]domain.Answer),
		fail:    make(map[Op]error),
		calls:   make(map[Op]int),
	}
}

// FailOn makes every later call of op return err. A nil err clears it.
func (m *Memory) FailOn(op Op, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fail, op)
		return
	}
	m.fail[op] = err
}

// Calls reports how often op has been invoked.
func (m *Memory) Calls(op Op) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// AddCard seeds a card and returns it.
func (m *Memory) AddCard(question, answer string) domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c := domain.Card{ID: m.nextID, Question: question, Answer: answer, CreatedAt: time.Now().UTC()}
	m.cards[c.ID] = c
	return c
}

func (m *Memory) enter(op Op) error {
	m.calls[op]++
	return m.fail[op]
}

// ListCards implements store.CardStore.
func (m *Memory) ListCards(_ context.Context) ([]domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpListCards); err != nil {
		return nil, err
	}

	cards := make([]domain.Card, 0, len(m.cards))
	for _, c := range m.cards {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

// GetCard implements store.CardStore.
func (m *Memory) GetCard(_ context.Context, id int64) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpGetCard); err != nil {
		return nil, err
	}

	c, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return &c, nil
}

// CreateCard implements store.CardStore.
func (m *Memory) CreateCard(_ context.Context, question, answer string) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpCreateCard); err != nil {
		return nil, err
	}

	card, err := domain.NewCard(question, answer)
	if err != nil {
		return nil, store.NewStoreError("card", "create", "validation failed", store.ErrInvalidEntity)
	}
	m.nextID++
	card.ID = m.nextID
	m.cards[card.ID] = *card
	return card, nil
}

// GetAnswer implements store.AnswerStore.
func (m *Memory) GetAnswer(_ context.Context, cardID int64) (*domain.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpGetAnswer); err != nil {
		return nil, err
	}

	a, ok := m.answers[cardID]
	if !ok {
		return nil, store.ErrAnswerNotFound
	}
	return &a, nil
}

// ListAnswers implements store.AnswerStore.
func (m *Memory) ListAnswers(_ context.Context) ([]domain.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpListAnswers); err != nil {
		return nil, err
	}

	answers := make([]domain.Answer, 0, len(m.answers))
	for _, a := range m.answers {
		answers = append(answers, a)
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].CardID < answers[j].CardID })
	return answers, nil
}

// UpsertAnswer implements store.AnswerStore.
func (m *Memory) UpsertAnswer(_ context.Context, cardID int64, text string) (*domain.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpUpsertAnswer); err != nil {
		return nil, err
	}

	if _, ok := m.cards[cardID]; !ok {
		return nil, store.NewStoreError("answer", "upsert", "unknown card", store.ErrInvalidEntity)
	}

	if existing, ok := m.answers[cardID]; ok {
		if err := existing.Overwrite(text); err != nil {
			return nil, store.NewStoreError("answer", "upsert", "validation failed", store.ErrInvalidEntity)
		}
		m.answers[cardID] = existing
		return &existing, nil
	}

	a, err := domain.NewAnswer(cardID, text)
	if err != nil {
		return nil, store.NewStoreError("answer", "upsert", "validation failed", store.ErrInvalidEntity)
	}
	m.nextAns++
	a.ID = m.nextAns
	m.answers[cardID] = *a
	return a, nil
}

// TruncateAnswers implements store.AnswerStore.
func (m *Memory) TruncateAnswers(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpTruncateAnswers); err != nil {
		return err
	}

	m.answers = make(map[int64]domain.Answer)
	m.nextAns = 0
	return nil
}
