package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-drill/internal/domain"
	"github.com/phrazzld/scry-drill/internal/platform/logger"
	"github.com/phrazzld/scry-drill/internal/store"
)

var cardColumns = []string{"id", "question", "answer", "created_at"}

// CardStore implements store.CardStore on a SQL database.
type CardStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewCardStore creates a card store on an open database.
// If logger is nil, a default logger will be used.
func NewCardStore(db *DB, logger *slog.Logger) *CardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CardStore{
		db:      db.DB,
		dialect: db.Dialect(),
		logger:  logger.With(slog.String("component", "card_store")),
	}
}

var _ store.CardStore = (*CardStore)(nil)

// ListCards implements store.CardStore.ListCards.
func (s *CardStore) ListCards(ctx context.Context) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.dialect.builder().
		Select(cardColumns...).
		From("cards").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build card list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", err.Error()))
		return nil, store.NewStoreError("card", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	cards := []domain.Card{}
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.Question, &c.Answer, &c.CreatedAt); err != nil {
			return nil, store.NewStoreError("card", "list", "scan failed", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("card", "list", "iteration failed", MapError(err))
	}

	log.Debug("listed cards", slog.Int("count", len(cards)))
	return cards, nil
}

// GetCard implements store.CardStore.GetCard.
func (s *CardStore) GetCard(ctx context.Context, id int64) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.dialect.builder().
		Select(cardColumns...).
		From("cards").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build card query: %w", err)
	}

	var c domain.Card
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Question, &c.Answer, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrCardNotFound
	}
	if err != nil {
		log.Error("failed to get card",
			slog.Int64("card_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("card", "get", "query failed", MapError(err))
	}

	return &c, nil
}

// CreateCard implements store.CardStore.CreateCard.
func (s *CardStore) CreateCard(ctx context.Context, question, answer string) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := domain.NewCard(question, answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query, args, err := s.dialect.builder().
		Insert("cards").
		Columns("question", "answer", "created_at").
		Values(card.Question, card.Answer, card.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build card insert: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&card.ID); err != nil {
		log.Error("failed to create card", slog.String("error", err.Error()))
		return nil, store.NewStoreError("card", "create", "insert failed", MapError(err))
	}

	log.Info("card created", slog.Int64("card_id", card.ID))
	return card, nil
}
