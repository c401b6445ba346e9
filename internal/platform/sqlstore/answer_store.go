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

var answerColumns = []string{"id", "card_id", "answer", "created_at", "updated_at"}

// AnswerStore implements store.AnswerStore on a SQL database.
type AnswerStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewAnswerStore creates an answer store on an open database.
// If logger is nil, a default logger will be used.
func NewAnswerStore(db *DB, logger *slog.Logger) *AnswerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AnswerStore{
		db:      db.DB,
		dialect: db.Dialect(),
		logger:  logger.With(slog.String("component", "answer_store")),
	}
}

var _ store.AnswerStore = (*AnswerStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row rowScanner) (domain.Answer, error) {
	var a domain.Answer
	err := row.Scan(&a.ID, &a.CardID, &a.Answer, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetAnswer implements store.AnswerStore.GetAnswer.
func (s *AnswerStore) GetAnswer(ctx context.Context, cardID int64) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.dialect.builder().
		Select(answerColumns...).
		From("answers").
		Where("card_id = ?", cardID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build answer query: %w", err)
	}

	a, err := scanAnswer(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrAnswerNotFound
	}
	if err != nil {
		log.Error("failed to get answer",
			slog.Int64("card_id", cardID),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("answer", "get", "query failed", MapError(err))
	}

	return &a, nil
}

// ListAnswers implements store.AnswerStore.ListAnswers.
func (s *AnswerStore) ListAnswers(ctx context.Context) ([]domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.dialect.builder().
		Select(answerColumns...).
		From("answers").
		OrderBy("card_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build answer list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list answers", slog.String("error", err.Error()))
		return nil, store.NewStoreError("answer", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	answers := []domain.Answer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, store.NewStoreError("answer", "list", "scan failed", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("answer", "list", "iteration failed", MapError(err))
	}

	return answers, nil
}

// UpsertAnswer implements store.AnswerStore.UpsertAnswer.
// Creation and overwrite happen in one INSERT ... ON CONFLICT statement, so
// the one-answer-per-card constraint holds without a transaction.
func (s *AnswerStore) UpsertAnswer(ctx context.Context, cardID int64, text string) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	answer, err := domain.NewAnswer(cardID, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query, args, err := s.dialect.builder().
		Insert("answers").
		Columns("card_id", "answer", "created_at", "updated_at").
		Values(answer.CardID, answer.Answer, answer.CreatedAt, answer.UpdatedAt).
		Suffix("ON CONFLICT (card_id) DO UPDATE SET answer = excluded.answer, updated_at = excluded.updated_at").
		Suffix("RETURNING id, card_id, answer, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build answer upsert: %w", err)
	}

	saved, err := scanAnswer(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Error("failed to upsert answer",
			slog.Int64("card_id", cardID),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("answer", "upsert", "write failed", MapError(err))
	}

	log.Debug("answer recorded",
		slog.Int64("card_id", cardID),
		slog.Int64("answer_id", saved.ID))
	return &saved, nil
}

// TruncateAnswers implements store.AnswerStore.TruncateAnswers.
func (s *AnswerStore) TruncateAnswers(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "DELETE FROM answers"
	if s.dialect == DialectPostgres {
		query = "TRUNCATE TABLE answers RESTART IDENTITY"
	}

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		log.Error("failed to truncate answers", slog.String("error", err.Error()))
		return store.NewStoreError("answer", "truncate", "delete failed", MapError(err))
	}

	log.Info("answers truncated")
	return nil
}
