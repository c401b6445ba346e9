package sqlstore

import (
	"log/slog"

	"github.com/phrazzld/scry-drill/internal/store"
)

// Store bundles the card and answer stores of one database.
type Store struct {
	*CardStore
	*AnswerStore
}

var _ store.Store = (*Store)(nil)

// New creates the full store on an open database.
func New(db *DB, logger *slog.Logger) *Store {
	return &Store{
		CardStore:   NewCardStore(db, logger),
		AnswerStore: NewAnswerStore(db, logger),
	}
}
