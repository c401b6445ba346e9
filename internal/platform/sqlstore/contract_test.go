package sqlstore_test

import (
	"context"
	"testing"

	"github.com/phrazzld/scry-drill/internal/domain"
	"github.com/phrazzld/scry-drill/internal/platform/sqlstore"
	"github.com/phrazzld/scry-drill/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises store.Store behaviour shared by every dialect.
// newStore must return a store backed by an empty, migrated database.
func runStoreContract(t *testing.T, newStore func(t *testing.T) *sqlstore.Store) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		cards, err := st.ListCards(ctx)
		require.NoError(t, err)
		assert.Empty(t, cards)
		assert.NotNil(t, cards)

		answers, err := st.ListAnswers(ctx)
		require.NoError(t, err)
		assert.Empty(t, answers)
	})

	t.Run("cards are listed in creation order", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		first, err := st.CreateCard(ctx, "2+2", "4")
		require.NoError(t, err)
		second, err := st.CreateCard(ctx, "capital of France", "Paris")
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)

		cards, err := st.ListCards(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, first.ID, cards[0].ID)
		assert.Equal(t, "2+2", cards[0].Question)
		assert.Equal(t, "4", cards[0].Answer)
		assert.Equal(t, second.ID, cards[1].ID)
		assert.False(t, cards[0].CreatedAt.IsZero())
	})

	t.Run("get card", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		created, err := st.CreateCard(ctx, "q", "a")
		require.NoError(t, err)

		got, err := st.GetCard(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "q", got.Question)
		assert.Equal(t, "a", got.Answer)

		_, err = st.GetCard(ctx, created.ID+100)
		assert.ErrorIs(t, err, store.ErrCardNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("create card rejects empty content", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		_, err := st.CreateCard(ctx, "", "a")
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrCardQuestionEmpty)

		_, err = st.CreateCard(ctx, "q", "")
		assert.ErrorIs(t, err, store.ErrInvalidEntity)

		cards, err := st.ListCards(ctx)
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("upsert keeps one answer per card", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		card, err := st.CreateCard(ctx, "2+2", "4")
		require.NoError(t, err)

		_, err = st.GetAnswer(ctx, card.ID)
		assert.ErrorIs(t, err, store.ErrAnswerNotFound)

		first, err := st.UpsertAnswer(ctx, card.ID, "5")
		require.NoError(t, err)
		assert.Equal(t, card.ID, first.CardID)
		assert.Equal(t, "5", first.Answer)

		second, err := st.UpsertAnswer(ctx, card.ID, "4")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "4", second.Answer)
		assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

		answers, err := st.ListAnswers(ctx)
		require.NoError(t, err)
		require.Len(t, answers, 1)
		assert.Equal(t, "4", answers[0].Answer)

		got, err := st.GetAnswer(ctx, card.ID)
		require.NoError(t, err)
		assert.Equal(t, "4", got.Answer)
	})

	t.Run("upsert for unknown card is an invalid entity", func(t *testing.T) {
		st := newStore(t)

		_, err := st.UpsertAnswer(context.Background(), 999, "x")
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("upsert rejects empty text", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		card, err := st.CreateCard(ctx, "q", "a")
		require.NoError(t, err)

		_, err = st.UpsertAnswer(ctx, card.ID, "")
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("truncate removes answers and keeps cards", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		a, err := st.CreateCard(ctx, "2+2", "4")
		require.NoError(t, err)
		b, err := st.CreateCard(ctx, "3+3", "6")
		require.NoError(t, err)
		_, err = st.UpsertAnswer(ctx, a.ID, "4")
		require.NoError(t, err)
		_, err = st.UpsertAnswer(ctx, b.ID, "7")
		require.NoError(t, err)

		require.NoError(t, st.TruncateAnswers(ctx))

		answers, err := st.ListAnswers(ctx)
		require.NoError(t, err)
		assert.Empty(t, answers)

		cards, err := st.ListCards(ctx)
		require.NoError(t, err)
		assert.Len(t, cards, 2)

		// Truncating an empty table is not an error.
		require.NoError(t, st.TruncateAnswers(ctx))
	})
}
