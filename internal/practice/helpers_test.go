package practice_test

import (
	"testing"

	"github.com/phrazzld/scry-drill/internal/i18n"
	"github.com/phrazzld/scry-drill/internal/store/storetest"
	"github.com/stretchr/testify/require"
)

func english(t *testing.T) *i18n.Catalog {
	t.Helper()
	tr, err := i18n.Load("en")
	require.NoError(t, err)
	return tr
}

// seed creates cards from question/answer pairs.
func seed(st *storetest.Memory, pairs ...[2]string) []int64 {
	ids := make([]int64, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, st.AddCard(p[0], p[1]).ID)
	}
	return ids
}
