package audit_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stored(t *testing.T, seq int64, id kernel.UUID, from, to string) audit.Entry {
	t.Helper()
	e, err := audit.RestoreEntry(seq, audit.EntityOrder, id, audit.ActionAdvance, from, to, kernel.NewUUID(), time.Now(), nil)
	require.NoError(t, err)
	return e
}

func TestReplay(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	t.Run("should follow sequence rather than slice order", func(t *testing.T) {
		states := audit.Replay([]audit.Entry{
			stored(t, 3, first, "confirmed", "preparing"),
			stored(t, 1, first, "", "pending"),
			stored(t, 2, first, "pending", "confirmed"),
			stored(t, 4, second, "", "pending"),
		})

		assert.Len(t, states, 2)
		assert.Equal(t, "preparing", states[audit.Key{EntityType: audit.EntityOrder, EntityID: first.String()}])
		assert.Equal(t, "pending", states[audit.Key{EntityType: audit.EntityOrder, EntityID: second.String()}])
	})

	t.Run("should apply pending entries after stored ones", func(t *testing.T) {
		var j audit.Journal
		pending, err := audit.NewEntry(audit.EntityOrder, first, audit.ActionCancel, "preparing", "cancelled",
			kernel.NewUUID(), time.Now(), nil)
		require.NoError(t, err)
		j.Record(pending)

		entries := append(j.Pending(), stored(t, 1, first, "", "pending"), stored(t, 2, first, "pending", "preparing"))
		states := audit.Replay(entries)

		assert.Equal(t, "cancelled", states[audit.Key{EntityType: audit.EntityOrder, EntityID: first.String()}])
	})

	t.Run("should return empty map for empty trail", func(t *testing.T) {
		assert.Empty(t, audit.Replay(nil))
	})
}

func TestJournal(t *testing.T) {
	var j audit.Journal
	assert.Empty(t, j.Pending())

	e, err := audit.NewEntry(audit.EntityOrder, kernel.NewUUID(), audit.ActionPlace, "", "pending", kernel.NewUUID(), time.Now(), nil)
	require.NoError(t, err)
	j.Record(e)
	j.Record(e)

	assert.Len(t, j.Pending(), 2)
	j.Clear()
	assert.Empty(t, j.Pending())
}
