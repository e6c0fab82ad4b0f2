package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRevision(t *testing.T) {
	r := kernel.NewRevision()

	assert.True(t, r.IsNew())
	assert.Equal(t, int64(0), r.Expected())
	assert.Equal(t, int64(1), r.Current())
	assert.True(t, r.HasChanges())
}

func TestRestoreRevision(t *testing.T) {
	t.Run("restored revision has no changes", func(t *testing.T) {
		r, err := kernel.RestoreRevision(7)

		require.NoError(t, err)
		assert.False(t, r.IsNew())
		assert.False(t, r.HasChanges())
		assert.Equal(t, int64(7), r.Expected())
		assert.Equal(t, int64(7), r.Current())
	})

	t.Run("bump moves only the current version", func(t *testing.T) {
		r, err := kernel.RestoreRevision(7)
		require.NoError(t, err)

		r.Bump()

		assert.Equal(t, int64(7), r.Expected())
		assert.Equal(t, int64(8), r.Current())
		assert.True(t, r.HasChanges())
	})

	t.Run("rejects versions below one", func(t *testing.T) {
		for _, v := range []int64{0, -1} {
			_, err := kernel.RestoreRevision(v)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
