package verification_test

import (
	"testing"

	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	all := []verification.Status{
		verification.StatusDraft,
		verification.StatusSubmitted,
		verification.StatusUnderReview,
		verification.StatusAdditionalInfoRequired,
		verification.StatusApproved,
		verification.StatusRejected,
		verification.StatusSuspended,
	}
	legal := map[verification.Status][]verification.Status{
		verification.StatusDraft:     {verification.StatusSubmitted},
		verification.StatusSubmitted: {verification.StatusUnderReview},
		verification.StatusUnderReview: {
			verification.StatusAdditionalInfoRequired,
			verification.StatusApproved,
			verification.StatusRejected,
			verification.StatusSuspended,
		},
		verification.StatusAdditionalInfoRequired: {verification.StatusUnderReview, verification.StatusSuspended},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, candidate := range legal[from] {
				if candidate == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)

			next, err := from.TransitionTo(to)
			if want {
				require.NoError(t, err)
				assert.Equal(t, to, next)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, verification.StatusApproved.IsTerminal())
	assert.True(t, verification.StatusRejected.IsTerminal())
	assert.True(t, verification.StatusSuspended.IsTerminal())
	assert.False(t, verification.StatusUnderReview.IsTerminal())
	assert.False(t, verification.StatusDraft.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	s, err := verification.ParseStatus("additional_info_required")
	require.NoError(t, err)
	assert.Equal(t, verification.StatusAdditionalInfoRequired, s)

	_, err = verification.ParseStatus("unknown")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Error(t, verification.Status(99).Validate())
	assert.Equal(t, "unknown", verification.Status(99).String())
}

func TestPriority(t *testing.T) {
	t.Run("escalation stops at high unless already urgent", func(t *testing.T) {
		assert.Equal(t, verification.PriorityHigh, verification.PriorityLow.Escalated())
		assert.Equal(t, verification.PriorityHigh, verification.PriorityNormal.Escalated())
		assert.Equal(t, verification.PriorityHigh, verification.PriorityHigh.Escalated())
		assert.Equal(t, verification.PriorityUrgent, verification.PriorityUrgent.Escalated())
	})

	t.Run("parse", func(t *testing.T) {
		p, err := verification.ParsePriority("urgent")
		require.NoError(t, err)
		assert.Equal(t, verification.PriorityUrgent, p)

		_, err = verification.ParsePriority("critical")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseSubjectType(t *testing.T) {
	st, err := verification.ParseSubjectType("driver")
	require.NoError(t, err)
	assert.Equal(t, verification.SubjectDriver, st)

	_, err = verification.ParseSubjectType("courier")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseDocumentStatus(t *testing.T) {
	ds, err := verification.ParseDocumentStatus("under_review")
	require.NoError(t, err)
	assert.Equal(t, verification.DocumentUnderReview, ds)
	assert.True(t, ds.IsDecision())
	assert.False(t, verification.DocumentPending.IsDecision())

	_, err = verification.ParseDocumentStatus("lost")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
