package queries_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetApplicationQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetApplicationQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.ApplicationID().IsEqual(id))

	_, err = queries.NewGetApplicationQuery(kernel.UUID{})
	require.Error(t, err)

	assert.ErrorIs(t, queries.GetApplicationQuery{}.Validate(), queries.ErrGetApplicationQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(id))

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)

	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetAuditTrailQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetAuditTrailQuery(audit.EntityDocument, id)
	require.NoError(t, err)
	assert.Equal(t, audit.EntityDocument, query.EntityType())
	assert.True(t, query.EntityID().IsEqual(id))

	_, err = queries.NewGetAuditTrailQuery(audit.EntityType("courier"), id)
	require.Error(t, err)

	assert.ErrorIs(t, queries.GetAuditTrailQuery{}.Validate(), queries.ErrGetAuditTrailQueryIsNotConstructed)
}

func TestNewGetVerificationStatisticsQuery(t *testing.T) {
	now := time.Now()
	query, err := queries.NewGetVerificationStatisticsQuery(now)
	require.NoError(t, err)
	assert.Equal(t, now, query.AsOf())

	_, err = queries.NewGetVerificationStatisticsQuery(time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.ErrorIs(t, queries.GetVerificationStatisticsQuery{}.Validate(),
		queries.ErrGetVerificationStatisticsQueryIsNotConstructed)
}

func TestNewListReviewQueueQuery(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{name: "lower bound", limit: 1},
		{name: "upper bound", limit: 200},
		{name: "zero", limit: 0, wantErr: true},
		{name: "above maximum", limit: 201, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewListReviewQueueQuery(tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.limit, query.Limit())
		})
	}

	assert.ErrorIs(t, queries.ListReviewQueueQuery{}.Validate(), queries.ErrListReviewQueueQueryIsNotConstructed)
}
