package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OutboxIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *OutboxIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OutboxIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *OutboxIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxIntegrationTestSuite) TestClaimUnpublished_OldestFirst() {
	ctx := context.Background()
	outbox := outboxrepo.NewGormOutbox(suite.db)
	base := time.Now().Add(-time.Minute)
	later := suite.event(base.Add(10 * time.Second))
	earlier := suite.event(base)
	suite.Require().NoError(outbox.Add(ctx, later))
	suite.Require().NoError(outbox.Add(ctx, earlier))

	messages, err := outbox.ClaimUnpublished(ctx, 10, time.Now(), time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.True(messages[0].ID.IsEqual(earlier.ID))
	suite.Equal(string(services.EventOrderDelivered), messages[0].EventType)
	suite.Equal(audit.EntityOrder.String(), messages[0].EntityType)
	suite.JSONEq(`{"order_id":"`+earlier.EntityID.String()+`"}`, string(messages[0].Payload))
}

func (suite *OutboxIntegrationTestSuite) TestClaimUnpublished_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		suite.Require().NoError(outboxrepo.NewGormOutbox(suite.db).Add(ctx, suite.event(time.Now().Add(time.Duration(i)*time.Second))))
	}

	first := suite.db.Begin()
	defer first.Rollback()
	second := suite.db.Begin()
	defer second.Rollback()

	claimed, err := outboxrepo.NewGormOutbox(first).ClaimUnpublished(ctx, 2, time.Now(), time.Minute)
	suite.Require().NoError(err)
	suite.Len(claimed, 2)

	rest, err := outboxrepo.NewGormOutbox(second).ClaimUnpublished(ctx, 10, time.Now(), time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	for _, m := range claimed {
		suite.False(m.ID.IsEqual(rest[0].ID))
	}
}

func (suite *OutboxIntegrationTestSuite) TestClaimUnpublished_LeaseOutlivesTransaction() {
	ctx := context.Background()
	outbox := outboxrepo.NewGormOutbox(suite.db)
	now := time.Now()
	suite.Require().NoError(outbox.Add(ctx, suite.event(now.Add(-time.Second))))

	claimed, err := outbox.ClaimUnpublished(ctx, 10, now, time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)

	again, err := outbox.ClaimUnpublished(ctx, 10, now.Add(30*time.Second), time.Minute)
	suite.Require().NoError(err)
	suite.Empty(again)

	expired, err := outbox.ClaimUnpublished(ctx, 10, now.Add(2*time.Minute), time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(expired, 1)
	suite.True(expired[0].ID.IsEqual(claimed[0].ID))
}

func (suite *OutboxIntegrationTestSuite) TestMarkPublished_HidesMessages() {
	ctx := context.Background()
	outbox := outboxrepo.NewGormOutbox(suite.db)
	published := suite.event(time.Now().Add(-time.Second))
	pending := suite.event(time.Now())
	suite.Require().NoError(outbox.Add(ctx, published))
	suite.Require().NoError(outbox.Add(ctx, pending))

	suite.Require().NoError(outbox.MarkPublished(ctx, []kernel.UUID{published.ID}, time.Now()))
	suite.Require().NoError(outbox.MarkPublished(ctx, nil, time.Now()))

	messages, err := outbox.ClaimUnpublished(ctx, 10, time.Now(), time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.True(messages[0].ID.IsEqual(pending.ID))
}

func (suite *OutboxIntegrationTestSuite) event(at time.Time) services.LifecycleEvent {
	orderID := kernel.NewUUID()
	return services.LifecycleEvent{
		ID:         kernel.NewUUID(),
		Type:       services.EventOrderDelivered,
		EntityType: audit.EntityOrder,
		EntityID:   orderID,
		OccurredAt: at,
		Payload:    map[string]any{"order_id": orderID.String()},
	}
}

func TestOutboxIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxIntegrationTestSuite))
}
