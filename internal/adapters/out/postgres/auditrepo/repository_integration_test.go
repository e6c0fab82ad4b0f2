package auditrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/auditrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type AuditLogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	log       *auditrepo.GormAuditLog
}

func (suite *AuditLogIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *AuditLogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.log = auditrepo.NewGormAuditLog(suite.db)
}

func (suite *AuditLogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuditLogIntegrationTestSuite) TestAppend_ListByEntity_KeepsOrderAndMetadata() {
	ctx := context.Background()
	id := kernel.NewUUID()
	actor := kernel.NewUUID()
	now := time.Now()

	first, err := audit.NewEntry(audit.EntityOrder, id, audit.ActionPlace, "", "pending", actor, now, nil)
	suite.Require().NoError(err)
	second, err := audit.NewEntry(audit.EntityOrder, id, audit.ActionCancel, "pending", "cancelled", actor, now,
		audit.Metadata{"reason": "out of stock"})
	suite.Require().NoError(err)
	other, err := audit.NewEntry(audit.EntityOrder, kernel.NewUUID(), audit.ActionPlace, "", "pending", actor, now, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.log.Append(ctx, []audit.Entry{first, other}))
	suite.Require().NoError(suite.log.Append(ctx, []audit.Entry{second}))

	entries, err := suite.log.ListByEntity(ctx, audit.EntityOrder, id)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(audit.ActionPlace, entries[0].Action())
	suite.Equal(audit.ActionCancel, entries[1].Action())
	suite.Less(entries[0].Sequence(), entries[1].Sequence())
	suite.Equal("out of stock", entries[1].Metadata()["reason"])
	suite.True(entries[1].ActorID().IsEqual(actor))
}

func (suite *AuditLogIntegrationTestSuite) TestListByEntity_Unknown_ReturnsEmpty() {
	entries, err := suite.log.ListByEntity(context.Background(), audit.EntityApplication, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *AuditLogIntegrationTestSuite) TestReplay_MatchesStoredOrder() {
	ctx := context.Background()
	orders := orderrepo.NewGormOrderRepository(suite.db)
	customer := kernel.NewUUID()
	o, err := order.NewOrder(customer, kernel.NewUUID(), customer, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(orders.Add(ctx, o))
	suite.Require().NoError(suite.log.Append(ctx, o.PendingAuditEntries()))
	o.ClearPendingAuditEntries()

	steps := []func(*order.Order) error{
		func(o *order.Order) error { return o.Advance(order.Confirmed, customer, "", time.Now()) },
		func(o *order.Order) error { return o.Advance(order.Preparing, customer, "", time.Now()) },
		func(o *order.Order) error { return o.Cancel(customer, "closed early", time.Now()) },
	}
	for _, step := range steps {
		current, err := orders.Get(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(step(current))
		suite.Require().NoError(orders.Update(ctx, current))
		suite.Require().NoError(suite.log.Append(ctx, current.PendingAuditEntries()))
	}

	stored, err := orders.Get(ctx, o.ID())
	suite.Require().NoError(err)
	entries, err := suite.log.ListByEntity(ctx, audit.EntityOrder, o.ID())
	suite.Require().NoError(err)
	suite.Len(entries, 4)

	replayed := audit.Replay(entries)
	suite.Equal(stored.Status().String(), replayed[audit.Key{EntityType: audit.EntityOrder, EntityID: o.ID().String()}])
}

func TestAuditLogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogIntegrationTestSuite))
}
