package postgres_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite checks that the state write, the audit append
// and the outbox append share one transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ApplicationRepository())
	suite.NotNil(uow2.AuditLog())
	suite.NotNil(uow2.Outbox())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsStateAuditAndOutbox() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.AuditLog().Append(ctx, o.PendingAuditEntries()))
	suite.Require().NoError(uow.Outbox().Add(ctx, suite.event(o.ID())))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount("orders", 1)
	suite.assertCount("order_status_history", 1)
	suite.assertCount("audit_log", 1)
	suite.assertCount("outbox_messages", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.AuditLog().Append(ctx, o.PendingAuditEntries()))
	suite.Require().NoError(uow.Outbox().Add(ctx, suite.event(o.ID())))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount("orders", 0)
	suite.assertCount("order_status_history", 0)
	suite.assertCount("audit_log", 0)
	suite.assertCount("outbox_messages", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReadsOutsideTransaction() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	customer := kernel.NewUUID()
	o, err := order.NewOrder(customer, kernel.NewUUID(), customer, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) event(orderID kernel.UUID) services.LifecycleEvent {
	return services.LifecycleEvent{
		ID:         kernel.NewUUID(),
		Type:       services.EventOrderCancelled,
		EntityType: audit.EntityOrder,
		EntityID:   orderID,
		OccurredAt: time.Now(),
		Payload:    map[string]any{"order_id": orderID.String()},
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count, "rows in %s", table)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
