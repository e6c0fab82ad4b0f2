package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Add(ctx context.Context, app *verification.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) Update(ctx context.Context, app *verification.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*verification.Application, error) {
	args := m.Called(ctx, id)
	app, _ := args.Get(0).(*verification.Application)
	return app, args.Error(1)
}

func (m *MockApplicationRepository) ListWithOverdueInfoRequests(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, now, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Append(ctx context.Context, entries []audit.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditLog) ListByEntity(
	ctx context.Context,
	entityType audit.EntityType,
	entityID kernel.UUID,
) ([]audit.Entry, error) {
	args := m.Called(ctx, entityType, entityID)
	entries, _ := args.Get(0).([]audit.Entry)
	return entries, args.Error(1)
}

type MockOutbox struct{ mock.Mock }

func (m *MockOutbox) Add(ctx context.Context, event services.LifecycleEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOutbox) ClaimUnpublished(
	ctx context.Context,
	limit int,
	now time.Time,
	lease time.Duration,
) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit, now, lease)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutbox) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

// MockUoW implements every unit of work flavour the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.ApplicationRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

func (m *MockUoW) Outbox() ports.Outbox {
	args := m.Called()
	return args.Get(0).(ports.Outbox)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.ApplicationUoW {
	args := m.Called()
	return args.Get(0).(commands.ApplicationUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

var storedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// storedApplication returns an application as a repository would load it, with
// one required driver license and one optional insurance document.
func storedApplication(
	t *testing.T,
	status verification.Status,
	reviewer *kernel.UUID,
	licenseStatus verification.DocumentStatus,
) *verification.Application {
	t.Helper()

	license, err := verification.RestoreDocument(verification.DocumentState{
		ID:       kernel.NewUUID(),
		Type:     "driver_license",
		Required: true,
		Status:   licenseStatus,
	})
	require.NoError(t, err)
	insurance, err := verification.RestoreDocument(verification.DocumentState{
		ID:     kernel.NewUUID(),
		Type:   "insurance",
		Status: verification.DocumentPending,
	})
	require.NoError(t, err)

	submitted := storedAt
	app, err := verification.RestoreApplication(verification.ApplicationState{
		ID:                 kernel.NewUUID(),
		SubjectType:        verification.SubjectDriver,
		SubjectID:          kernel.NewUUID(),
		Status:             status,
		Priority:           verification.PriorityNormal,
		AssignedReviewerID: reviewer,
		Documents:          []*verification.Document{license, insurance},
		SubmittedAt:        &submitted,
		CreatedAt:          storedAt,
		Version:            3,
	})
	require.NoError(t, err)
	return app
}

// storedOrder returns an order loaded at version 2 in the given status.
func storedOrder(t *testing.T, status order.Status, driver *kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(order.State{
		ID:               kernel.NewUUID(),
		CustomerID:       kernel.NewUUID(),
		BusinessID:       kernel.NewUUID(),
		Status:           status,
		History:          []order.HistoryEntry{{Status: status, At: storedAt, ActorID: kernel.NewUUID()}},
		DeliveryPersonID: driver,
		CreatedAt:        storedAt,
		Version:          2,
	})
	require.NoError(t, err)
	return o
}

// loadingUoW wires a unit of work whose repository loads app.
func loadingUoW(ctx context.Context, app *verification.Application) (*MockUoW, *MockApplicationRepository, *MockAuditLog) {
	repo := new(MockApplicationRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ApplicationRepository").Return(repo).Once()
	uow.On("AuditLog").Return(auditLog).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, app.ID()).Return(app, nil).Once()
	return uow, repo, auditLog
}

func applicationUoW(
	ctx context.Context,
	app *verification.Application,
) (*MockApplicationUoWFactory, *MockUoW, *MockApplicationRepository, *MockAuditLog) {
	uow, repo, auditLog := loadingUoW(ctx, app)
	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo, auditLog
}

func orderUoW(ctx context.Context, o *order.Order) (*MockOrderUoWFactory, *MockUoW, *MockOrderRepository, *MockAuditLog) {
	repo := new(MockOrderRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("AuditLog").Return(auditLog).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo, auditLog
}
