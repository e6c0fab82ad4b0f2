package cmd

import (
	"log/slog"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

// NewKafkaPublisher builds the lifecycle event publisher from config.
func NewKafkaPublisher(config Config) (*kafka.Publisher, error) {
	return kafka.NewPublisher(kafka.NewWriter(config.KafkaBrokers, config.KafkaLifecycleTopic))
}

func (c *CompositionRoot) applicationUoWFactory() commands.ApplicationUoWFactory {
	return FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateApplicationCommandHandler() commands.CreateApplicationCommandHandler {
	return commands.NewCreateApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateSubmitApplicationCommandHandler() commands.SubmitApplicationCommandHandler {
	return commands.NewSubmitApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateAssignReviewerCommandHandler() commands.AssignReviewerCommandHandler {
	return commands.NewAssignReviewerCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateReviewDocumentCommandHandler() commands.ReviewDocumentCommandHandler {
	return commands.NewReviewDocumentCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateDecideApplicationCommandHandler() commands.DecideApplicationCommandHandler {
	return commands.NewDecideApplicationCommandHandler(c.applicationUoWFactory(), c.config.InfoRequestDueWindow)
}

func (c *CompositionRoot) CreateRequestAdditionalInfoCommandHandler() commands.RequestAdditionalInfoCommandHandler {
	return commands.NewRequestAdditionalInfoCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateResolveInfoRequestCommandHandler() commands.ResolveInfoRequestCommandHandler {
	return commands.NewResolveInfoRequestCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateSuspendApplicationCommandHandler() commands.SuspendApplicationCommandHandler {
	return commands.NewSuspendApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateExpireInfoRequestsCommandHandler() commands.ExpireInfoRequestsCommandHandler {
	return commands.NewExpireInfoRequestsCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryPersonCommandHandler() commands.AssignDeliveryPersonCommandHandler {
	return commands.NewAssignDeliveryPersonCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher, c.config.OutboxPublishTimeout)
}

func (c *CompositionRoot) CreateGetApplicationQueryHandler() queries.GetApplicationQueryHandler {
	return queries.NewGetApplicationQueryHandler(c.uowFactory.Create().ApplicationRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.uowFactory.Create().AuditLog())
}

func (c *CompositionRoot) CreateGetVerificationStatisticsQueryHandler() queries.GetVerificationStatisticsQueryHandler {
	return queries.NewGetVerificationStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReviewQueueQueryHandler() queries.ListReviewQueueQueryHandler {
	return queries.NewListReviewQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) RetryPolicy() commands.RetryPolicy {
	policy := commands.DefaultRetryPolicy()
	policy.MaxRetries = c.config.StaleWriteRetries
	return policy
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	handlers := httpadapter.Handlers{
		CreateApplication:     c.CreateCreateApplicationCommandHandler(),
		SubmitApplication:     c.CreateSubmitApplicationCommandHandler(),
		AssignReviewer:        c.CreateAssignReviewerCommandHandler(),
		ReviewDocument:        c.CreateReviewDocumentCommandHandler(),
		DecideApplication:     c.CreateDecideApplicationCommandHandler(),
		RequestAdditionalInfo: c.CreateRequestAdditionalInfoCommandHandler(),
		ResolveInfoRequest:    c.CreateResolveInfoRequestCommandHandler(),
		SuspendApplication:    c.CreateSuspendApplicationCommandHandler(),

		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		AdvanceOrder:         c.CreateAdvanceOrderCommandHandler(),
		AssignDeliveryPerson: c.CreateAssignDeliveryPersonCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),

		GetApplication:            c.CreateGetApplicationQueryHandler(),
		GetOrder:                  c.CreateGetOrderQueryHandler(),
		GetAuditTrail:             c.CreateGetAuditTrailQueryHandler(),
		GetVerificationStatistics: c.CreateGetVerificationStatisticsQueryHandler(),
		ListReviewQueue:           c.CreateListReviewQueueQueryHandler(),
	}
	return httpadapter.NewServer(handlers, c.RetryPolicy(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireInfoRequestsCommandHandler(),
		c.CreateRelayOutboxCommandHandler(),
		jobs.Schedules{
			InfoRequestExpiry: c.config.ExpirySweepSchedule,
			OutboxRelay:       c.config.OutboxRelaySchedule,
		},
		c.config.OutboxBatchSize,
		c.logger,
	)
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
