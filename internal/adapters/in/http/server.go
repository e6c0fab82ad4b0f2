package http

import (
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/generated/servers"
)

const defaultReviewQueueLimit = 50

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Verification commands
	CreateApplication     commands.CreateApplicationCommandHandler
	SubmitApplication     commands.SubmitApplicationCommandHandler
	AssignReviewer        commands.AssignReviewerCommandHandler
	ReviewDocument        commands.ReviewDocumentCommandHandler
	DecideApplication     commands.DecideApplicationCommandHandler
	RequestAdditionalInfo commands.RequestAdditionalInfoCommandHandler
	ResolveInfoRequest    commands.ResolveInfoRequestCommandHandler
	SuspendApplication    commands.SuspendApplicationCommandHandler

	// Order commands
	PlaceOrder           commands.PlaceOrderCommandHandler
	AdvanceOrder         commands.AdvanceOrderCommandHandler
	AssignDeliveryPerson commands.AssignDeliveryPersonCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler

	// Queries
	GetApplication            queries.GetApplicationQueryHandler
	GetOrder                  queries.GetOrderQueryHandler
	GetAuditTrail             queries.GetAuditTrailQueryHandler
	GetVerificationStatistics queries.GetVerificationStatisticsQueryHandler
	ListReviewQueue           queries.ListReviewQueueQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Commands on
// stored aggregates are retried on stale writes before a conflict is reported.
type Server struct {
	handlers Handlers
	retry    commands.RetryPolicy
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, retry commands.RetryPolicy, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		retry:    retry,
		logger:   logger.With("component", "http"),
	}
}
