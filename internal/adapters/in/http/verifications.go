package http

import (
	"context"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// bindBody decodes and validates a request body.
func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

// respondApplication runs a command on a stored application, retrying stale
// writes, and writes the application with its new version.
func (s *Server) respondApplication(
	ctx echo.Context,
	handle func(context.Context) (*verification.Application, error),
) error {
	reqCtx := ctx.Request().Context()
	app, err := commands.RetryOnStaleWrite(reqCtx, s.retry, func() (*verification.Application, error) {
		return handle(reqCtx)
	})
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, applicationResponse(app))
}

// CreateApplication handles POST /api/v1/verifications - creates a draft application.
func (s *Server) CreateApplication(ctx echo.Context, params servers.ActorParams) error {
	var body servers.NewApplication
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}

	subjectType, err := verification.ParseSubjectType(string(body.SubjectType))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	priority := verification.PriorityNormal
	if body.Priority != nil {
		if priority, err = verification.ParsePriority(string(*body.Priority)); err != nil {
			return writeError(ctx, s.logger, err)
		}
	}
	subjectID, err := toKernelUUID(body.SubjectId)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	actor, err := toKernelUUID(params.XActorID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	var documents []verification.DocumentSpec
	for _, d := range deref(body.Documents) {
		documents = append(documents, verification.DocumentSpec{Type: d.Type, Required: deref(d.Required)})
	}

	cmd, err := commands.NewCreateApplicationCommand(subjectType, subjectID, priority, documents, actor)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	app, err := s.handlers.CreateApplication.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusCreated, applicationResponse(app))
}

// GetVerificationStatistics handles GET /api/v1/verifications/statistics.
func (s *Server) GetVerificationStatistics(ctx echo.Context) error {
	query, err := queries.NewGetVerificationStatisticsQuery(time.Now())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	stats, err := s.handlers.GetVerificationStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, statisticsResponse(stats))
}

// ListReviewQueue handles GET /api/v1/verifications/queue.
func (s *Server) ListReviewQueue(ctx echo.Context, params servers.ListReviewQueueParams) error {
	limit := defaultReviewQueueLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewListReviewQueueQuery(limit)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	queue, err := s.handlers.ListReviewQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, reviewQueueResponse(queue))
}

// GetApplication handles GET /api/v1/verifications/{id}.
func (s *Server) GetApplication(ctx echo.Context, id openapi_types.UUID) error {
	applicationID, err := toKernelUUID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	query, err := queries.NewGetApplicationQuery(applicationID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	app, err := s.handlers.GetApplication.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, applicationResponse(app))
}

// SubmitApplication handles POST /api/v1/verifications/{id}/submit.
func (s *Server) SubmitApplication(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	applicationID, actor, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewSubmitApplicationCommand(applicationID, actor)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondApplication(ctx, func(c context.Context) (*verification.Application, error) {
		return s.handlers.SubmitApplication.Handle(c, cmd)
	})
}

// AssignReviewer handles POST /api/v1/verifications/{id}/assign.
func (s *Server) AssignReviewer(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	var body servers.ReviewerAssignment
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	applicationID, _, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	reviewer, err := toKernelUUID(body.ReviewerId)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewAssignReviewerCommand(applicationID, reviewer)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondApplication(ctx, func(c context.Context) (*verification.Application, error) {
		return s.handlers.AssignReviewer.Handle(c, cmd)
	})
}

// ReviewDocument handles PUT /api/v1/verifications/{id}/documents/{documentId}.
func (s *Server) ReviewDocument(
	ctx echo.Context,
	id openapi_types.UUID,
	documentId openapi_types.UUID,
	params servers.ActorParams,
) error {
	var body servers.DocumentReview
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	applicationID, reviewer, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	documentID, err := toKernelUUID(documentId)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	decision, err := verification.ParseDocumentStatus(string(body.Status))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewReviewDocumentCommand(applicationID, documentID, reviewer, decision, deref(body.RejectionReason))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondApplication(ctx, func(c context.Context) (*verification.Application, error) {
		return s.handlers.ReviewDocument.Handle(c, cmd)
	})
}

// DecideApplication handles POST /api/v1/verifications/{id}/review.
func (s *Server) DecideApplication(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	var body servers.ReviewDecision
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	applicationID, reviewer, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	decision, err := verification.ParseStatus(string(body.Status))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewDecideApplicationCommand(applicationID, reviewer, decision,
		deref(body.Comments), deref(body.ChangesRequested), body.DueDate)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondApplication(ctx, func(c context.Context) (*verification.Application, error) {
		return s.handlers.DecideApplication.Handle(c, cmd)
	})
}

// RequestAdditionalInfo handles POST /api/v1/verifications/{id}/request-info.
func (s *Server) RequestAdditionalInfo(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	var body servers.NewInfoRequest
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	applicationID, reviewer, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewRequestAdditionalInfoCommand(applicationID, reviewer,
		body.Message, deref(body.DocumentsRequested), body.DueDate)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondApplication(ctx, func(c context.Context) (*verification.Application, error) {
		return s.handlers.RequestAdditionalInfo.Handle(c, cmd)
	})
}

// ResolveInfoRequest handles POST /api/v1/verifications/{id}/info-requests/{requestId}/resolve.
func (s *Server) ResolveInfoRequest(
	ctx echo.Context,
	id openapi_types.UUID,
	requestId openapi_types.UUID,
	params servers.ActorParams,
) error {
	applicationID, actor, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	requestID, err := toKernelUUID(requestId)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewResolveInfoRequestCommand(applicationID, requestID, actor)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondApplication(ctx, func(c context.Context) (*verification.Application, error) {
		return s.handlers.ResolveInfoRequest.Handle(c, cmd)
	})
}

// SuspendApplication handles POST /api/v1/verifications/{id}/suspend.
func (s *Server) SuspendApplication(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	var body servers.Reason
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	applicationID, reviewer, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewSuspendApplicationCommand(applicationID, reviewer, body.Reason)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondApplication(ctx, func(c context.Context) (*verification.Application, error) {
		return s.handlers.SuspendApplication.Handle(c, cmd)
	})
}
