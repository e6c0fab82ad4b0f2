package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/audit"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetAuditTrail handles GET /api/v1/audit/{entityType}/{entityId}.
func (s *Server) GetAuditTrail(ctx echo.Context, entityType string, entityId openapi_types.UUID) error {
	t, err := audit.ParseEntityType(entityType)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	entityID, err := toKernelUUID(entityId)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	query, err := queries.NewGetAuditTrailQuery(t, entityID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	entries, err := s.handlers.GetAuditTrail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, auditEntriesResponse(entries))
}
