package queries

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/ports"
)

type GetAuditTrailQueryHandler struct {
	log ports.AuditLog
}

func NewGetAuditTrailQueryHandler(log ports.AuditLog) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{log: log}
}

// Handle returns an empty slice for a record that has no entries.
func (h GetAuditTrailQueryHandler) Handle(ctx context.Context, query GetAuditTrailQuery) ([]audit.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.log.ListByEntity(ctx, query.EntityType(), query.EntityID())
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make([]audit.Entry, 0)
	}
	return entries, nil
}
