package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery lists the audit entries of one record in insertion order.
type GetAuditTrailQuery struct {
	entityType audit.EntityType
	entityID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAuditTrailQuery(entityType audit.EntityType, entityID kernel.UUID) (GetAuditTrailQuery, error) {
	if err := errors.Join(entityType.Validate(), entityID.Validate()); err != nil {
		return GetAuditTrailQuery{}, err
	}
	return GetAuditTrailQuery{entityType: entityType, entityID: entityID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

func (q GetAuditTrailQuery) EntityType() audit.EntityType {
	return q.entityType
}

func (q GetAuditTrailQuery) EntityID() kernel.UUID {
	return q.entityID
}
