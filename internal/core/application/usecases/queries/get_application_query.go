package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetApplicationQueryIsNotConstructed = errors.New(
	"GetApplicationQuery must be created via NewGetApplicationQuery constructor",
)

// GetApplicationQuery loads one verification application with its documents,
// review history and info requests.
type GetApplicationQuery struct {
	applicationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetApplicationQuery(applicationID kernel.UUID) (GetApplicationQuery, error) {
	if err := applicationID.Validate(); err != nil {
		return GetApplicationQuery{}, err
	}
	return GetApplicationQuery{applicationID: applicationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetApplicationQuery) Validate() error {
	return q.guard.Validate(ErrGetApplicationQueryIsNotConstructed)
}

func (q GetApplicationQuery) ApplicationID() kernel.UUID {
	return q.applicationID
}
