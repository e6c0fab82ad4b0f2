package queries

import (
	"context"

	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/core/ports"
)

type GetApplicationQueryHandler struct {
	repo ports.ApplicationRepository
}

func NewGetApplicationQueryHandler(repo ports.ApplicationRepository) GetApplicationQueryHandler {
	return GetApplicationQueryHandler{repo: repo}
}

// Handle returns errs.ErrObjectNotFound when there is no such application.
func (h GetApplicationQueryHandler) Handle(ctx context.Context, query GetApplicationQuery) (*verification.Application, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.repo.Get(ctx, query.ApplicationID())
}
