package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/pkg/errs"
)

// ExpireInfoRequestsResult summarises one sweep.
type ExpireInfoRequestsResult struct {
	Applications int
	Requests     int
	// Skipped counts applications that changed under the sweep; the next run picks them up.
	Skipped int
}

// ExpireInfoRequestsCommandHandler expires overdue info requests one application
// per transaction. It escalates priority and never rejects.
type ExpireInfoRequestsCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewExpireInfoRequestsCommandHandler(uowFactory ApplicationUoWFactory) ExpireInfoRequestsCommandHandler {
	return ExpireInfoRequestsCommandHandler{uowFactory: uowFactory}
}

func (h ExpireInfoRequestsCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireInfoRequestsCommand,
) (ExpireInfoRequestsResult, error) {
	var result ExpireInfoRequestsResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	ids, err := h.uowFactory.Create().ApplicationRepository().ListWithOverdueInfoRequests(ctx, cmd.Now(), cmd.BatchSize())
	if err != nil {
		return result, err
	}

	var failures []error
	for _, id := range ids {
		expired := 0
		_, err = mutateApplication(ctx, h.uowFactory, id, cmd.Now(), func(app *verification.Application) error {
			var expireErr error
			expired, expireErr = app.ExpireOverdue(cmd.Now())
			return expireErr
		})
		switch {
		case errors.Is(err, errs.ErrStaleWrite):
			result.Skipped++
		case err != nil:
			failures = append(failures, fmt.Errorf("application %s: %w", id, err))
		case expired > 0:
			result.Applications++
			result.Requests += expired
		}
	}

	return result, errors.Join(failures...)
}
