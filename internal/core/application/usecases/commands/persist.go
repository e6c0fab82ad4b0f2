package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// appendTrail stores the audit entries and the optional lifecycle event inside
// the open transaction. An audit failure is reported as AuditWriteFailure so the
// caller rolls the whole change back.
func appendTrail(
	ctx context.Context,
	uow AuditedUoW,
	entries []audit.Entry,
	event services.LifecycleEvent,
	hasEvent bool,
) error {
	if len(entries) > 0 {
		if err := uow.AuditLog().Append(ctx, entries); err != nil {
			if errors.Is(err, errs.ErrAuditWriteFailure) {
				return err
			}
			return errs.NewAuditWriteFailureError(err)
		}
	}
	if hasEvent {
		if err := uow.Outbox().Add(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// mutateApplication loads an application, applies change and stores the result.
// A change that leaves the revision untouched is not written.
func mutateApplication(
	ctx context.Context,
	factory ApplicationUoWFactory,
	id kernel.UUID,
	now time.Time,
	change func(app *verification.Application) error,
) (*verification.Application, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ApplicationRepository()
	app, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := app.Status()
	if err = change(app); err != nil {
		return nil, err
	}
	if !app.Revision().HasChanges() {
		return app, nil
	}

	if err = repo.Update(ctx, app); err != nil {
		return nil, err
	}

	event, hasEvent := services.NewLifecycleHooks().ApplicationTransitioned(app, previous, now)
	if err = appendTrail(ctx, uow, app.PendingAuditEntries(), event, hasEvent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	app.ClearPendingAuditEntries()
	return app, nil
}

// mutateOrder is the order counterpart of mutateApplication.
func mutateOrder(
	ctx context.Context,
	factory OrderUoWFactory,
	id kernel.UUID,
	now time.Time,
	change func(o *order.Order) error,
) (*order.Order, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := o.Status()
	if err = change(o); err != nil {
		return nil, err
	}
	if !o.Revision().HasChanges() {
		return o, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	event, hasEvent := services.NewLifecycleHooks().OrderTransitioned(o, previous, now)
	if err = appendTrail(ctx, uow, o.PendingAuditEntries(), event, hasEvent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	o.ClearPendingAuditEntries()
	return o, nil
}
