// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load the aggregate, apply one domain operation, then write the state
// with its version check, the audit entries and any lifecycle event in one
// transaction.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	OutboxFactory interface {
		Outbox() ports.Outbox
	}

	// AuditedUoW is the part of a unit of work every state change needs.
	AuditedUoW interface {
		AuditLogFactory
		OutboxFactory
	}

	// ApplicationUoW manages transactions for verification commands.
	ApplicationUoW interface {
		TxManager
		ApplicationRepoFactory
		AuditedUoW
	}

	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// OrderUoW manages transactions for order commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditedUoW
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW manages transactions for the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
