// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, eligibility re-check against the freshest order
// snapshot, and persistence.
package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// EmitterRepoFactory provides access to the emitter repository within a transaction.
	EmitterRepoFactory interface {
		EmitterRepository() ports.EmitterRepository
	}

	// BillingRepoFactory provides access to the billing repository within a transaction.
	BillingRepoFactory interface {
		BillingRepository() ports.BillingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ClientUoW manages transactions for client-directory operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// OrderIntakeUoW manages transactions for commands that touch an order
	// and need to resolve its client (creation and reassignment).
	OrderIntakeUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
	}

	// OrderIntakeUoWFactory creates new order intake unit of work instances.
	OrderIntakeUoWFactory interface {
		Create() OrderIntakeUoW
	}

	// BillingUoW manages transactions for document generation, which spans
	// the order, the emitter directory and the document tables.
	BillingUoW interface {
		TxManager
		OrderRepoFactory
		EmitterRepoFactory
		BillingRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}
)
