package ports

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their owned items and advance payments (cascade lifetime).
type OrderRepository interface {
	// Add persists a new order aggregate with its items and payments.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Child rows are
	// rewritten so the stored item list always matches the aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a fully populated order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order owning the given line item.
	// Used by the checklist endpoint, which addresses items directly.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetAllByDeliveryDate retrieves the orders due on a calendar day.
	GetAllByDeliveryDate(ctx context.Context, date time.Time) ([]*order.Order, error)

	// Delete removes an order and, by ownership, its items and payments.
	Delete(ctx context.Context, id kernel.UUID) error
}
