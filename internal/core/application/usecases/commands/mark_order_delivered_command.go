package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

// ErrMarkOrderDeliveredCommandIsNotConstructed is returned when the command
// was not created through the constructor.
var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand represents toggling the delivered flag. The flag
// is orthogonal to status and the toggle carries the target value, so
// repeated submissions are idempotent.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	delivered bool

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to set the delivered flag.
func NewMarkOrderDeliveredCommand(orderID kernel.UUID, delivered bool) (MarkOrderDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return MarkOrderDeliveredCommand{
		orderID:   orderID,
		delivered: delivered,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Delivered returns the target value of the flag.
func (c MarkOrderDeliveredCommand) Delivered() bool {
	return c.delivered
}
