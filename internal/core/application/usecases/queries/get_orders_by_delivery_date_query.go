// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL and map rows
// into response structs; the action eligibility and display category of each
// order are derived with the same domain rules the write side enforces.
package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrGetOrdersByDeliveryDateQueryIsNotConstructed = errors.New(
	"GetOrdersByDeliveryDateQuery must be created via NewGetOrdersByDeliveryDateQuery constructor",
)

// GetOrdersByDeliveryDateQuery retrieves the orders due on a calendar day,
// the main screen of the console.
//
// Example:
//
//	query, err := NewGetOrdersByDeliveryDateQuery(date)
//	if err != nil {
//	    return fmt.Errorf("invalid date: %w", err)
//	}
//	handler := NewGetOrdersByDeliveryDateQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByDeliveryDateQuery struct {
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByDeliveryDateQuery creates a query for one delivery day.
func NewGetOrdersByDeliveryDateQuery(deliveryDate time.Time) (GetOrdersByDeliveryDateQuery, error) {
	if deliveryDate.IsZero() {
		return GetOrdersByDeliveryDateQuery{}, errs.NewValueIsRequiredError("deliveryDate")
	}

	return GetOrdersByDeliveryDateQuery{
		deliveryDate: deliveryDate.Truncate(24 * time.Hour),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDeliveryDateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDeliveryDateQueryIsNotConstructed)
}

// DeliveryDate returns the queried calendar day.
func (q GetOrdersByDeliveryDateQuery) DeliveryDate() time.Time {
	return q.deliveryDate
}

// OrderItemResponse is one order line with its checklist state.
type OrderItemResponse struct {
	ID                 kernel.UUID
	ProductDescription string
	Specification      string
	QuantityRequested  int
	UnitPrice          *kernel.Money
	Picked             bool
	Notes              string
	Subtotal           kernel.Money
}

// AdvancePaymentResponse is one collected pre-payment.
type AdvancePaymentResponse struct {
	ID     kernel.UUID
	Amount kernel.Money
	Method string
	Detail string
	Date   time.Time
}

// OrderResponse is a fully evaluated order row: stored state plus the derived
// action set, display category and monetary totals.
type OrderResponse struct {
	ID            kernel.UUID
	ClientID      kernel.UUID
	ClientName    string
	DeliveryDate  time.Time
	Notes         string
	Status        string
	Delivered     bool
	Category      string
	Actions       order.Actions
	OrderTotal    kernel.Money
	AdvancesTotal kernel.Money
	BalanceDue    kernel.Money
	Items         []OrderItemResponse
	Advances      []AdvancePaymentResponse
}
