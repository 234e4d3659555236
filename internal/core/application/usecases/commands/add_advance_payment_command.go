package commands

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrAddAdvancePaymentCommandIsNotConstructed is returned when the command
// was not created through the constructor.
var ErrAddAdvancePaymentCommandIsNotConstructed = errors.New(
	"AddAdvancePaymentCommand must be created via NewAddAdvancePaymentCommand constructor",
)

// AddAdvancePaymentCommand represents collecting a partial pre-payment
// against an order.
type AddAdvancePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money
	method  order.PaymentMethod
	detail  string
	date    time.Time

	guard guard.ConstructorGuard
}

// NewAddAdvancePaymentCommand creates a command to record an advance payment.
// Amount must be strictly positive and the method one of the accepted set.
func NewAddAdvancePaymentCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	method order.PaymentMethod,
	detail string,
	date time.Time,
) (AddAdvancePaymentCommand, error) {
	cmd := AddAdvancePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
		cmd.setDate(date),
	); err != nil {
		return AddAdvancePaymentCommand{}, err
	}

	cmd.detail = detail
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAdvancePaymentCommand) Validate() error {
	return c.guard.Validate(ErrAddAdvancePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the payment.
func (c AddAdvancePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the collected amount.
func (c AddAdvancePaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the payment method.
func (c AddAdvancePaymentCommand) Method() order.PaymentMethod {
	return c.method
}

// Detail returns the free-text payment detail.
func (c AddAdvancePaymentCommand) Detail() string {
	return c.detail
}

// Date returns the calendar date the payment was collected.
func (c AddAdvancePaymentCommand) Date() time.Time {
	return c.date
}

func (c *AddAdvancePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddAdvancePaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}
	c.amount = amount
	return nil
}

func (c *AddAdvancePaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *AddAdvancePaymentCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}
