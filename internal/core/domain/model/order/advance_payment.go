package order

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrAdvancePaymentIsNotConstructed is returned when an AdvancePayment was not
// created through the NewAdvancePayment factory method.
var ErrAdvancePaymentIsNotConstructed = errors.New(
	"AdvancePayment must be created via NewAdvancePayment constructor",
)

// PaymentMethod is the closed set of ways an advance payment can be collected.
// Serializes to the Spanish wire names (EFECTIVO, TRANSFERENCIA, ...).
type PaymentMethod int

const (
	// UnknownMethod represents an unrecognized payment method.
	UnknownMethod PaymentMethod = iota

	// Cash payments count toward the daily cash box.
	Cash

	// Transfer payments are collected through the bank.
	Transfer

	// Check payments are collected through the bank.
	Check

	// Mixed payments are part cash, part other; counted as cash in the
	// daily summary, matching the counter practice.
	Mixed
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownMethod is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		Cash:     "EFECTIVO",
		Transfer: "TRANSFERENCIA",
		Check:    "CHEQUE",
		Mixed:    "MIXTO",
	}
}

// PaymentMethodFromString maps a wire name to its PaymentMethod; unrecognized
// values map to UnknownMethod.
func PaymentMethodFromString(s string) PaymentMethod {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method
		}
	}
	return UnknownMethod
}

// Validate checks that the method is one of the four accepted values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the Spanish wire name, or "DESCONOCIDO" for invalid values.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "DESCONOCIDO"
}

// IsCashLike reports whether the payment lands in the physical cash box.
func (m PaymentMethod) IsCashLike() bool {
	return m == Cash || m == Mixed
}

// AdvancePayment records a partial pre-payment against an order's total.
// Payments are created only while the parent order is editable and are
// immutable afterwards; there is no update or delete operation.
type AdvancePayment struct {
	id     kernel.UUID
	amount kernel.Money
	method PaymentMethod
	detail string
	date   time.Time

	isConstructed bool
}

// NewAdvancePayment creates a validated advance payment. Amount must be
// strictly positive and the method one of the accepted set. The date is
// truncated to a calendar day.
func NewAdvancePayment(
	id kernel.UUID,
	amount kernel.Money,
	method PaymentMethod,
	detail string,
	date time.Time,
) (*AdvancePayment, error) {
	payment := &AdvancePayment{
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setAmount(amount),
		payment.setMethod(method),
	); err != nil {
		return nil, err
	}

	payment.detail = detail
	payment.date = date.Truncate(24 * time.Hour)
	return payment, nil
}

// Validate ensures the payment was built through the constructor.
func (p *AdvancePayment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrAdvancePaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *AdvancePayment) ID() kernel.UUID {
	return p.id
}

// Amount returns the collected amount, always > 0.
func (p *AdvancePayment) Amount() kernel.Money {
	return p.amount
}

// Method returns the payment method.
func (p *AdvancePayment) Method() PaymentMethod {
	return p.method
}

// Detail returns the free-text payment detail.
func (p *AdvancePayment) Detail() string {
	return p.detail
}

// Date returns the calendar date the payment was collected.
func (p *AdvancePayment) Date() time.Time {
	return p.date
}

func (p *AdvancePayment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *AdvancePayment) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}
	p.amount = amount
	return nil
}

func (p *AdvancePayment) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
