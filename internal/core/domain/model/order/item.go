package order

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem factory method.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line of an order: a requested product with quantity, an
// optional unit price and a picking-checklist state. Items are owned by their
// Order and only mutated through it, so eligibility rules are applied in one
// place.
//
// Invariants:
//   - quantity requested >= 1
//   - unit price, when present, >= 0 (absence means "not yet priced")
type OrderItem struct {
	id                 kernel.UUID
	productDescription string
	specification      string
	quantityRequested  int
	unitPrice          *kernel.Money
	picked             bool
	notes              string

	isConstructed bool
}

// NewOrderItem creates a validated order line. The unit price may be nil for
// items that have not been priced yet; a priced item is priced at zero or
// above.
func NewOrderItem(
	id kernel.UUID,
	productDescription string,
	specification string,
	quantityRequested int,
	unitPrice *kernel.Money,
) (*OrderItem, error) {
	item := &OrderItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductDescription(productDescription),
		item.setQuantityRequested(quantityRequested),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.specification = specification
	return item, nil
}

// RestoreOrderItem reconstructs an item from persistence, including its
// checklist state. It applies the same invariants as NewOrderItem.
func RestoreOrderItem(
	id kernel.UUID,
	productDescription string,
	specification string,
	quantityRequested int,
	unitPrice *kernel.Money,
	picked bool,
	notes string,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, productDescription, specification, quantityRequested, unitPrice)
	if err != nil {
		return nil, err
	}

	item.picked = picked
	item.notes = notes
	return item, nil
}

// Validate ensures the item was built through one of the constructors.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductDescription returns the free-text product description.
func (i *OrderItem) ProductDescription() string {
	return i.productDescription
}

// Specification returns the free-text specification (color, size, ...).
func (i *OrderItem) Specification() string {
	return i.specification
}

// QuantityRequested returns the requested quantity, always >= 1.
func (i *OrderItem) QuantityRequested() int {
	return i.quantityRequested
}

// UnitPrice returns the unit price, or nil when the item is not yet priced.
func (i *OrderItem) UnitPrice() *kernel.Money {
	return i.unitPrice
}

// Picked reports the separated/picked checklist state.
func (i *OrderItem) Picked() bool {
	return i.picked
}

// Notes returns the free-text item notes.
func (i *OrderItem) Notes() string {
	return i.notes
}

// Subtotal returns quantity times unit price, treating an absent price as
// zero so unpriced items do not poison order totals.
func (i *OrderItem) Subtotal() kernel.Money {
	if i.unitPrice == nil {
		return kernel.ZeroMoney()
	}
	return i.unitPrice.Mul(i.quantityRequested)
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setProductDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("productDescription")
	}
	i.productDescription = description
	return nil
}

func (i *OrderItem) setQuantityRequested(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantityRequested",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}
	i.quantityRequested = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice *kernel.Money) error {
	if unitPrice != nil && unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice.String()))
	}
	i.unitPrice = unitPrice
	return nil
}
