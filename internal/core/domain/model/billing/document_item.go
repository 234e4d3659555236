package billing

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrDocumentItemIsNotConstructed is returned when a DocumentItem was not
// created through the NewDocumentItem factory method.
var ErrDocumentItemIsNotConstructed = errors.New("DocumentItem must be created via NewDocumentItem constructor")

// DocumentItem is one priced line of an invoice or delivery note. Unlike an
// order line, a document line always carries a price (possibly zero): the
// document is the pricing authority. Lines are copied from the origin order
// and may be added, removed or re-priced before issuing.
type DocumentItem struct {
	description   string
	specification string
	quantity      int
	unitPrice     kernel.Money

	isConstructed bool
}

// NewDocumentItem creates a validated document line.
func NewDocumentItem(description, specification string, quantity int, unitPrice kernel.Money) (DocumentItem, error) {
	if description == "" {
		return DocumentItem{}, errs.NewValueIsRequiredError("description")
	}
	if quantity < 1 {
		return DocumentItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}
	if unitPrice.IsNegative() {
		return DocumentItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice.String()))
	}

	return DocumentItem{
		description:   description,
		specification: specification,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the line was built through the constructor.
func (i DocumentItem) Validate() error {
	if !i.isConstructed {
		return ErrDocumentItemIsNotConstructed
	}
	return nil
}

// Description returns the product description.
func (i DocumentItem) Description() string {
	return i.description
}

// Specification returns the free-text specification.
func (i DocumentItem) Specification() string {
	return i.specification
}

// Quantity returns the line quantity, always >= 1.
func (i DocumentItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the line unit price.
func (i DocumentItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i DocumentItem) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}
