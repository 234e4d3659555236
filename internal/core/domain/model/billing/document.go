// Package billing provides the Invoice and DeliveryNote aggregates: the
// numbered documents generated from an order for a client on behalf of an
// emitter. Documents are immutable once created; corrections issue a new
// document, they never edit an existing one.
package billing

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice was not created
	// through the NewInvoice factory method.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

	// ErrDeliveryNoteIsNotConstructed is returned when a DeliveryNote was not
	// created through the NewDeliveryNote factory method.
	ErrDeliveryNoteIsNotConstructed = errors.New("DeliveryNote must be created via NewDeliveryNote constructor")
)

// document carries the fields shared by invoices and delivery notes: a
// sequential number, the client billed, the issuing emitter, the origin order
// and the priced lines.
type document struct {
	id            kernel.UUID
	number        int
	clientID      kernel.UUID
	emitterID     kernel.UUID
	originOrderID kernel.UUID
	issueDate     time.Time
	items         []DocumentItem

	isConstructed bool
}

func newDocument(
	id kernel.UUID,
	number int,
	clientID kernel.UUID,
	emitterID kernel.UUID,
	originOrderID kernel.UUID,
	issueDate time.Time,
	items []DocumentItem,
) (document, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		emitterID.Validate(),
		originOrderID.Validate(),
	); err != nil {
		return document{}, err
	}
	if number < 1 {
		return document{}, errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	if len(items) == 0 {
		return document{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return document{}, err
		}
	}

	copied := make([]DocumentItem, len(items))
	copy(copied, items)

	return document{
		id:            id,
		number:        number,
		clientID:      clientID,
		emitterID:     emitterID,
		originOrderID: originOrderID,
		issueDate:     issueDate.Truncate(24 * time.Hour),
		items:         copied,
		isConstructed: true,
	}, nil
}

// ID returns the document's unique identifier.
func (d *document) ID() kernel.UUID {
	return d.id
}

// Number returns the sequential document number.
func (d *document) Number() int {
	return d.number
}

// ClientID returns the billed client.
func (d *document) ClientID() kernel.UUID {
	return d.clientID
}

// EmitterID returns the issuing billing identity.
func (d *document) EmitterID() kernel.UUID {
	return d.emitterID
}

// OriginOrderID returns the order the document was generated from.
func (d *document) OriginOrderID() kernel.UUID {
	return d.originOrderID
}

// IssueDate returns the calendar date the document was issued.
func (d *document) IssueDate() time.Time {
	return d.issueDate
}

// Items returns the priced lines in insertion order.
func (d *document) Items() []DocumentItem {
	items := make([]DocumentItem, len(d.items))
	copy(items, d.items)
	return items
}

// Total sums the line subtotals with exact decimal arithmetic.
func (d *document) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range d.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Invoice is the billing document generated from an order. Creating one moves
// the origin order to FACTURADO.
type Invoice struct {
	document
}

// NewInvoice creates a validated invoice.
func NewInvoice(
	id kernel.UUID,
	number int,
	clientID kernel.UUID,
	emitterID kernel.UUID,
	originOrderID kernel.UUID,
	issueDate time.Time,
	items []DocumentItem,
) (*Invoice, error) {
	doc, err := newDocument(id, number, clientID, emitterID, originOrderID, issueDate, items)
	if err != nil {
		return nil, err
	}
	return &Invoice{document: doc}, nil
}

// Validate ensures the invoice was built through the constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// DeliveryNote is the dispatch document generated from an order. Creating one
// moves the origin order to REMITIDO.
type DeliveryNote struct {
	document
}

// NewDeliveryNote creates a validated delivery note.
func NewDeliveryNote(
	id kernel.UUID,
	number int,
	clientID kernel.UUID,
	emitterID kernel.UUID,
	originOrderID kernel.UUID,
	issueDate time.Time,
	items []DocumentItem,
) (*DeliveryNote, error) {
	doc, err := newDocument(id, number, clientID, emitterID, originOrderID, issueDate, items)
	if err != nil {
		return nil, err
	}
	return &DeliveryNote{document: doc}, nil
}

// Validate ensures the delivery note was built through the constructor.
func (n *DeliveryNote) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrDeliveryNoteIsNotConstructed
	}
	return nil
}
