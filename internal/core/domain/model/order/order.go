package order

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotEditable is returned when a mutation requires edit
	// eligibility the current (status, delivered) pair does not grant.
	ErrOrderIsNotEditable = errors.New("order is not editable in its current state")

	// ErrDeliveredToggleNotAllowed is returned when toggling the delivered
	// flag on a cancelled order.
	ErrDeliveredToggleNotAllowed = errors.New("delivered flag cannot be toggled for a cancelled order")
)

// Order is the aggregate root of the fulfillment workflow. It owns its line
// items and advance payments (cascade lifetime) and holds a non-owning
// reference to a client managed elsewhere.
//
// Invariants:
//   - valid unique identifier and client reference
//   - status is one of the closed lifecycle set, or Unknown for degraded rows
//   - every mutation re-checks action eligibility via ActionsFor before
//     applying, so the decision table is enforced at the aggregate boundary
//   - items and payments keep insertion order, which is the display order
//
// The delivered flag is orthogonal to status: an order can be delivered while
// still pending invoicing.
type Order struct {
	id           kernel.UUID
	clientID     kernel.UUID
	deliveryDate time.Time
	notes        string
	status       Status
	delivered    bool
	createdAt    time.Time
	items        []*OrderItem
	advances     []*AdvancePayment

	isConstructed bool
}

// NewOrder creates a new order in Pending status with the given line items.
// The delivery date is truncated to a calendar day. An order may be created
// without items and filled in later while it remains editable.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	deliveryDate time.Time,
	notes string,
	items []*OrderItem,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.deliveryDate = deliveryDate.Truncate(24 * time.Hour)
	o.notes = notes
	o.recalcPreparationStatus()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any status value, including Unknown: a malformed row must still
// load so the engine can degrade it to the most restrictive action set
// instead of failing the read.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	deliveryDate time.Time,
	notes string,
	status Status,
	delivered bool,
	createdAt time.Time,
	items []*OrderItem,
	advances []*AdvancePayment,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setItems(items),
		o.setAdvances(advances),
	); err != nil {
		return nil, err
	}

	o.deliveryDate = deliveryDate.Truncate(24 * time.Hour)
	o.notes = notes
	o.status = status
	o.delivered = delivered
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the non-owning client reference.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// DeliveryDate returns the requested delivery date (calendar day).
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Notes returns the free-text order notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Delivered reports the orthogonal delivered flag.
func (o *Order) Delivered() bool {
	return o.delivered
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the line items in insertion order. The slice is a copy; items
// are mutated only through the aggregate's methods.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// AdvancePayments returns the advance payments in insertion order.
func (o *Order) AdvancePayments() []*AdvancePayment {
	advances := make([]*AdvancePayment, len(o.advances))
	copy(advances, o.advances)
	return advances
}

// Actions derives the currently permitted action set.
func (o *Order) Actions() Actions {
	return ActionsFor(o.status, o.delivered)
}

// Category derives the list display-priority category.
func (o *Order) Category() Category {
	return CategoryFor(o.status, o.delivered)
}

// Total sums the line subtotals. Unpriced items count as zero. The sum is
// commutative and exact; rounding happens at presentation only.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AdvancesTotal sums the collected advance payments.
func (o *Order) AdvancesTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, advance := range o.advances {
		total = total.Add(advance.Amount())
	}
	return total
}

// BalanceDue is Total minus AdvancesTotal, exactly.
func (o *Order) BalanceDue() kernel.Money {
	return o.Total().Sub(o.AdvancesTotal())
}

// UpdateDetails reassigns the client, delivery date and notes. Requires edit
// eligibility.
func (o *Order) UpdateDetails(clientID kernel.UUID, deliveryDate time.Time, notes string) error {
	if !o.Actions().Edit {
		return ErrOrderIsNotEditable
	}
	if err := clientID.Validate(); err != nil {
		return err
	}

	o.clientID = clientID
	o.deliveryDate = deliveryDate.Truncate(24 * time.Hour)
	o.notes = notes
	return nil
}

// ReplaceItems swaps the full item list, e.g. when the order form is saved
// again. Requires edit eligibility; the preparation status is recomputed from
// the new checklist.
func (o *Order) ReplaceItems(items []*OrderItem) error {
	if !o.Actions().Edit {
		return ErrOrderIsNotEditable
	}
	if err := o.setItems(items); err != nil {
		return err
	}

	o.recalcPreparationStatus()
	return nil
}

// SetItemChecklist updates the picked flag and notes of one item and
// recomputes the preparation status. Requires edit eligibility, matching the
// checklist being read-only for delivered, remitted, invoiced or cancelled
// orders.
func (o *Order) SetItemChecklist(itemID kernel.UUID, picked bool, notes string) error {
	if !o.Actions().Edit {
		return ErrOrderIsNotEditable
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			item.picked = picked
			item.notes = notes
			o.recalcPreparationStatus()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// MarkReady transitions PreparedComplete -> ReadyForDispatch.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkRemitted records that a delivery note was generated. Offered only when
// the action set grants GenerateDeliveryNote.
func (o *Order) MarkRemitted() error {
	if !o.Actions().GenerateDeliveryNote {
		return ErrOrderIsNotEditable
	}

	newStatus, err := o.status.Remit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkInvoiced records that an invoice was generated. Offered only when the
// action set grants GenerateInvoice. Invoiced is terminal.
func (o *Order) MarkInvoiced() error {
	if !o.Actions().GenerateInvoice {
		return ErrOrderIsNotEditable
	}

	newStatus, err := o.status.Invoice()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to the terminal Cancelled status. Requires edit
// eligibility: delivered, remitted or invoiced orders cannot be cancelled.
func (o *Order) Cancel() error {
	if !o.Actions().Edit {
		return ErrOrderIsNotEditable
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetDelivered toggles the orthogonal delivered flag. Allowed for every
// status except Cancelled; in particular an invoiced order can still be
// marked delivered.
func (o *Order) SetDelivered(delivered bool) error {
	if !o.Actions().ToggleDelivered {
		return ErrDeliveredToggleNotAllowed
	}

	o.delivered = delivered
	return nil
}

// AddAdvancePayment appends a payment. Payments are only taken while the
// order is editable and are immutable once recorded.
func (o *Order) AddAdvancePayment(payment *AdvancePayment) error {
	if !o.Actions().Edit {
		return ErrOrderIsNotEditable
	}
	if err := payment.Validate(); err != nil {
		return err
	}

	o.advances = append(o.advances, payment)
	return nil
}

// recalcPreparationStatus re-derives the status from the item checklist.
// Applies only while the order is in a preparation state; ready, remitted,
// invoiced and cancelled orders keep their status.
func (o *Order) recalcPreparationStatus() {
	if !o.status.IsPreparation() {
		return
	}

	picked := 0
	for _, item := range o.items {
		if item.picked {
			picked++
		}
	}

	switch {
	case len(o.items) == 0 || picked == 0:
		o.status = Pending
	case picked == len(o.items):
		o.status = PreparedComplete
	default:
		o.status = PreparedIncomplete
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*OrderItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAdvances(advances []*AdvancePayment) error {
	for _, advance := range advances {
		if err := advance.Validate(); err != nil {
			return err
		}
	}

	o.advances = make([]*AdvancePayment, len(advances))
	copy(o.advances, advances)
	return nil
}
