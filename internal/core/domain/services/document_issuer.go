package services

import (
	"time"

	"pedidos/internal/core/domain/model/billing"
	"pedidos/internal/core/domain/model/emitter"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// DocumentIssuer is a domain service that generates billing documents from an
// order and moves the order's lifecycle forward atomically: a delivery note
// marks the order REMITIDO, an invoice marks it FACTURADO. Eligibility comes
// from the order's own action set, so the same decision table that hides a
// button also rejects the operation here.
//
// The document lines are supplied by the caller (the issuing form can add,
// remove or re-price lines relative to the order); when the caller supplies
// none, the order's own priced lines are copied.
type DocumentIssuer struct{}

// NewDocumentIssuer creates a new DocumentIssuer instance.
func NewDocumentIssuer() DocumentIssuer {
	return DocumentIssuer{}
}

// IssueDeliveryNote builds a delivery note from the order and marks the order
// remitted. The order must currently offer the GenerateDeliveryNote action.
func (s DocumentIssuer) IssueDeliveryNote(
	o *order.Order,
	issuingEmitter *emitter.Emitter,
	number int,
	items []billing.DocumentItem,
	issueDate time.Time,
) (*billing.DeliveryNote, error) {
	if err := s.validate(o, issuingEmitter); err != nil {
		return nil, err
	}

	lines, err := s.resolveItems(o, items)
	if err != nil {
		return nil, err
	}

	note, err := billing.NewDeliveryNote(kernel.NewUUID(), number,
		o.ClientID(), issuingEmitter.ID(), o.ID(), issueDate, lines)
	if err != nil {
		return nil, err
	}

	if err := o.MarkRemitted(); err != nil {
		return nil, err
	}

	return note, nil
}

// IssueInvoice builds an invoice from the order and marks the order invoiced.
// The order must currently offer the GenerateInvoice action.
func (s DocumentIssuer) IssueInvoice(
	o *order.Order,
	issuingEmitter *emitter.Emitter,
	number int,
	items []billing.DocumentItem,
	issueDate time.Time,
) (*billing.Invoice, error) {
	if err := s.validate(o, issuingEmitter); err != nil {
		return nil, err
	}

	lines, err := s.resolveItems(o, items)
	if err != nil {
		return nil, err
	}

	invoice, err := billing.NewInvoice(kernel.NewUUID(), number,
		o.ClientID(), issuingEmitter.ID(), o.ID(), issueDate, lines)
	if err != nil {
		return nil, err
	}

	if err := o.MarkInvoiced(); err != nil {
		return nil, err
	}

	return invoice, nil
}

func (s DocumentIssuer) validate(o *order.Order, issuingEmitter *emitter.Emitter) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return issuingEmitter.Validate()
}

// resolveItems copies the order's lines when the caller supplied none.
// Unpriced order lines are priced at zero on the document, matching the
// issuing form's prefill.
func (s DocumentIssuer) resolveItems(
	o *order.Order,
	items []billing.DocumentItem,
) ([]billing.DocumentItem, error) {
	if len(items) > 0 {
		return items, nil
	}

	lines := make([]billing.DocumentItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		price := kernel.ZeroMoney()
		if item.UnitPrice() != nil {
			price = *item.UnitPrice()
		}

		line, err := billing.NewDocumentItem(
			item.ProductDescription(), item.Specification(), item.QuantityRequested(), price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
