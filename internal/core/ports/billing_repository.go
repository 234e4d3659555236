package ports

import (
	"context"

	"pedidos/internal/core/domain/model/billing"
)

// BillingRepository defines the persistence contract for invoices and
// delivery notes. Documents are append-only; numbering is allocated inside
// the creation transaction so each series stays gapless.
type BillingRepository interface {
	// AddInvoice persists a new invoice.
	AddInvoice(ctx context.Context, aggregate *billing.Invoice) error

	// AddDeliveryNote persists a new delivery note.
	AddDeliveryNote(ctx context.Context, aggregate *billing.DeliveryNote) error

	// NextInvoiceNumber allocates the next number in the invoice series.
	NextInvoiceNumber(ctx context.Context) (int, error)

	// NextDeliveryNoteNumber allocates the next number in the delivery note series.
	NextDeliveryNoteNumber(ctx context.Context) (int, error)
}
