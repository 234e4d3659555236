package billingrepo

import (
	"context"

	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/billing"
	"pedidos/internal/core/domain/model/kernel"
)

// GormBillingRepository implements BillingRepository using GORM. Documents
// are append-only; there is no update or delete path.
type GormBillingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBillingRepository creates a new GORM billing repository.
func NewGormBillingRepository(db *gorm.DB, tracker aggregateTracker) *GormBillingRepository {
	return &GormBillingRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddInvoice saves a new invoice with its lines.
func (r *GormBillingRepository) AddInvoice(ctx context.Context, aggregate *billing.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := invoiceFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddDeliveryNote saves a new delivery note with its lines.
func (r *GormBillingRepository) AddDeliveryNote(ctx context.Context, aggregate *billing.DeliveryNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := deliveryNoteFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// NextInvoiceNumber allocates the next number in the invoice series. Called
// inside the issuing transaction, so concurrent issuers serialize on the
// unique number index rather than hand out duplicates silently.
func (r *GormBillingRepository) NextInvoiceNumber(ctx context.Context) (int, error) {
	return r.nextNumber(ctx, "invoices")
}

// NextDeliveryNoteNumber allocates the next number in the delivery note series.
func (r *GormBillingRepository) NextDeliveryNoteNumber(ctx context.Context) (int, error) {
	return r.nextNumber(ctx, "delivery_notes")
}

func (r *GormBillingRepository) nextNumber(ctx context.Context, table string) (int, error) {
	var number int
	err := r.db.WithContext(ctx).
		Table(table).
		Select("COALESCE(MAX(number), 0) + 1").
		Scan(&number).Error
	if err != nil {
		return 0, err
	}

	return number, nil
}
