// Package billingrepo provides data transfer objects and mapping functions
// for invoices and delivery notes. Both document kinds share the same shape
// but live in separate tables because each carries its own number series.
package billingrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pedidos/internal/core/domain/model/billing"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number        int       `gorm:"uniqueIndex"`
	ClientID      uuid.UUID `gorm:"type:uuid;index"`
	EmitterID     uuid.UUID `gorm:"type:uuid"`
	OriginOrderID uuid.UUID `gorm:"type:uuid;index"`
	IssueDate     time.Time `gorm:"type:date"`

	Items []InvoiceItemDTO `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceItemDTO represents one priced invoice line.
type InvoiceItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID     uuid.UUID `gorm:"type:uuid;index"`
	Description   string
	Specification string
	Quantity      int
	UnitPrice     decimal.Decimal `gorm:"type:numeric(14,2)"`
	Position      int
}

// TableName specifies the database table name for invoice lines.
func (InvoiceItemDTO) TableName() string {
	return "invoice_items"
}

// DeliveryNoteDTO represents the database structure for persisting delivery notes.
type DeliveryNoteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number        int       `gorm:"uniqueIndex"`
	ClientID      uuid.UUID `gorm:"type:uuid;index"`
	EmitterID     uuid.UUID `gorm:"type:uuid"`
	OriginOrderID uuid.UUID `gorm:"type:uuid;index"`
	IssueDate     time.Time `gorm:"type:date"`

	Items []DeliveryNoteItemDTO `gorm:"foreignKey:DeliveryNoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery notes.
func (DeliveryNoteDTO) TableName() string {
	return "delivery_notes"
}

// DeliveryNoteItemDTO represents one priced delivery note line.
type DeliveryNoteItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryNoteID uuid.UUID `gorm:"type:uuid;index"`
	Description    string
	Specification  string
	Quantity       int
	UnitPrice      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Position       int
}

// TableName specifies the database table name for delivery note lines.
func (DeliveryNoteItemDTO) TableName() string {
	return "delivery_note_items"
}

// invoiceFromDomain converts an invoice aggregate to its database representation.
func invoiceFromDomain(aggregate *billing.Invoice) InvoiceDTO {
	items := aggregate.Items()
	itemDTOs := make([]InvoiceItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, InvoiceItemDTO{
			ID:            uuid.New(),
			InvoiceID:     aggregate.ID().Bytes(),
			Description:   item.Description(),
			Specification: item.Specification(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().Decimal(),
			Position:      i,
		})
	}

	return InvoiceDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		ClientID:      aggregate.ClientID().Bytes(),
		EmitterID:     aggregate.EmitterID().Bytes(),
		OriginOrderID: aggregate.OriginOrderID().Bytes(),
		IssueDate:     aggregate.IssueDate(),
		Items:         itemDTOs,
	}
}

// deliveryNoteFromDomain converts a delivery note aggregate to its database
// representation.
func deliveryNoteFromDomain(aggregate *billing.DeliveryNote) DeliveryNoteDTO {
	items := aggregate.Items()
	itemDTOs := make([]DeliveryNoteItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, DeliveryNoteItemDTO{
			ID:             uuid.New(),
			DeliveryNoteID: aggregate.ID().Bytes(),
			Description:    item.Description(),
			Specification:  item.Specification(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice().Decimal(),
			Position:       i,
		})
	}

	return DeliveryNoteDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		ClientID:      aggregate.ClientID().Bytes(),
		EmitterID:     aggregate.EmitterID().Bytes(),
		OriginOrderID: aggregate.OriginOrderID().Bytes(),
		IssueDate:     aggregate.IssueDate(),
		Items:         itemDTOs,
	}
}
