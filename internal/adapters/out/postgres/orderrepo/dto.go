// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order row owns its item and advance payment rows;
// deleting an order cascades to both child tables.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored under its wire name (PENDIENTE, REMITIDO, ...) so rows
// stay readable in psql and tolerant of enum reordering in code.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDate time.Time `gorm:"type:date;index"`
	Notes        string
	Status       string `gorm:"type:varchar(32);index"`
	Delivered    bool
	CreatedAt    time.Time

	Items    []OrderItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Advances []AdvancePaymentDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line with its picking checklist state.
// Position preserves the form's line order across reloads.
type OrderItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	ProductDescription string
	Specification      string
	QuantityRequested  int
	UnitPrice          decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Picked             bool
	Notes              string
	Position           int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AdvancePaymentDTO represents one collected pre-payment.
type AdvancePaymentDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID       `gorm:"type:uuid;index"`
	Amount  decimal.Decimal `gorm:"type:numeric(14,2)"`
	Method  string          `gorm:"type:varchar(16)"`
	Detail  string
	Date    time.Time `gorm:"type:date;index"`
}

// TableName specifies the database table name for advance payments.
func (AdvancePaymentDTO) TableName() string {
	return "advance_payments"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		var unitPrice decimal.NullDecimal
		if price := item.UnitPrice(); price != nil {
			unitPrice = decimal.NewNullDecimal(price.Decimal())
		}

		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:                 item.ID().Bytes(),
			OrderID:            aggregate.ID().Bytes(),
			ProductDescription: item.ProductDescription(),
			Specification:      item.Specification(),
			QuantityRequested:  item.QuantityRequested(),
			UnitPrice:          unitPrice,
			Picked:             item.Picked(),
			Notes:              item.Notes(),
			Position:           i,
		})
	}

	advances := aggregate.AdvancePayments()
	advanceDTOs := make([]AdvancePaymentDTO, 0, len(advances))
	for _, advance := range advances {
		advanceDTOs = append(advanceDTOs, AdvancePaymentDTO{
			ID:      advance.ID().Bytes(),
			OrderID: aggregate.ID().Bytes(),
			Amount:  advance.Amount().Decimal(),
			Method:  advance.Method().String(),
			Detail:  advance.Detail(),
			Date:    advance.Date(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ClientID:     aggregate.ClientID().Bytes(),
		DeliveryDate: aggregate.DeliveryDate(),
		Notes:        aggregate.Notes(),
		Status:       aggregate.Status().String(),
		Delivered:    aggregate.Delivered(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        itemDTOs,
		Advances:     advanceDTOs,
	}
}

// toDomain converts a database DTO to an order aggregate. Unrecognized status
// strings restore as Unknown, which degrades the row to the most restrictive
// action set instead of failing the read.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	advances := make([]*order.AdvancePayment, 0, len(dto.Advances))
	for _, advanceDTO := range dto.Advances {
		advance, advErr := advanceToDomain(advanceDTO)
		if advErr != nil {
			return nil, advErr
		}
		advances = append(advances, advance)
	}

	return order.RestoreOrder(id, clientID, dto.DeliveryDate, dto.Notes,
		order.StatusFromString(dto.Status), dto.Delivered, dto.CreatedAt, items, advances)
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var unitPrice *kernel.Money
	if dto.UnitPrice.Valid {
		price := kernel.NewMoney(dto.UnitPrice.Decimal)
		unitPrice = &price
	}

	return order.RestoreOrderItem(id, dto.ProductDescription, dto.Specification,
		dto.QuantityRequested, unitPrice, dto.Picked, dto.Notes)
}

func advanceToDomain(dto AdvancePaymentDTO) (*order.AdvancePayment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.NewAdvancePayment(id, kernel.NewMoney(dto.Amount),
		order.PaymentMethodFromString(dto.Method), dto.Detail, dto.Date)
}
