package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// GetOrdersByDeliveryDateQueryHandler reads the orders of one delivery day
// together with their items, payments and client display names, and derives
// the per-order action set, category and totals.
type GetOrdersByDeliveryDateQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDeliveryDateQueryHandler creates a handler for delivery day queries.
func NewGetOrdersByDeliveryDateQueryHandler(db *gorm.DB) GetOrdersByDeliveryDateQueryHandler {
	return GetOrdersByDeliveryDateQueryHandler{db: db}
}

// Handle executes the query. Orders are sorted by creation time so the list
// is stable across reloads; items and payments keep insertion order.
func (h GetOrdersByDeliveryDateQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDeliveryDateQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readOrders(ctx, query.DeliveryDate())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]*OrderResponse, len(orders))
	for i := range orders {
		id := orders[i].ID.Bytes()
		ids = append(ids, id)
		index[id] = &orders[i]
	}

	if err = attachOrderItems(ctx, h.db, ids, index); err != nil {
		return nil, err
	}
	if err = attachOrderAdvances(ctx, h.db, ids, index); err != nil {
		return nil, err
	}

	for i := range orders {
		finishOrderResponse(&orders[i])
	}

	return orders, nil
}

func (h GetOrdersByDeliveryDateQueryHandler) readOrders(
	ctx context.Context,
	deliveryDate time.Time,
) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			COALESCE(NULLIF(c.trade_name, ''), TRIM(c.first_name || ' ' || c.last_name)),
			o.delivery_date,
			o.notes,
			o.status,
			o.delivered
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.delivery_date = ?
		ORDER BY o.created_at, o.id
	`, deliveryDate).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var id, clientID uuid.UUID
		var status string

		if err = rows.Scan(&id, &clientID, &resp.ClientName,
			&resp.DeliveryDate, &resp.Notes, &status, &resp.Delivered); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		resp.Status = status
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func attachOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
	index map[uuid.UUID]*OrderResponse,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_description,
			specification,
			quantity_requested,
			unit_price,
			picked,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY position
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, orderID uuid.UUID
		var unitPrice decimal.NullDecimal

		if err = rows.Scan(&id, &orderID, &item.ProductDescription, &item.Specification,
			&item.QuantityRequested, &unitPrice, &item.Picked, &item.Notes); err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if unitPrice.Valid {
			price := kernel.NewMoney(unitPrice.Decimal)
			item.UnitPrice = &price
			item.Subtotal = price.Mul(item.QuantityRequested)
		} else {
			item.Subtotal = kernel.ZeroMoney()
		}

		if resp, ok := index[orderID]; ok {
			resp.Items = append(resp.Items, item)
		}
	}

	return rows.Err()
}

func attachOrderAdvances(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
	index map[uuid.UUID]*OrderResponse,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			method,
			detail,
			date
		FROM advance_payments
		WHERE order_id IN ?
		ORDER BY date, id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var advance AdvancePaymentResponse
		var id, orderID uuid.UUID
		var amount decimal.Decimal

		if err = rows.Scan(&id, &orderID, &amount,
			&advance.Method, &advance.Detail, &advance.Date); err != nil {
			return err
		}

		if advance.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		advance.Amount = kernel.NewMoney(amount)

		if resp, ok := index[orderID]; ok {
			resp.Advances = append(resp.Advances, advance)
		}
	}

	return rows.Err()
}

// finishOrderResponse derives the fields the database does not store: the
// action set, the display category and the exact decimal totals.
func finishOrderResponse(resp *OrderResponse) {
	status := order.StatusFromString(resp.Status)

	resp.Actions = order.ActionsFor(status, resp.Delivered)
	resp.Category = order.CategoryFor(status, resp.Delivered).String()

	total := kernel.ZeroMoney()
	for _, item := range resp.Items {
		total = total.Add(item.Subtotal)
	}
	advances := kernel.ZeroMoney()
	for _, advance := range resp.Advances {
		advances = advances.Add(advance.Amount)
	}

	resp.OrderTotal = total
	resp.AdvancesTotal = advances
	resp.BalanceDue = total.Sub(advances)
}
