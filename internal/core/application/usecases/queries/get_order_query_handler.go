package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order with its items, payments and client
// display name, and derives the action set, category and totals.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// with the given identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

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
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var resp OrderResponse
	var id, clientID uuid.UUID

	if err = rows.Scan(&id, &clientID, &resp.ClientName,
		&resp.DeliveryDate, &resp.Notes, &resp.Status, &resp.Delivered); err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderResponse{}, err
	}

	index := map[uuid.UUID]*OrderResponse{id: &resp}
	ids := []uuid.UUID{id}

	if err = attachOrderItems(ctx, h.db, ids, index); err != nil {
		return OrderResponse{}, err
	}
	if err = attachOrderAdvances(ctx, h.db, ids, index); err != nil {
		return OrderResponse{}, err
	}

	finishOrderResponse(&resp)
	return resp, nil
}
