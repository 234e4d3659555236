package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
)

// GetAllClientsQueryHandler reads the client directory sorted by display name.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllClientsQueryHandler creates a handler for client directory queries.
func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

// Handle executes the query. The display name is resolved in SQL with the
// same rule the domain uses: trade name when present, otherwise "first last".
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]ClientResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			trade_name,
			COALESCE(NULLIF(trade_name, ''), TRIM(first_name || ' ' || last_name)) AS display_name,
			address,
			phone,
			tax_id,
			default_emitter_id
		FROM clients
		ORDER BY display_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ClientResponse
		var id, emitterID uuid.UUID

		if err = rows.Scan(&id, &resp.FirstName, &resp.LastName, &resp.TradeName,
			&resp.DisplayName, &resp.Address, &resp.Phone, &resp.TaxID, &emitterID); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DefaultEmitterID, err = kernel.UUIDFromBytes(emitterID[:]); err != nil {
			return nil, err
		}
		clients = append(clients, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
