package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
)

// GetAllEmittersQueryHandler reads the emitter directory sorted by name.
type GetAllEmittersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllEmittersQueryHandler creates a handler for emitter directory queries.
func NewGetAllEmittersQueryHandler(db *gorm.DB) GetAllEmittersQueryHandler {
	return GetAllEmittersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllEmittersQueryHandler) Handle(
	ctx context.Context,
	query GetAllEmittersQuery,
) ([]EmitterResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	emitters := make([]EmitterResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			tax_id
		FROM emitters
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp EmitterResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.TaxID); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		emitters = append(emitters, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return emitters, nil
}
