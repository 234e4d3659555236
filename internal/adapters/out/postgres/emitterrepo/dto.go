// Package emitterrepo provides read-only access to the emitter directory.
// Emitter rows are seeded directly in the database and never written by the
// application, so the repository exposes lookups only.
package emitterrepo

import (
	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/emitter"
	"pedidos/internal/core/domain/model/kernel"
)

// EmitterDTO represents the database structure for billing identities.
type EmitterDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	TaxID string
}

// TableName specifies the database table name for emitters.
func (EmitterDTO) TableName() string {
	return "emitters"
}

// toDomain converts a database DTO to an emitter aggregate.
func toDomain(dto EmitterDTO) (*emitter.Emitter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return emitter.NewEmitter(id, dto.Name, dto.TaxID)
}
