// Package clientrepo provides data transfer objects and mapping functions for
// client directory persistence.
package clientrepo

import (
	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting clients.
type ClientDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName        string
	LastName         string
	TradeName        string
	Address          string
	Phone            string
	TaxID            string
	DefaultEmitterID uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for clients.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:               aggregate.ID().Bytes(),
		FirstName:        aggregate.FirstName(),
		LastName:         aggregate.LastName(),
		TradeName:        aggregate.TradeName(),
		Address:          aggregate.Address(),
		Phone:            aggregate.Phone(),
		TaxID:            aggregate.TaxID(),
		DefaultEmitterID: aggregate.DefaultEmitterID().Bytes(),
	}
}

// toDomain converts a database DTO to a client aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	emitterID, err := kernel.UUIDFromBytes(dto.DefaultEmitterID[:])
	if err != nil {
		return nil, err
	}

	return client.NewClient(id, dto.FirstName, dto.LastName, dto.TradeName,
		dto.Address, dto.Phone, dto.TaxID, emitterID)
}
