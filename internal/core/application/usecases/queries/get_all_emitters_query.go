package queries

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrGetAllEmittersQueryIsNotConstructed = errors.New(
	"GetAllEmittersQuery must be created via NewGetAllEmittersQuery constructor",
)

// GetAllEmittersQuery retrieves the billing identities available for
// document generation.
type GetAllEmittersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllEmittersQuery creates a parameterless emitter directory query.
func NewGetAllEmittersQuery() GetAllEmittersQuery {
	return GetAllEmittersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllEmittersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllEmittersQueryIsNotConstructed)
}

// EmitterResponse is one billing identity row.
type EmitterResponse struct {
	ID    kernel.UUID
	Name  string
	TaxID string
}
