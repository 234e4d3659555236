package ports

import (
	"context"

	"pedidos/internal/core/domain/model/emitter"
	"pedidos/internal/core/domain/model/kernel"
)

// EmitterRepository defines the read-only lookup contract for the emitter
// directory. Emitters are seeded in the database, never written by the app.
type EmitterRepository interface {
	// Get retrieves an emitter by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*emitter.Emitter, error)
}
