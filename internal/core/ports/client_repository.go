package ports

import (
	"context"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for the client directory.
type ClientRepository interface {
	// Add persists a new client.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
