package client_test

import (
	"testing"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	emitterID := kernel.NewUUID()

	t.Run("creates a client with a personal name", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Ana", "García", "",
			"Av. Rivadavia 1234", "11-5555-0000", "27-12345678-3", emitterID)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Ana García", c.DisplayName())
	})

	t.Run("trade name wins over personal name", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Ana", "García", "Panadería La Espiga",
			"", "", "", emitterID)

		require.NoError(t, err)
		assert.Equal(t, "Panadería La Espiga", c.DisplayName())
	})

	t.Run("requires a first or trade name", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "", "García", "", "", "", "", emitterID)

		require.Error(t, err)
	})

	t.Run("requires a default emitter", func(t *testing.T) {
		var noEmitter kernel.UUID

		_, err := client.NewClient(kernel.NewUUID(), "Ana", "", "", "", "", "", noEmitter)

		require.Error(t, err)
	})

	t.Run("nil client fails validation", func(t *testing.T) {
		var c *client.Client

		assert.Equal(t, client.ErrClientIsNotConstructed, c.Validate())
	})
}

func TestClient_Update(t *testing.T) {
	t.Run("replaces editable fields", func(t *testing.T) {
		emitterID := kernel.NewUUID()
		c, err := client.NewClient(kernel.NewUUID(), "Ana", "García", "", "", "", "", emitterID)
		require.NoError(t, err)

		newEmitter := kernel.NewUUID()
		require.NoError(t, c.Update("Ana", "García", "La Espiga",
			"Calle Falsa 123", "11-4444-0000", "27-12345678-3", newEmitter))

		assert.Equal(t, "La Espiga", c.DisplayName())
		assert.True(t, c.DefaultEmitterID().IsEqual(newEmitter))
		assert.Equal(t, "Calle Falsa 123", c.Address())
	})

	t.Run("rejects clearing every name", func(t *testing.T) {
		emitterID := kernel.NewUUID()
		c, _ := client.NewClient(kernel.NewUUID(), "Ana", "", "", "", "", "", emitterID)

		require.Error(t, c.Update("", "", "", "", "", "", emitterID))
	})
}
