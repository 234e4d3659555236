package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateClientCommand(t *testing.T) {
	clientID := kernel.NewUUID()
	emitterID := kernel.NewUUID()

	t.Run("valid with personal name", func(t *testing.T) {
		cmd, err := commands.NewCreateClientCommand(
			clientID, "Marta", "Suarez", "", "Av. Rivadavia 1200", "11-5555-0101", "27-22334455-6", emitterID)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Marta", cmd.FirstName())
	})

	t.Run("valid with trade name only", func(t *testing.T) {
		cmd, err := commands.NewCreateClientCommand(
			clientID, "", "", "Panadería El Sol", "", "", "", emitterID)
		require.NoError(t, err)
		assert.Equal(t, "Panadería El Sol", cmd.TradeName())
	})

	t.Run("no name at all", func(t *testing.T) {
		_, err := commands.NewCreateClientCommand(
			clientID, "", "Suarez", "", "", "", "", emitterID)
		require.Error(t, err)
	})

	t.Run("empty default emitter", func(t *testing.T) {
		_, err := commands.NewCreateClientCommand(
			clientID, "Marta", "", "", "", "", "", kernel.UUID{})
		require.Error(t, err)
	})
}
