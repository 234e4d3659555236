package commands_test

import (
	"testing"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			orderID, clientID, testDeliveryDate(), "entregar temprano", orderItemInputs(t))
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.ClientID().IsEqual(clientID))
		assert.Equal(t, testDeliveryDate(), cmd.DeliveryDate())
		assert.Equal(t, "entregar temprano", cmd.Notes())
		assert.Len(t, cmd.Items(), 2)
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, clientID, testDeliveryDate(), "", nil)
		require.Error(t, err)
	})

	t.Run("empty client id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, kernel.UUID{}, testDeliveryDate(), "", nil)
		require.Error(t, err)
	})

	t.Run("zero delivery date", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, time.Time{}, "", nil)
		require.ErrorIs(t, err, commands.ErrDeliveryDateIsRequired)
	})

	t.Run("item without description", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, testDeliveryDate(), "",
			[]commands.OrderItemInput{{QuantityRequested: 1}})
		require.Error(t, err)
	})

	t.Run("item with zero quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, testDeliveryDate(), "",
			[]commands.OrderItemInput{{ProductDescription: "Harina", QuantityRequested: 0}})
		require.Error(t, err)
	})

	t.Run("no items is allowed", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			orderID, clientID, testDeliveryDate(), "", nil)
		require.NoError(t, err)
		assert.Empty(t, cmd.Items())
	})

	t.Run("default constructed command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
