package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddAdvancePaymentCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewAddAdvancePaymentCommand(
			orderID, mustMoney(t, "100.00"), order.Cash, "seña", testDeliveryDate())
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "100.00", cmd.Amount().String())
		assert.Equal(t, order.Cash, cmd.Method())
		assert.Equal(t, "seña", cmd.Detail())
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := commands.NewAddAdvancePaymentCommand(
			orderID, kernel.ZeroMoney(), order.Cash, "", testDeliveryDate())
		require.Error(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := commands.NewAddAdvancePaymentCommand(
			orderID, mustMoney(t, "-1.00"), order.Transfer, "", testDeliveryDate())
		require.Error(t, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := commands.NewAddAdvancePaymentCommand(
			orderID, mustMoney(t, "50.00"), order.UnknownMethod, "", testDeliveryDate())
		require.Error(t, err)
	})
}
