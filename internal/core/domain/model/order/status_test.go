package order_test

import (
	"testing"

	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses every wire name", func(t *testing.T) {
		testCases := map[string]order.Status{
			"PENDIENTE":            order.Pending,
			"EN_PREPARACION":       order.InPreparation,
			"PREPARADO_INCOMPLETO": order.PreparedIncomplete,
			"PREPARADO_COMPLETO":   order.PreparedComplete,
			"LISTO_PARA_DESPACHO":  order.ReadyForDispatch,
			"REMITIDO":             order.Remitted,
			"FACTURADO":            order.Invoiced,
			"CANCELADO":            order.Cancelled,
		}

		for wire, expected := range testCases {
			assert.Equal(t, expected, order.StatusFromString(wire))
			assert.Equal(t, wire, expected.String())
		}
	})

	t.Run("unrecognized values degrade to Unknown without error", func(t *testing.T) {
		assert.Equal(t, order.Unknown, order.StatusFromString("ENTREGADO"))
		assert.Equal(t, order.Unknown, order.StatusFromString(""))
		assert.Equal(t, order.Unknown, order.StatusFromString("pendiente"))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, status := range allStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
		assert.Equal(t, "DESCONOCIDO", order.Status(42).String())
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("prepared complete becomes ready for dispatch", func(t *testing.T) {
		newStatus, err := order.PreparedComplete.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForDispatch, newStatus)
	})

	t.Run("other statuses cannot be marked ready", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.PreparedIncomplete, order.ReadyForDispatch,
			order.Remitted, order.Invoiced, order.Cancelled, order.Unknown,
		} {
			_, err := status.MarkReady()
			require.Error(t, err, "mark ready allowed from %s", status)
		}
	})
}

func TestStatus_Remit(t *testing.T) {
	t.Run("ready for dispatch becomes remitted", func(t *testing.T) {
		newStatus, err := order.ReadyForDispatch.Remit()

		require.NoError(t, err)
		assert.Equal(t, order.Remitted, newStatus)
	})

	t.Run("remit is rejected from every other status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.PreparedComplete, order.Remitted,
			order.Invoiced, order.Cancelled, order.Unknown,
		} {
			_, err := status.Remit()
			require.Error(t, err)
		}
	})
}

func TestStatus_Invoice(t *testing.T) {
	t.Run("ready for dispatch and remitted become invoiced", func(t *testing.T) {
		for _, status := range []order.Status{order.ReadyForDispatch, order.Remitted} {
			newStatus, err := status.Invoice()

			require.NoError(t, err)
			assert.Equal(t, order.Invoiced, newStatus)
		}
	})

	t.Run("invoice is rejected elsewhere", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.PreparedComplete, order.Invoiced,
			order.Cancelled, order.Unknown,
		} {
			_, err := status.Invoice()
			require.Error(t, err)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("preparation and ready statuses can cancel", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.InPreparation, order.PreparedIncomplete,
			order.PreparedComplete, order.ReadyForDispatch,
		} {
			newStatus, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("terminal and remitted statuses cannot cancel", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Remitted, order.Invoiced, order.Cancelled, order.Unknown,
		} {
			_, err := status.Cancel()
			require.Error(t, err)
		}
	})
}

func TestPaymentMethod(t *testing.T) {
	t.Run("parses every wire name", func(t *testing.T) {
		testCases := map[string]order.PaymentMethod{
			"EFECTIVO":      order.Cash,
			"TRANSFERENCIA": order.Transfer,
			"CHEQUE":        order.Check,
			"MIXTO":         order.Mixed,
		}

		for wire, expected := range testCases {
			assert.Equal(t, expected, order.PaymentMethodFromString(wire))
			assert.Equal(t, wire, expected.String())
			require.NoError(t, expected.Validate())
		}
	})

	t.Run("unrecognized methods are invalid", func(t *testing.T) {
		assert.Equal(t, order.UnknownMethod, order.PaymentMethodFromString("TARJETA"))
		require.Error(t, order.UnknownMethod.Validate())
	})

	t.Run("cash and mixed land in the cash box", func(t *testing.T) {
		assert.True(t, order.Cash.IsCashLike())
		assert.True(t, order.Mixed.IsCashLike())
		assert.False(t, order.Transfer.IsCashLike())
		assert.False(t, order.Check.IsCashLike())
	})
}
