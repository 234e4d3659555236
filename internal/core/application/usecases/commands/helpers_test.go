package commands_test

import (
	"testing"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/emitter"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testDeliveryDate() time.Time {
	return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
}

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(value)
	require.NoError(t, err)
	return m
}

func buildClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(),
		"Marta", "Suarez", "", "Av. Rivadavia 1200", "11-5555-0101", "27-22334455-6", kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func buildEmitter(t *testing.T) *emitter.Emitter {
	t.Helper()
	e, err := emitter.NewEmitter(kernel.NewUUID(), "Distribuidora Norte SA", "30-11223344-5")
	require.NoError(t, err)
	return e
}

// buildOrderInStatus restores an order with two priced items in the given
// lifecycle status, bypassing the transition machinery so each test can start
// exactly where it needs to.
func buildOrderInStatus(t *testing.T, status order.Status, delivered bool) *order.Order {
	t.Helper()

	price := mustMoney(t, "10.00")
	first, err := order.NewOrderItem(kernel.NewUUID(), "Harina 000", "bolsa 25kg", 2, &price)
	require.NoError(t, err)
	second, err := order.NewOrderItem(kernel.NewUUID(), "Levadura", "", 1, &price)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), testDeliveryDate(), "",
		status, delivered, time.Now().UTC(), []*order.OrderItem{first, second}, nil)
	require.NoError(t, err)
	return o
}

func orderItemInputs(t *testing.T) []commands.OrderItemInput {
	t.Helper()
	price := mustMoney(t, "25.50")
	return []commands.OrderItemInput{
		{ProductDescription: "Harina 000", Specification: "bolsa 25kg", QuantityRequested: 2, UnitPrice: &price},
		{ProductDescription: "Levadura", QuantityRequested: 1},
	}
}
