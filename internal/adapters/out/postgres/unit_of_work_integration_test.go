package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "pedidos/internal/adapters/out/postgres"
	"pedidos/internal/adapters/out/postgres/billingrepo"
	"pedidos/internal/adapters/out/postgres/clientrepo"
	"pedidos/internal/adapters/out/postgres/emitterrepo"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/domain/model/billing"
	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.AdvancePaymentDTO{},
		&clientrepo.ClientDTO{}, &emitterrepo.EmitterDTO{},
		&billingrepo.InvoiceDTO{}, &billingrepo.InvoiceItemDTO{},
		&billingrepo.DeliveryNoteDTO{}, &billingrepo.DeliveryNoteItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, clients, emitters, invoices, delivery_notes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ClientRepository())
	suite.NotNil(uow2.EmitterRepository())
	suite.NotNil(uow2.BillingRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction,
		"Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction,
		"Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testClient := suite.createTestClient()
	testOrder := suite.createTestOrderForClient(testClient.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ClientRepository().Add(ctx, testClient)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedClient, err := newUow.ClientRepository().Get(ctx, testClient.ID())
	suite.Require().NoError(err)
	suite.Equal(testClient.ID(), retrievedClient.ID())

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testClient.ID(), retrievedOrder.ClientID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testClient := suite.createTestClient()
	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.ClientRepository().Add(ctx, testClient)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.ClientRepository().Get(ctx, testClient.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.ClientRepository().Get(ctx, testClient.ID())
	suite.Require().Error(err, "Client should not exist after rollback")
}

// TestUnitOfWork_DeliveryNoteWorkflow exercises the full dispatch workflow:
// moving the order to REMITIDO and saving the delivery note must be atomic.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryNoteWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.SetItemChecklist(testOrder.Items()[0].ID(), true, ""))
	suite.Require().NoError(testOrder.MarkReady())

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	number, err := uow.BillingRepository().NextDeliveryNoteNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, number)

	price, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	line, err := billing.NewDocumentItem("Harina 000", "", 2, price)
	suite.Require().NoError(err)

	note, err := billing.NewDeliveryNote(kernel.NewUUID(), number, testOrder.ClientID(),
		kernel.NewUUID(), testOrder.ID(), time.Now().UTC(), []billing.DocumentItem{line})
	suite.Require().NoError(err)

	err = uow.BillingRepository().AddDeliveryNote(ctx, note)
	suite.Require().NoError(err)

	err = testOrder.MarkRemitted()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Remitted, retrievedOrder.Status())

	nextNumber, err := newUow.BillingRepository().NextDeliveryNoteNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal(2, nextNumber, "Number series should advance past the saved note")
}

// TestUnitOfWork_DeliveryNoteWorkflowRollback verifies that a rollback leaves
// both the order status and the number series untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryNoteWorkflowRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.SetItemChecklist(testOrder.Items()[0].ID(), true, ""))
	suite.Require().NoError(testOrder.MarkReady())

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	number, err := uow.BillingRepository().NextDeliveryNoteNumber(ctx)
	suite.Require().NoError(err)

	price, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	line, err := billing.NewDocumentItem("Harina 000", "", 2, price)
	suite.Require().NoError(err)

	note, err := billing.NewDeliveryNote(kernel.NewUUID(), number, testOrder.ClientID(),
		kernel.NewUUID(), testOrder.ID(), time.Now().UTC(), []billing.DocumentItem{line})
	suite.Require().NoError(err)

	err = uow.BillingRepository().AddDeliveryNote(ctx, note)
	suite.Require().NoError(err)

	err = testOrder.MarkRemitted()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReadyForDispatch, retrievedOrder.Status())

	nextNumber, err := newUow.BillingRepository().NextDeliveryNoteNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, nextNumber, "Number series should not advance after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder()
	order2 := suite.createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderForClient(kernel.NewUUID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrderForClient(clientID kernel.UUID) *order.Order {
	price, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	item, err := order.NewOrderItem(kernel.NewUUID(), "Harina 000", "", 2, &price)
	suite.Require().NoError(err)

	deliveryDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	testOrder, err := order.NewOrder(kernel.NewUUID(), clientID, deliveryDate, "",
		[]*order.OrderItem{item})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestClient() *client.Client {
	testClient, err := client.NewClient(kernel.NewUUID(), "Marta", "Suarez", "",
		"Av. Rivadavia 1200", "11-5555-0000", "27-11111111-3", kernel.NewUUID())
	suite.Require().NoError(err)
	return testClient
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
