package main

import (
	"fmt"
	"log/slog"
	"os"

	"pedidos/cmd"
	httpserver "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/postgres/billingrepo"
	"pedidos/internal/adapters/out/postgres/clientrepo"
	"pedidos/internal/adapters/out/postgres/emitterrepo"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.AdvancePaymentDTO{},
		&clientrepo.ClientDTO{}, &emitterrepo.EmitterDTO{},
		&billingrepo.InvoiceDTO{}, &billingrepo.InvoiceItemDTO{},
		&billingrepo.DeliveryNoteDTO{}, &billingrepo.DeliveryNoteItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetOrdersByDeliveryDateQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(
		httpserver.Commands{
			CreateOrder:         app.CreateCreateOrderCommandHandler(),
			UpdateOrder:         app.CreateUpdateOrderCommandHandler(),
			DeleteOrder:         app.CreateDeleteOrderCommandHandler(),
			UpdateItemChecklist: app.CreateUpdateItemChecklistCommandHandler(),
			MarkOrderReady:      app.CreateMarkOrderReadyCommandHandler(),
			MarkOrderDelivered:  app.CreateMarkOrderDeliveredCommandHandler(),
			CancelOrder:         app.CreateCancelOrderCommandHandler(),
			AddAdvancePayment:   app.CreateAddAdvancePaymentCommandHandler(),
			CreateDeliveryNote:  app.CreateCreateDeliveryNoteCommandHandler(),
			CreateInvoice:       app.CreateCreateInvoiceCommandHandler(),
			CreateClient:        app.CreateCreateClientCommandHandler(),
			UpdateClient:        app.CreateUpdateClientCommandHandler(),
		},
		httpserver.Queries{
			OrdersByDeliveryDate:   app.CreateGetOrdersByDeliveryDateQueryHandler(),
			Order:                  app.CreateGetOrderQueryHandler(),
			AllClients:             app.CreateGetAllClientsQueryHandler(),
			AllEmitters:            app.CreateGetAllEmittersQueryHandler(),
			ClientAccountStatement: app.CreateGetClientAccountStatementQueryHandler(),
			DailyCashSummary:       app.CreateGetDailyCashSummaryQueryHandler(),
		},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
