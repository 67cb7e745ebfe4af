package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"orders/cmd"
	_ "orders/docs"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/productrepo"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultLockTimeout = 250 * time.Millisecond

//	@title			Orders API
//	@version		1.0
//	@description	Order management service with customers and a product catalog.
//	@BasePath		/
func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(gormDB, configs.ReportSchedule, slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		LockTimeout:    lockTimeoutFromEnv(),
		ReportSchedule: goDotEnvVariable("BACKLOG_REPORT_SCHEDULE"),
	}

	if config.ReportSchedule == "" {
		config.ReportSchedule = "0 * * * * *"
	}

	return config
}

func lockTimeoutFromEnv() time.Duration {
	raw := goDotEnvVariable("LOCK_TIMEOUT")
	if raw == "" {
		return defaultLockTimeout
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid LOCK_TIMEOUT %q: %v", raw, err)
	}
	return timeout
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustOpenDatabase opens the connection through lib/pq. The unit of work
// inspects pq error codes to detect lock timeouts, so the driver choice
// matters.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     app.CreateCreateOrderCommandHandler(),
		UpdateOrder:     app.CreateUpdateOrderCommandHandler(),
		AddOrderItems:   app.CreateAddOrderItemsCommandHandler(),
		UpdateOrderItem: app.CreateUpdateOrderItemCommandHandler(),
		DeleteOrderItem: app.CreateDeleteOrderItemCommandHandler(),
		DeleteOrder:     app.CreateDeleteOrderCommandHandler(),
		CreateCustomer:  app.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:  app.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:  app.CreateDeleteCustomerCommandHandler(),
		CreateProduct:   app.CreateCreateProductCommandHandler(),
		UpdateProduct:   app.CreateUpdateProductCommandHandler(),
		DeleteProduct:   app.CreateDeleteProductCommandHandler(),
		GetOrder:        app.CreateGetOrderQueryHandler(),
		ListOrders:      app.CreateListOrdersQueryHandler(),
		GetCustomer:     app.CreateGetCustomerQueryHandler(),
		SearchCustomers: app.CreateSearchCustomersQueryHandler(),
		GetProduct:      app.CreateGetProductQueryHandler(),
		SearchProducts:  app.CreateSearchProductsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
