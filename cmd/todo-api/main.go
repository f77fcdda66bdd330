package main

import (
	"github.com/labstack/echo/v4"

	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	gormdb "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqldb"
	"todo-api/internal/infra/supabase"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Gateways
	todoGateway, healthGateway := buildGateways()

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoGateway)
	healthUseCase := health.NewHealthUseCase(healthGateway)

	// Init Controller
	todoController := controller.NewTodoController(api, todoUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	todoController.InitTodoRoutes()
	healthController.InitHealthRoutes()

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

// buildGateways selects the datastore backend from app.db.driver. The
// default Supabase backend constructs a client per request from freshly
// read environment credentials; the direct-Postgres backends share a
// process-lifetime pool.
func buildGateways() (db.Factory, db.HealthDBGateway) {
	driver := resource.GetString("app.db.driver")
	log.Info(msg.GetMessage("app.db.driver", driver))

	switch driver {
	case "gorm":
		gormDb, err := gormdb.Open(gormdb.Config{
			Host:     resource.GetString("app.db.host"),
			Port:     resource.GetString("app.db.port"),
			Username: resource.GetString("app.db.username"),
			Password: resource.GetString("app.db.password"),
			Database: resource.GetString("app.db.database"),
			Schema:   resource.GetString("app.db.schema"),
		})
		if err != nil {
			log.Fatalf(msg.GetMessage("app.db.connect-failed", driver)+": %v", err)
		}
		gateway := db.NewGormTodoGateway(gormDb)
		return func() (db.TodoGateway, error) { return gateway, nil },
			db.NewGormHealthDBGateway(gormDb)

	case "postgres":
		sqlDb, err := sqldb.Open(sqldb.Config{
			Host:     resource.GetString("app.db.host"),
			Port:     resource.GetString("app.db.port"),
			Username: resource.GetString("app.db.username"),
			Password: resource.GetString("app.db.password"),
			Database: resource.GetString("app.db.database"),
			Schema:   resource.GetString("app.db.schema"),
		})
		if err != nil {
			log.Fatalf(msg.GetMessage("app.db.connect-failed", driver)+": %v", err)
		}
		gateway := db.NewSQLTodoGateway(sqlDb)
		return func() (db.TodoGateway, error) { return gateway, nil },
			db.NewSQLHealthDBGateway(sqlDb)

	default:
		creds := supabase.EnvCredentials{}
		factory := func() (db.TodoGateway, error) {
			client, err := supabase.NewClient(creds)
			if err != nil {
				return nil, err
			}
			return db.NewSupabaseTodoGateway(client), nil
		}
		return factory, db.NewSupabaseHealthGateway(creds)
	}
}
