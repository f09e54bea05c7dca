package main

import (
	"deskgate/bizerror"
	"deskgate/client/crm"
	"deskgate/common"
	"deskgate/infra/tracing"
	"deskgate/navigation"
	"deskgate/persistence"
	"deskgate/seclog"
	"deskgate/servehttp"
	"deskgate/session"
	"deskgate/sessions"
	"deskgate/storage"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		common.Log.Info("no .env file loaded")
	}

	tracerCloser, err := tracing.Bootstrap(common.GetServiceName())
	if err != nil {
		common.Log.Fatalf("tracer bootstrap failed: %v", err)
	}
	defer tracerCloser.Close()

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		common.Log.Fatalf("parse database config failed: %v", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			common.Log.Fatalf("failed to prepare database: %v", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		common.Log.Fatalf("database connection failed: %v", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	if err := ds.GormDB(nil).AutoMigrate(&storage.SessionRecord{}).Error; err != nil {
		common.Log.Fatalf("database migration failed: %v", err)
	}

	if err := crm.BootstrapClientFromEnv(); err != nil {
		common.Log.Fatalf("crm client bootstrap failed: %v", err)
	}
	if os.Getenv("ELASTICSEARCH_URL") != "" {
		seclog.CreateClientFromEnv()
	}

	session.ActiveManager = session.NewManager(
		storage.NewGormSessionStorage(ds), crm.FetchPermissionsFunc)

	engine := gin.New()
	engine.Use(gin.Logger(), tracing.TracingIngress(), bizerror.ErrorHandling())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "deskgate")
	})

	sessions.RegisterSessionsHandler(engine)
	sessions.RegisterSessionHandler(engine, session.StoreFilter())
	navigation.RegisterNavigationHandler(engine, session.StoreFilter())
	servehttp.RegisterPageRoutes(engine, session.StoreFilter())

	servehttp.StartHTTPServer(engine)
}
