package servehttp

import (
	"context"
	"deskgate/common"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func StartHTTPServer(engine *gin.Engine) {
	address := os.Getenv("SERVICE_ADDRESS")
	if address == "" {
		address = ":8080"
	}
	srv := &http.Server{
		Addr:    address,
		Handler: engine,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.Log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	common.Log.Info("shutdown signal received, the service will exit in 3 seconds")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// graceful shutdown, new requests are rejected
	if err := srv.Shutdown(ctx); err != nil {
		common.Log.Fatalf("http server shutdown failed: %v", err)
	}

	<-ctx.Done()
	common.Log.Info("service exiting")
}
