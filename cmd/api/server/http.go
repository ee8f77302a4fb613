package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "user-seed-service/internal/adapter/gin/handler"
	ginrouter "user-seed-service/internal/adapter/gin/router"
)

// NewHTTPServer creates and configures the REST API server.
func NewHTTPServer(
	userHandler *ginhandler.UserHandler,
	fruitHandler *ginhandler.FruitHandler,
	addr string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(userHandler, fruitHandler, l)

	l.Info("REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
