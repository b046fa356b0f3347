package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jnederlo/linecruncher/internal/api/handlers"
	"github.com/jnederlo/linecruncher/internal/config"
	"github.com/jnederlo/linecruncher/internal/websocket"
	"github.com/jnederlo/linecruncher/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithComponent("server").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting LineCruncher API")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Progress hub for streaming round statistics to clients
	wsHub := websocket.NewHub(structuredLogger)
	go wsHub.Run()

	optimizationHandler := handlers.NewOptimizationHandler(cfg, wsHub, structuredLogger)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", handlers.HealthCheck)
	router.GET("/ws/progress", wsHub.HandleWebSocket)

	api := router.Group("/api/v1")
	{
		api.POST("/optimize", optimizationHandler.Optimize)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithComponent("server").Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.WithComponent("server").Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithComponent("server").Fatalf("Server forced to shutdown: %v", err)
	}

	logger.WithComponent("server").Info("Server exited")
}
