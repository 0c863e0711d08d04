// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"entrega/config"
	"entrega/cron"
	"entrega/database"
	notificationRepo "entrega/database/repository/notification"
	preferenceRepo "entrega/database/repository/preference"
	userRepoPkg "entrega/database/repository/user"
	"entrega/handlers"
	"entrega/middleware"
	"entrega/routes"
	"entrega/services/delivery"
	"entrega/services/user"
	"entrega/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	// repositories.
	prefRepo := preferenceRepo.NewGormPreferenceRepo(database.DB)
	usrRepo := userRepoPkg.NewGormUserRepo(database.DB)
	notifRepo := notificationRepo.NewGormNotificationRepo(database.DB)

	// reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	userService := &user.DefaultUserService{
		Repo: usrRepo,
	}
	handlers.SetUserService(userService)

	preferenceService := &delivery.DefaultPreferenceService{
		Repo:  prefRepo,
		Cache: utils.GetCacheClient(),
		Asynq: asynqClient,
	}
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	notificationHandler := handlers.NewNotificationHandler(notifRepo)

	// Background reminder worker.
	cron.InitReminderWorker(notifRepo)

	// Register routes.
	routes.RegisterRoutes(router, preferenceHandler, notificationHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
