// File: rentora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"rentora/config"
	"rentora/cron"
	"rentora/database"
	"rentora/database/repository"
	"rentora/handlers"
	"rentora/middleware"
	"rentora/routes"
	"rentora/services/booking"
	"rentora/services/notification"
	"rentora/utils"
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

	// repositories.
	listingRepo := repository.NewMongoListingRepo()
	noticeStore := repository.NewMongoNotificationStore()

	// async task queue for booking notices.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	cron.InitBookingNoticeWorker(noticeStore)

	// services.
	notifier := notification.NewAsynqNotifier(asynqClient, logger)
	bookingService := &booking.DefaultBookingService{
		Listings: listingRepo,
		Notifier: notifier,
		Logger:   logger,
	}

	// handlers.
	quoteHandler := handlers.NewQuoteHandler(bookingService, utils.GetCacheClient(), logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	vendorHandler := handlers.NewVendorHandler(listingRepo, logger)

	routes.RegisterRoutes(router, quoteHandler, bookingHandler, vendorHandler)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

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
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
