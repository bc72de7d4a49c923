// File: vitago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitago/config"
	"vitago/cron"
	"vitago/database"
	bookingRepoPkg "vitago/database/repository/booking"
	clientRepoPkg "vitago/database/repository/client"
	providerRepoPkg "vitago/database/repository/provider"
	reportRepoPkg "vitago/database/repository/report"
	"vitago/handlers"
	"vitago/middleware"
	"vitago/routes"
	"vitago/services/booking"
	"vitago/services/client"
	"vitago/services/notification"
	"vitago/services/provider"
	"vitago/services/report"
	"vitago/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reportRepo := reportRepoPkg.NewMongoReportRepo()

	// Task client for delayed booking reminders.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer taskClient.Close()

	// services.
	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}
	clientService := &client.DefaultClientService{
		Repo: clientRepo,
	}
	notificationService := &notification.MailNotificationService{}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		ProviderRepo: provRepo,
		ClientRepo:   clientRepo,
		Notifier:     notificationService,
		TaskClient:   taskClient,
		Cache:        utils.GetCacheClient(),
		MaxLeadDays:  config.AppConfig.MaxBookingLeadDays,
		DailyLimit:   config.AppConfig.DailyBookingLimit,
	}
	reportService := &report.DefaultReportService{
		Repo:        reportRepo,
		BookingRepo: bookingRepo,
		Ratings:     providerService,
	}

	providerHandler := &handlers.ProviderHandler{Service: providerService}
	clientHandler := &handlers.ClientHandler{Service: clientService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	reportHandler := &handlers.ReportHandler{Service: reportService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProviderRepo: provRepo,
		ClientRepo:   clientRepo,

		// Provider endpoints.
		RegisterProviderHandler:        providerHandler.RegisterProviderHandler,
		AuthenticateProviderHandler:    providerHandler.AuthenticateProviderHandler,
		RevokeProviderAuthTokenHandler: providerHandler.RevokeProviderAuthTokenHandler,
		GetProviderByIDHandler:         providerHandler.GetProviderByIDHandler,
		GetProvidersHandler:            providerHandler.GetProvidersHandler,
		UpdateProviderHandler:          providerHandler.UpdateProviderHandler,
		DeleteProviderHandler:          providerHandler.DeleteProviderHandler,
		GetAvailabilityHandler:         providerHandler.GetAvailabilityHandler,
		UpdateAvailabilityHandler:      providerHandler.UpdateAvailabilityHandler,
		ToggleAvailabilityHandler:      providerHandler.ToggleAvailabilityHandler,
		OnboardingStatusHandler:        providerHandler.OnboardingStatusHandler,

		// Client endpoints.
		RegisterClientHandler:        clientHandler.RegisterClientHandler,
		AuthenticateClientHandler:    clientHandler.AuthenticateClientHandler,
		RevokeClientAuthTokenHandler: clientHandler.RevokeClientAuthTokenHandler,
		GetClientHandler:             clientHandler.GetClientHandler,
		UpdateClientHandler:          clientHandler.UpdateClientHandler,
		DeleteClientHandler:          clientHandler.DeleteClientHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetClientBookingsHandler:   bookingHandler.GetClientBookingsHandler,
		GetProviderBookingsHandler: bookingHandler.GetProviderBookingsHandler,
		AcceptBookingHandler:       bookingHandler.AcceptBookingHandler,
		DeclineBookingHandler:      bookingHandler.DeclineBookingHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
		CompleteBookingHandler:     bookingHandler.CompleteBookingHandler,
		MonthOptionsHandler:        bookingHandler.MonthOptionsHandler,
		TimeOptionsHandler:         bookingHandler.TimeOptionsHandler,

		// Report endpoints.
		FileClientReportHandler:   reportHandler.FileClientReportHandler,
		FileProviderReportHandler: reportHandler.FileProviderReportHandler,
		GetBookingReportsHandler:  reportHandler.GetBookingReportsHandler,
		GetProviderReportsHandler: reportHandler.GetProviderReportsHandler,

		// Catalogue endpoint.
		CatalogueHandler: handlers.CatalogueHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService, bookingRepo)
	utils.StartHealthMonitor(database.MongoClient, map[string]*redis.Client{
		"cache":     utils.GetCacheClient(),
		"authCache": utils.GetAuthCacheClient(),
		"reminderQueue": redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	})

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
