// File: tailortalk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailortalk/config"
	"tailortalk/cron"
	"tailortalk/database"
	appointmentRepo "tailortalk/database/repository/appointment"
	conversationRepo "tailortalk/database/repository/conversation"
	"tailortalk/handlers"
	"tailortalk/middleware"
	"tailortalk/routes"
	"tailortalk/services/agent"
	"tailortalk/services/calendar"
	"tailortalk/services/reminder"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
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
	conversations := conversationRepo.NewMongoConversationRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	calendarService := &calendar.DefaultCalendarService{
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.AvailabilityCacheTTLSeconds) * time.Second,
	}

	agentService := &agent.DefaultAgentService{
		Calendar:      calendarService,
		Conversations: conversations,
		Sessions:      agent.NewSessionStore(),
	}

	reminderScheduler := reminder.NewAsynqScheduler()
	defer reminderScheduler.Close()
	cron.InitReminderWorker()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Chat:          handlers.NewChatHandler(agentService, logger),
		Booking:       handlers.NewBookingHandler(calendarService, appointments, reminderScheduler, logger),
		Conversations: handlers.NewConversationHandler(conversations, logger),
		Health:        handlers.NewHealthHandler(calendarService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
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
