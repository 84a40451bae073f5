package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"reservas-backend/config"
	"reservas-backend/controllers"
	"reservas-backend/queue"
	"reservas-backend/routes"
	"reservas-backend/services"
	"reservas-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	if utils.EnvOrDefault("LOG_FORMAT", "text") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	if err := config.ConnectDatabase(); err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	db := config.DB
	log.Info("database connection established and migrations applied")

	// Session store: Redis when configured, in-memory otherwise.
	var sessions services.SessionStore
	if client := config.ConnectRedis(); client != nil {
		sessions = services.NewRedisSessionStore(client)
	} else {
		sessions = services.NewMemorySessionStore()
	}

	// Broker is optional; the publisher is a no-op when unset.
	var publisher *queue.Publisher
	if url := queue.BrokerURL(); url != "" {
		p, err := queue.NewPublisher(url)
		if err != nil {
			log.WithError(err).Warn("broker unavailable, events disabled")
		} else {
			publisher = p
			defer publisher.Close()
			go queue.StartConfirmedConsumer(url)
		}
	}

	// Services
	settingsService := services.NewSettingsService(db)
	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db, availabilityService, settingsService)
	paymentService := services.NewPaymentService(db)
	roomService := services.NewRoomService(db)
	adminService := services.NewAdminService(db, sessions)

	// Controllers
	reservationController := controllers.NewReservationController(reservationService, publisher)
	paymentController := controllers.NewPaymentController(paymentService, publisher)
	roomController := controllers.NewRoomController(roomService, availabilityService)
	authController := controllers.NewAuthController(adminService)
	settingsController := controllers.NewSettingsController(settingsService)

	router := routes.SetupRouter(
		reservationController,
		paymentController,
		roomController,
		authController,
		settingsController,
		adminService,
	)

	port := utils.EnvOrDefault("PORT", "8080")
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server stopped gracefully")
}
