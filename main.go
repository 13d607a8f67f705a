// File: roomify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomify/config"
	"roomify/cron"
	"roomify/database"
	reservationRepo "roomify/database/repository/reservation"
	roomRepo "roomify/database/repository/room"
	"roomify/handlers"
	"roomify/middleware"
	"roomify/routes"
	"roomify/services/scheduling"
	"roomify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	loc, err := time.LoadLocation(config.AppConfig.TimeZone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid TIME_ZONE %q: %v", config.AppConfig.TimeZone, err)
	}

	// repositories.
	rooms := roomRepo.NewMongoRoomRepo()
	reservations := reservationRepo.NewMongoReservationRepo()
	if err := rooms.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create room indexes: %v", err)
	}
	if err := reservations.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create reservation indexes: %v", err)
	}

	if config.AppConfig.SeedDefaultRooms {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		seeded, err := database.SeedDefaultRooms(ctx, rooms)
		cancel()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to seed default rooms: %v", err)
		}
		if seeded > 0 {
			logger.Sugar().Infof("main: seeded %d default rooms", seeded)
		}
	}

	// services.
	bookingService := scheduling.NewBookingService(rooms, reservations, scheduling.NewExpander(loc), logger)

	// handlers.
	authHandler := handlers.NewAuthHandler(logger)
	roomHandler := handlers.NewRoomHandler(rooms, logger)
	reservationHandler := handlers.NewReservationHandler(bookingService, reservations, loc, logger)

	handlerBundle := &handlers.HandlerBundle{
		AdminLoginHandler: authHandler.AdminLoginHandler,

		ListRoomsHandler:  roomHandler.ListRoomsHandler,
		CreateRoomHandler: roomHandler.CreateRoomHandler,
		UpdateRoomHandler: roomHandler.UpdateRoomHandler,
		DeleteRoomHandler: roomHandler.DeleteRoomHandler,

		CreateReservationHandler: reservationHandler.CreateReservationHandler,
		ListReservationsHandler:  reservationHandler.ListReservationsHandler,
		DeleteReservationHandler: reservationHandler.DeleteReservationHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	// Background purge of long-ended reservations.
	cron.InitPurgeWorker(reservations)

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
