package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorportal/config"
	"doctorportal/database"
	bookingRepoPkg "doctorportal/database/repository/booking"
	slotRepoPkg "doctorportal/database/repository/slot"
	userRepoPkg "doctorportal/database/repository/user"
	"doctorportal/handlers"
	"doctorportal/middleware"
	"doctorportal/routes"
	"doctorportal/services/auth"
	"doctorportal/services/availability"
	"doctorportal/services/booking"
	"doctorportal/services/user"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}

	cacheClient, err := utils.NewRedisClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisCacheDB,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotTemplateRepo(mongoClient)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient)
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient)

	// services.
	gate := &auth.DefaultAccessGate{
		Users:  userRepo,
		Secret: []byte(config.AppConfig.JWTSecret),
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Slots:    slotRepo,
		Bookings: bookingRepo,
		Cache:    cacheClient,
		CacheTTL: time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService, logger),
		Booking:      handlers.NewBookingHandler(bookingService, availabilityService, gate, logger),
		Auth:         handlers.NewAuthHandler(gate, logger),
		User:         handlers.NewUserHandler(userService, gate, logger),
		Gate:         gate,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	if err := cacheClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close Redis client: %v", err)
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
