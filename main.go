package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allride/config"
	"allride/database"
	availabilityRepoPkg "allride/database/repository/availability"
	bookingRepoPkg "allride/database/repository/booking"
	cityRepoPkg "allride/database/repository/city"
	userRepoPkg "allride/database/repository/user"
	vehicleRepoPkg "allride/database/repository/vehicle"
	"allride/handlers"
	"allride/middleware"
	"allride/routes"
	adminSvc "allride/services/admin"
	availabilitySvc "allride/services/availability"
	bookingSvc "allride/services/booking"
	citySvc "allride/services/city"
	otpSvc "allride/services/otp"
	userSvc "allride/services/user"
	vehicleSvc "allride/services/vehicle"
	"allride/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetOTPCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	cityRepo := cityRepoPkg.NewMongoCityRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	vehicleService := vehicleSvc.NewVehicleService(vehicleRepo)
	bookingService := bookingSvc.NewBookingService(bookingRepo, vehicleRepo, availabilityRepo)
	availabilityService := availabilitySvc.NewAvailabilityService(availabilityRepo, bookingRepo)
	cityService := citySvc.NewCityService(cityRepo)
	userService := userSvc.NewUserService(userRepo, bookingRepo)
	otpService := otpSvc.NewOTPService(
		otpSvc.NewRedisStore(utils.GetOTPCacheClient()),
		otpSvc.NewMsg91Sender(),
	)
	adminService := adminSvc.NewAdminService(bookingService, vehicleService, userService)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		vehicleService,
		bookingService,
		availabilityService,
		cityService,
		userService,
		otpService,
		adminService,
	)
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

	logger.Sugar().Info("main: server stopped gracefully")
}
