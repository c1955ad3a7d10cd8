package routes

import (
	"net/http"
	"time"

	"allride/handlers"
	"allride/middleware"
	"allride/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// registerVehicleGroup mounts a catalog handler under one prefix. The same
// shape serves /api/vehicles and the purpose-scoped rent/sale groups.
func registerVehicleGroup(r *gin.Engine, prefix string, vh *handlers.VehicleHandler, writable bool) {
	api := r.Group(prefix)
	{
		api.GET("", vh.ListHandler)
		api.GET("/filter", vh.ListHandler)
		api.GET("/city/:city", vh.ListByCityHandler)
		api.GET("/type/:type", vh.ListByTypeHandler)
		api.GET("/cities", vh.CitiesHandler)
		api.GET("/counts", vh.CountsHandler)
		api.GET("/:id", vh.GetHandler)

		if writable {
			api.GET("/stats/comprehensive", vh.StatsHandler)
			api.GET("/:id/available-for/:purpose", vh.AvailableForPurposeHandler)
			api.GET("/:id/prices", vh.PricesHandler)
			api.POST("", vh.CreateHandler)
			api.PUT("/:id", vh.UpdateHandler)
			api.DELETE("/:id", vh.DeleteHandler)
		}
	}
}

// RegisterVehicleRoutes registers the full catalog plus the purpose-scoped
// rent and sale listings.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	registerVehicleGroup(r, "/api/vehicles", hb.Vehicles, true)
	registerVehicleGroup(r, "/api/rent-vehicles", hb.RentVehicles, false)
	registerVehicleGroup(r, "/api/sale-vehicles", hb.SaleVehicles, false)
}

// RegisterBookingRoutes registers the customer booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Bookings.CreateHandler)
		api.GET("", hb.Bookings.ListHandler)
		api.GET("/availability", hb.Bookings.AvailabilityHandler)
		api.GET("/stats", hb.Bookings.StatsHandler)
		api.GET("/customer/:phone", hb.Bookings.ByCustomerHandler)
		api.GET("/vehicle/:id", hb.Bookings.ByVehicleHandler)
		api.GET("/:id", hb.Bookings.GetHandler)
		api.PUT("/:id/status", hb.Bookings.UpdateStatusHandler)
		api.POST("/:id/cancel", hb.Bookings.CancelHandler)
	}
}

// RegisterCityRoutes registers the serviceable-city endpoints.
func RegisterCityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cities")
	{
		api.GET("", hb.Cities.ListHandler)
		api.GET("/:id", hb.Cities.GetHandler)
		api.POST("", hb.Cities.CreateHandler)
		api.PUT("/:id", hb.Cities.UpdateHandler)
		api.DELETE("/:id", hb.Cities.DeleteHandler)
	}
}

// RegisterAuthRoutes registers OTP login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/send-otp", hb.Auth.SendOTPHandler)
		api.POST("/verify-otp", hb.Auth.VerifyOTPHandler)
		api.GET("/check-user/:phone", hb.Auth.CheckUserHandler)
		api.GET("/users/check/:phone", hb.Auth.CheckUserHandler)
		api.POST("/create-user", hb.Auth.CreateUserHandler)
		api.PUT("/update-profile", hb.Auth.UpdateProfileHandler)
		api.GET("/profile/:phone", hb.Auth.ProfileHandler)
		api.GET("/bookings/:phone", hb.Auth.UserBookingsHandler)
	}
}

// RegisterAdminRoutes registers the dashboard endpoints behind the static
// bearer token guard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AdminAuthMiddleware())
		admin.GET("/check-role/:phone", hb.Admin.CheckRoleHandler)
		admin.GET("/stats", hb.Admin.StatsHandler)

		admin.GET("/bookings", hb.Admin.AllBookingsHandler)
		admin.GET("/bookings/upcoming", hb.Admin.UpcomingBookingsHandler)
		admin.GET("/bookings/completed", hb.Admin.CompletedBookingsHandler)
		admin.PUT("/bookings/:id", hb.Admin.UpdateBookingHandler)
		admin.POST("/bookings/:id/cancel", hb.Admin.CancelBookingHandler)

		admin.GET("/vehicles/:id/availability", hb.Admin.ListAvailabilityHandler)
		admin.POST("/vehicles/:id/availability", hb.Admin.SetAvailabilityHandler)
		admin.POST("/vehicles/:id/unavailable", hb.Admin.SetUnavailableHandler)
		admin.POST("/vehicles/:id/available", hb.Admin.SetAvailableHandler)
		admin.GET("/vehicles/:id/availability-status", hb.Admin.AvailabilityStatusHandler)
		admin.GET("/vehicles/:id/unavailable-dates", hb.Admin.UnavailableDatesHandler)
		admin.DELETE("/vehicles/:id/availability/clear-conflicts", hb.Admin.ClearConflictsHandler)
		admin.DELETE("/availability/:id", hb.Admin.RemoveAvailabilityHandler)

		admin.GET("/vehicles/:id/purpose-options", hb.Admin.PurposeOptionsHandler)
		admin.PUT("/vehicles/:id/purpose", hb.Admin.UpdatePurposeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVehicleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCityRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
