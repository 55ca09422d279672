package routes

import (
	"net/http"
	"time"

	"doctorportal/handlers"
	"doctorportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the public availability endpoint.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentSlots", hb.Availability.GetAppointmentSlots)
}

// RegisterBookingRoutes registers booking creation (public) and the
// owner-scoped booking listing (credential required).
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.Booking.CreateBooking)
	r.GET("/bookings", middleware.JWTAuthMiddleware(hb.Gate), hb.Booking.GetBookings)
}

// RegisterUserRoutes registers account endpoints; only promotion requires a
// credential.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/users", hb.User.GetUsers)
	r.POST("/users", hb.User.CreateUser)
	r.GET("/users/admin/:email", hb.User.CheckAdmin)
	r.PUT("/users/admin/:id", middleware.JWTAuthMiddleware(hb.Gate), hb.User.PromoteUser)
}

// RegisterAuthRoutes registers credential issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.Auth.GetJWT)
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctor portal server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
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

	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
