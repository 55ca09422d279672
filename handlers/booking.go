package handlers

import (
	"net/http"

	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/auth"
	"doctorportal/services/availability"
	"doctorportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and owner-scoped reads.
type BookingHandler struct {
	Svc          booking.BookingService
	Availability availability.AvailabilityService
	Gate         auth.AccessGate
	Logger       *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, availabilitySvc availability.AvailabilityService, gate auth.AccessGate, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Availability: availabilitySvc, Gate: gate, Logger: logger}
}

// CreateBooking arbitrates a candidate booking. A conflict is a domain-level
// rejection: HTTP 200 with acknowledged=false and a message.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Svc.Book(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("Failed to commit booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit booking"})
		return
	}

	if result.Acknowledged {
		h.Availability.InvalidateDate(c.Request.Context(), input.AppointmentDate)
	}
	c.JSON(http.StatusOK, result)
}

// GetBookings returns the caller's own bookings. The decoded identity must
// match the queried email.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")

	decodedEmail, ok := middleware.AuthEmail(c)
	if !ok || !h.Gate.IsOwner(decodedEmail, email) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	bookings, err := h.Svc.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
