package handlers

import (
	"net/http"

	"doctorportal/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the remaining-openings endpoint.
type AvailabilityHandler struct {
	Svc    availability.AvailabilityService
	Logger *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Logger: logger}
}

// GetAppointmentSlots returns remaining openings per treatment for the
// requested date. An unknown date simply matches no bookings.
func (h *AvailabilityHandler) GetAppointmentSlots(c *gin.Context) {
	date := c.Query("date")

	options, err := h.Svc.Resolve(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("Failed to resolve availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve availability"})
		return
	}

	c.JSON(http.StatusOK, options)
}
