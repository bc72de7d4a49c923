package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"vitago/models"
	bookingSvc "vitago/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking lifecycle and selection endpoints.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

// bookingError maps service errors to HTTP responses. Slot conflicts and
// incomplete profiles get conflict semantics so clients can react to them.
func bookingError(c *gin.Context, logger *zap.Logger, err error) {
	var slotErr *bookingSvc.SlotUnavailableError
	if errors.As(err, &slotErr) {
		c.JSON(http.StatusConflict, gin.H{"error": slotErr.Error()})
		return
	}
	var incomplete *bookingSvc.IncompleteProfileError
	if errors.As(err, &incomplete) {
		c.JSON(http.StatusConflict, gin.H{
			"error":         incomplete.Error(),
			"missingFields": incomplete.Missing,
		})
		return
	}
	var transition *bookingSvc.InvalidTransitionError
	if errors.As(err, &transition) {
		c.JSON(http.StatusConflict, gin.H{"error": transition.Error()})
		return
	}
	logger.Error("Booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), clientID, req)
	if err != nil {
		bookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetClientBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) GetClientBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}
	bookings, err := h.Service.GetBookingsByClient(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to load client bookings", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetProviderBookingsHandler handles GET /api/bookings/provider.
func (h *BookingHandler) GetProviderBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	bookings, err := h.Service.GetBookingsByProvider(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Failed to load provider bookings", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// AcceptBookingHandler handles PUT /api/bookings/:id/accept. Acceptance is
// refused with the missing field list when the provider's onboarding
// profile is incomplete.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	b, err := h.Service.AcceptBooking(c.Request.Context(), providerID, c.Param("id"))
	if err != nil {
		bookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeclineBookingHandler handles PUT /api/bookings/:id/decline.
func (h *BookingHandler) DeclineBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	b, err := h.Service.DeclineBooking(c.Request.Context(), providerID, c.Param("id"))
	if err != nil {
		bookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}
	b, err := h.Service.CancelBooking(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		bookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBookingHandler handles PUT /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	b, err := h.Service.CompleteBooking(c.Request.Context(), providerID, c.Param("id"))
	if err != nil {
		bookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// MonthOptionsHandler handles GET /api/bookings/options/month. Query
// params: providerId, year, month, general.
func (h *BookingHandler) MonthOptionsHandler(c *gin.Context) {
	logger := getLogger(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}
	general := c.Query("general") == "true"
	providerID := c.Query("providerId")
	if providerID == "" && !general {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerId is required unless general=true"})
		return
	}

	out, err := h.Service.MonthOptions(c.Request.Context(), providerID, year, month, general)
	if err != nil {
		logger.Error("Failed to compute month options", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// TimeOptionsHandler handles GET /api/bookings/options/times. Query
// params: providerId, date, general.
func (h *BookingHandler) TimeOptionsHandler(c *gin.Context) {
	logger := getLogger(c)

	date := c.Query("date")
	general := c.Query("general") == "true"
	providerID := c.Query("providerId")
	if providerID == "" && !general {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerId is required unless general=true"})
		return
	}

	out, err := h.Service.TimeOptionsForDate(c.Request.Context(), providerID, date, general)
	if err != nil {
		logger.Error("Failed to compute time options", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
