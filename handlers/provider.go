package handlers

import (
	"net/http"

	"vitago/models"
	providerSvc "vitago/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider account and availability endpoints.
type ProviderHandler struct {
	Service providerSvc.ProviderService
}

// RegisterProviderHandler handles POST /api/providers/register.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Provider
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid provider registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.RegisterProvider(c.Request.Context(), req)
	if err != nil {
		logger.Error("Provider registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateProviderHandler handles POST /api/providers/login.
func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid provider login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateProvider(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("Provider login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeProviderAuthTokenHandler handles DELETE /api/providers/revoke.
func (h *ProviderHandler) RevokeProviderAuthTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	if err := h.Service.RevokeProviderAuthToken(providerID); err != nil {
		logger.Error("Token revocation failed", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// GetProviderByIDHandler handles GET /api/providers/id/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	p, err := h.Service.GetProviderByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Provider not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProvidersHandler handles GET /api/providers. An optional "service"
// query narrows the listing to providers offering that service, pairing
// with the catalogue search.
func (h *ProviderHandler) GetProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	var providers []models.Provider
	var err error
	if service := c.Query("service"); service != "" {
		providers, err = h.Service.GetProvidersByServiceType(service)
	} else {
		providers, err = h.Service.GetAllProviders()
	}
	if err != nil {
		logger.Error("Failed to retrieve providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// UpdateProviderHandler handles PATCH /api/providers/update.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Error("Invalid provider update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Service.UpdateProvider(c.Request.Context(), providerID, updates)
	if err != nil {
		logger.Error("Provider update failed", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProviderHandler handles DELETE /api/providers/delete.
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	if err := h.Service.DeleteProvider(providerID); err != nil {
		logger.Error("Provider deletion failed", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}

// GetAvailabilityHandler handles GET /api/providers/availability.
func (h *ProviderHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	grid, err := h.Service.GetAvailability(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Failed to load availability", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": grid})
}

// UpdateAvailabilityHandler handles PUT /api/providers/availability. The
// payload is taken as-is and normalized, malformed values simply read as
// unavailable.
func (h *ProviderHandler) UpdateAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}

	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	grid, err := h.Service.UpdateAvailability(c.Request.Context(), providerID, raw)
	if err != nil {
		logger.Error("Availability update failed", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": grid})
}

// ToggleAvailabilityHandler handles PATCH /api/providers/availability/toggle.
func (h *ProviderHandler) ToggleAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}

	var req struct {
		Period string `json:"period" binding:"required"`
		Day    string `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid toggle request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	grid, err := h.Service.ToggleAvailabilitySlot(c.Request.Context(), providerID, models.Period(req.Period), req.Day)
	if err != nil {
		logger.Error("Availability toggle failed", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": grid})
}

// OnboardingStatusHandler handles GET /api/providers/onboarding-status.
func (h *ProviderHandler) OnboardingStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}
	status, err := h.Service.OnboardingStatus(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Failed to compute onboarding status", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
