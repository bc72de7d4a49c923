package handlers

import (
	"net/http"

	"vitago/models"
	reportSvc "vitago/services/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler exposes post-service report endpoints.
type ReportHandler struct {
	Service reportSvc.ReportService
}

// FileClientReportHandler handles POST /api/reports/client. The caller is
// a client reporting on the provider of a completed booking.
func (h *ReportHandler) FileClientReportHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}

	var req reportSvc.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rep, err := h.Service.FileReport(c.Request.Context(), clientID, models.ReportDirectionClientToProvider, req)
	if err != nil {
		logger.Error("Failed to file report", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// FileProviderReportHandler handles POST /api/reports/provider.
func (h *ReportHandler) FileProviderReportHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := contextID(c, "providerID")
	if !ok {
		return
	}

	var req reportSvc.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rep, err := h.Service.FileReport(c.Request.Context(), providerID, models.ReportDirectionProviderToClient, req)
	if err != nil {
		logger.Error("Failed to file report", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// GetBookingReportsHandler handles GET /api/reports/booking/:id.
func (h *ReportHandler) GetBookingReportsHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("id")

	reports, err := h.Service.GetReportsByBooking(c.Request.Context(), bookingID)
	if err != nil {
		logger.Error("Failed to load reports", zap.String("bookingID", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GetProviderReportsHandler handles GET /api/reports/provider/:id.
func (h *ReportHandler) GetProviderReportsHandler(c *gin.Context) {
	logger := getLogger(c)
	providerID := c.Param("id")

	reports, err := h.Service.GetReportsByProvider(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Failed to load reports", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
