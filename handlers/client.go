package handlers

import (
	"net/http"

	"vitago/models"
	clientSvc "vitago/services/client"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes client account endpoints.
type ClientHandler struct {
	Service clientSvc.ClientService
}

// RegisterClientHandler handles POST /api/clients/register.
func (h *ClientHandler) RegisterClientHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid client registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.RegisterClient(c.Request.Context(), req)
	if err != nil {
		logger.Error("Client registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateClientHandler handles POST /api/clients/login.
func (h *ClientHandler) AuthenticateClientHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid client login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateClient(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("Client login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeClientAuthTokenHandler handles DELETE /api/clients/revoke.
func (h *ClientHandler) RevokeClientAuthTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}
	if err := h.Service.RevokeClientAuthToken(clientID); err != nil {
		logger.Error("Token revocation failed", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// GetClientHandler handles GET /api/clients/me.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}
	cl, err := h.Service.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Client not found", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

// UpdateClientHandler handles PATCH /api/clients/update.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Error("Invalid client update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cl, err := h.Service.UpdateClient(c.Request.Context(), clientID, updates)
	if err != nil {
		logger.Error("Client update failed", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cl)
}

// DeleteClientHandler handles DELETE /api/clients/delete.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID, ok := contextID(c, "clientID")
	if !ok {
		return
	}
	if err := h.Service.DeleteClient(clientID); err != nil {
		logger.Error("Client deletion failed", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
