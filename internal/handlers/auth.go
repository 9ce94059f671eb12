package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"futsalbook/internal/middleware"
	"futsalbook/internal/models"

	"github.com/gin-gonic/gin"
)

// Register - POST /api/register
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login - POST /api/login
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: sess.Token, User: sess.User})
}

// AdminLogin - POST /api/admin/login
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.services.Auth.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		slog.Warn("Admin login rejected", "email", req.Email, "client_ip", c.ClientIP())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: sess.Token})
}

// Logout - POST /api/logout
func (h *Handlers) Logout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	if err := h.services.Auth.Logout(c.Request.Context(), sess.Token); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// GetProfile - GET /api/profile
func (h *Handlers) GetProfile(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess.User == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// UpdateProfile - PUT /api/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	sess := middleware.SessionFromContext(c)
	user, err := h.services.Auth.UpdateProfile(c.Request.Context(), sess, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
