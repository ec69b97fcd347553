package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/services"
)

// AuthHandler handles admin login
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the admin login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HandleLogin handles POST /api/auth/login. Unknown users and wrong
// passwords both return the same 401 message.
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	admin, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateAdminToken(admin.ID, admin.Username, admin.IsSuperAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":             admin.ID,
			"username":       admin.Username,
			"full_name":      admin.FullName,
			"is_super_admin": admin.IsSuperAdmin,
		},
	})
}
