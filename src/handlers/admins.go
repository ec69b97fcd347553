package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/services"
)

// AdminHandler handles admin account management. All routes require
// super admin access.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin account handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateAdminRequest is the payload for a new admin account
type CreateAdminRequest struct {
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password" binding:"required"`
	FullName     *string `json:"full_name"`
	Email        *string `json:"email"`
	IsSuperAdmin bool    `json:"is_super_admin"`
}

// UpdateAdminRequest is the payload for updating an admin account
type UpdateAdminRequest struct {
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	FullName     *string `json:"full_name"`
	Email        *string `json:"email"`
	IsActive     *bool   `json:"is_active"`
	IsSuperAdmin *bool   `json:"is_super_admin"`
}

// HandleList handles GET /api/admins
func (h *AdminHandler) HandleList(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// HandleCreate handles POST /api/admins
func (h *AdminHandler) HandleCreate(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	admin, err := h.adminService.Create(c.Request.Context(), middleware.ActorFromContext(c), services.CreateAdminInput{
		Username:     req.Username,
		Password:     req.Password,
		FullName:     req.FullName,
		Email:        req.Email,
		IsSuperAdmin: req.IsSuperAdmin,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// HandleUpdate handles PUT /api/admins/:id
func (h *AdminHandler) HandleUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	admin, err := h.adminService.Update(c.Request.Context(), middleware.ActorFromContext(c), id, services.UpdateAdminInput{
		Username:     req.Username,
		Password:     req.Password,
		FullName:     req.FullName,
		Email:        req.Email,
		IsActive:     req.IsActive,
		IsSuperAdmin: req.IsSuperAdmin,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// HandleDelete handles DELETE /api/admins/:id - soft delete, self-delete
// and the last super admin are rejected
func (h *AdminHandler) HandleDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "admin deactivated"})
}
