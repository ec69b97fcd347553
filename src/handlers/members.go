package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/repositories"
	"github.com/debreiyesus/church-server/src/services"
)

// MemberHandler handles member management endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// MemberRequest is the create/update payload for a member
type MemberRequest struct {
	FullName      string     `json:"full_name"`
	PhoneNumber   string     `json:"phone_number"`
	Email         *string    `json:"email"`
	Personnummer  string     `json:"personnummer"`
	CardNumber    *string    `json:"card_number"`
	Address       *string    `json:"address"`
	PostalCode    *string    `json:"postal_code"`
	City          *string    `json:"city"`
	CardIssueDate *time.Time `json:"card_issue_date"`
	SMSConsent    *bool      `json:"sms_consent"`
	IsActive      *bool      `json:"is_active"`
	Notes         *string    `json:"notes"`
}

// HandleList handles GET /api/members?active=true&search=...
func (h *MemberHandler) HandleList(c *gin.Context) {
	filter := repositories.MemberFilter{
		Search: c.Query("search"),
	}
	if v := c.Query("active"); v != "" {
		active := v == "true"
		filter.Active = &active
	}

	members, err := h.memberService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// HandleGet handles GET /api/members/:id
func (h *MemberHandler) HandleGet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	member, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// HandleCreate handles POST /api/members
func (h *MemberHandler) HandleCreate(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), middleware.ActorFromContext(c), services.CreateMemberInput{
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Personnummer:  req.Personnummer,
		CardNumber:    req.CardNumber,
		Address:       req.Address,
		PostalCode:    req.PostalCode,
		City:          req.City,
		CardIssueDate: req.CardIssueDate,
		SMSConsent:    req.SMSConsent,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// HandleUpdate handles PUT /api/members/:id
func (h *MemberHandler) HandleUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), middleware.ActorFromContext(c), id, services.UpdateMemberInput{
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Personnummer:  req.Personnummer,
		CardNumber:    req.CardNumber,
		Address:       req.Address,
		PostalCode:    req.PostalCode,
		City:          req.City,
		CardIssueDate: req.CardIssueDate,
		SMSConsent:    req.SMSConsent,
		IsActive:      req.IsActive,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// HandleDelete handles DELETE /api/members/:id - soft delete
func (h *MemberHandler) HandleDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member deactivated"})
}
