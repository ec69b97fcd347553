package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/services"
)

// KontingentHandler handles membership-fee tracking endpoints
type KontingentHandler struct {
	kontingentService *services.KontingentService
}

// NewKontingentHandler creates a new kontingent handler
func NewKontingentHandler(kontingentService *services.KontingentService) *KontingentHandler {
	return &KontingentHandler{kontingentService: kontingentService}
}

// KontingentRequest records one member's payment state for one month
type KontingentRequest struct {
	MemberID int      `json:"member_id" binding:"required"`
	Month    string   `json:"month" binding:"required"`
	Paid     bool     `json:"paid"`
	Amount   *float64 `json:"amount"`
	Notes    *string  `json:"notes"`
}

// HandleMonthStatus handles GET /api/kontingent/:month - every active
// member with their payment state for that month
func (h *KontingentHandler) HandleMonthStatus(c *gin.Context) {
	statuses, err := h.kontingentService.MonthStatus(c.Request.Context(), c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// HandleUpsert handles POST /api/kontingent - idempotent per (member, month)
func (h *KontingentHandler) HandleUpsert(c *gin.Context) {
	var req KontingentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member_id and month are required"})
		return
	}

	payment, err := h.kontingentService.Upsert(c.Request.Context(), middleware.ActorFromContext(c), services.KontingentInput{
		MemberID: req.MemberID,
		Month:    req.Month,
		Paid:     req.Paid,
		Amount:   req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
