package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/services"
)

// SMSHandler handles SMS campaign endpoints
type SMSHandler struct {
	smsService *services.SMSService
}

// NewSMSHandler creates a new SMS handler
func NewSMSHandler(smsService *services.SMSService) *SMSHandler {
	return &SMSHandler{smsService: smsService}
}

// SendSMSRequest is the campaign send payload
type SendSMSRequest struct {
	MemberIDs []int  `json:"member_ids" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// HandleSend handles POST /api/sms/send. Partial failures still return 200
// with per-recipient outcomes.
func (h *SMSHandler) HandleSend(c *gin.Context) {
	var req SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member_ids and message are required"})
		return
	}

	result, err := h.smsService.Send(c.Request.Context(), middleware.ActorFromContext(c), req.MemberIDs, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleHistory handles GET /api/sms/history?limit=&offset=
func (h *SMSHandler) HandleHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.smsService.History(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// HandleStats handles GET /api/sms/stats
func (h *SMSHandler) HandleStats(c *gin.Context) {
	stats, err := h.smsService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
