package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/services"
)

// BaptismHandler handles baptism record endpoints
type BaptismHandler struct {
	baptismService *services.BaptismService
}

// NewBaptismHandler creates a new baptism handler
func NewBaptismHandler(baptismService *services.BaptismService) *BaptismHandler {
	return &BaptismHandler{baptismService: baptismService}
}

// BaptismRequest is the create/update payload for a baptism record
type BaptismRequest struct {
	EventDate          *time.Time `json:"event_date"`
	ChildBaptismName   string     `json:"child_baptism_name"`
	ChildCallName      *string    `json:"child_call_name"`
	FatherName         *string    `json:"father_name"`
	MotherName         *string    `json:"mother_name"`
	ParentsNationality *string    `json:"parents_nationality"`
	ChildBirthDate     *time.Time `json:"child_birth_date"`
	ChildBaptismDate   *time.Time `json:"child_baptism_date"`
	GodparentName      *string    `json:"godparent_name"`
	BaptismChurch      *string    `json:"baptism_church"`
	PriestName         *string    `json:"priest_name"`
	Notes              *string    `json:"notes"`
	IsActive           *bool      `json:"is_active"`
}

func (r BaptismRequest) toInput() services.BaptismInput {
	return services.BaptismInput{
		EventDate:          r.EventDate,
		ChildBaptismName:   r.ChildBaptismName,
		ChildCallName:      r.ChildCallName,
		FatherName:         r.FatherName,
		MotherName:         r.MotherName,
		ParentsNationality: r.ParentsNationality,
		ChildBirthDate:     r.ChildBirthDate,
		ChildBaptismDate:   r.ChildBaptismDate,
		GodparentName:      r.GodparentName,
		BaptismChurch:      r.BaptismChurch,
		PriestName:         r.PriestName,
		Notes:              r.Notes,
		IsActive:           r.IsActive,
	}
}

// HandleList handles GET /api/baptism?active=true
func (h *BaptismHandler) HandleList(c *gin.Context) {
	var active *bool
	if v := c.Query("active"); v != "" {
		b := v == "true"
		active = &b
	}

	records, err := h.baptismService.List(c.Request.Context(), active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// HandleGet handles GET /api/baptism/:id
func (h *BaptismHandler) HandleGet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	record, err := h.baptismService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// HandleCreate handles POST /api/baptism
func (h *BaptismHandler) HandleCreate(c *gin.Context) {
	var req BaptismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.baptismService.Create(c.Request.Context(), middleware.ActorFromContext(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// HandleUpdate handles PUT /api/baptism/:id
func (h *BaptismHandler) HandleUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var req BaptismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.baptismService.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// HandleDelete handles DELETE /api/baptism/:id - soft delete
func (h *BaptismHandler) HandleDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	if err := h.baptismService.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "baptism record deactivated"})
}
