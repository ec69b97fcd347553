package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/services"
)

// PublicHandler serves the unauthenticated content endpoints
type PublicHandler struct {
	churchService *services.ChurchService
	newsService   *services.NewsService
	eventService  *services.EventService
	photoService  *services.PhotoService
}

// NewPublicHandler creates a new public content handler
func NewPublicHandler(
	churchService *services.ChurchService,
	newsService *services.NewsService,
	eventService *services.EventService,
	photoService *services.PhotoService,
) *PublicHandler {
	return &PublicHandler{
		churchService: churchService,
		newsService:   newsService,
		eventService:  eventService,
		photoService:  photoService,
	}
}

// HandleChurchInfo handles GET /api/church - 404 until the row exists
func (h *PublicHandler) HandleChurchInfo(c *gin.Context) {
	info, err := h.churchService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// HandleNews handles GET /api/news - latest published articles
func (h *PublicHandler) HandleNews(c *gin.Context) {
	items, err := h.newsService.ListPublished(c.Request.Context(), 10)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// HandleEvents handles GET /api/events - upcoming published events
func (h *PublicHandler) HandleEvents(c *gin.Context) {
	events, err := h.eventService.ListUpcoming(c.Request.Context(), 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// HandlePhotos handles GET /api/photos - published gallery photos
func (h *PublicHandler) HandlePhotos(c *gin.Context) {
	photos, err := h.photoService.ListPublished(c.Request.Context(), 50)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}
