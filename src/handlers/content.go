package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/services"
)

// ContentHandler handles the authenticated content management endpoints:
// church info, news, events and the photo gallery.
type ContentHandler struct {
	churchService *services.ChurchService
	newsService   *services.NewsService
	eventService  *services.EventService
	photoService  *services.PhotoService
	uploadService *services.UploadService
}

// NewContentHandler creates a new content management handler
func NewContentHandler(
	churchService *services.ChurchService,
	newsService *services.NewsService,
	eventService *services.EventService,
	photoService *services.PhotoService,
	uploadService *services.UploadService,
) *ContentHandler {
	return &ContentHandler{
		churchService: churchService,
		newsService:   newsService,
		eventService:  eventService,
		photoService:  photoService,
		uploadService: uploadService,
	}
}

// HandleUpdateChurchInfo handles PUT /api/church - upserts the singleton row
func (h *ContentHandler) HandleUpdateChurchInfo(c *gin.Context) {
	var req services.ChurchInfoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	info, err := h.churchService.Update(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// HandleUploadImage handles POST /api/upload - stores an image and returns
// its public URL, used for the church logo
func (h *ContentHandler) HandleUploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()

	url, err := h.uploadService.Save(file.Filename, file.Size, src)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// --- News ---

// HandleListNews handles GET /api/admin/news - all articles incl. drafts
func (h *ContentHandler) HandleListNews(c *gin.Context) {
	items, err := h.newsService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// HandleCreateNews handles POST /api/news
func (h *ContentHandler) HandleCreateNews(c *gin.Context) {
	var req services.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.newsService.Create(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// HandleUpdateNews handles PUT /api/news/:id
func (h *ContentHandler) HandleUpdateNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid news id"})
		return
	}

	var req services.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.newsService.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// HandleDeleteNews handles DELETE /api/news/:id
func (h *ContentHandler) HandleDeleteNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid news id"})
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "news article deleted"})
}

// --- Events ---

// HandleListEvents handles GET /api/admin/events - all events incl. drafts
func (h *ContentHandler) HandleListEvents(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// HandleCreateEvent handles POST /api/events
func (h *ContentHandler) HandleCreateEvent(c *gin.Context) {
	var req services.EventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// HandleUpdateEvent handles PUT /api/events/:id
func (h *ContentHandler) HandleUpdateEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req services.EventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// HandleDeleteEvent handles DELETE /api/events/:id
func (h *ContentHandler) HandleDeleteEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// --- Photos ---

// HandleListPhotos handles GET /api/admin/photos - all photos incl. unpublished
func (h *ContentHandler) HandleListPhotos(c *gin.Context) {
	photos, err := h.photoService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// HandleCreatePhoto handles POST /api/photos - multipart upload with
// optional metadata fields
func (h *ContentHandler) HandleCreatePhoto(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()

	url, err := h.uploadService.Save(file.Filename, file.Size, src)
	if err != nil {
		respondError(c, err)
		return
	}

	input := services.PhotoInput{}
	if v := c.PostForm("title"); v != "" {
		input.Title = &v
	}
	if v := c.PostForm("description"); v != "" {
		input.Description = &v
	}
	if v := c.PostForm("display_order"); v != "" {
		if order, err := strconv.Atoi(v); err == nil {
			input.DisplayOrder = &order
		}
	}
	if v := c.PostForm("is_published"); v != "" {
		published := v == "true"
		input.IsPublished = &published
	}

	photo, err := h.photoService.Create(c.Request.Context(), middleware.ActorFromContext(c), url, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// HandleUpdatePhoto handles PUT /api/photos/:id - metadata only
func (h *ContentHandler) HandleUpdatePhoto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	var req services.PhotoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	photo, err := h.photoService.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

// HandleDeletePhoto handles DELETE /api/photos/:id - removes the row and
// its backing file
func (h *ContentHandler) HandleDeletePhoto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo deleted"})
}
