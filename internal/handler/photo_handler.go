package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// PhotoHandler serves image upload and download. Uploads require a
// session; download is public so listing pages can embed the URLs.
type PhotoHandler struct {
	Images   repository.ImageStore
	Verifier *token.Verifier
	Log      *zap.SugaredLogger
}

// RegisterRoutes mounts the photo endpoints.
func (h *PhotoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/photos/:id", h.Download)

	protected := rg.Group("/", middleware.RequireAuth(h.Verifier))
	protected.POST("/photos", h.Upload)
}

// POST /api/photos takes a multipart form with field "photo" and responds
// with the public URL callers place in imageUrls.
func (h *PhotoHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "photo file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "photo file is required"})
		return
	}
	defer file.Close()

	id, err := h.Images.Upload(c.Request.Context(), file, header.Filename)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"url": "/api/photos/" + id})
}

// GET /api/photos/:id
func (h *PhotoHandler) Download(c *gin.Context) {
	data, err := h.Images.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}
