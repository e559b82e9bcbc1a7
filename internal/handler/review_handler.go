package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// ReviewHandler serves listing reviews.
type ReviewHandler struct {
	Reviews  *service.ReviewService
	Verifier *token.Verifier
	Log      *zap.SugaredLogger
}

// RegisterRoutes mounts the review endpoints. Reading reviews is public;
// writing and deleting require a session.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings/:id/reviews", h.ListForListing)

	protected := rg.Group("/", middleware.RequireAuth(h.Verifier))
	protected.POST("/listings/:id/reviews", h.Create)
	protected.DELETE("/reviews/:id", h.Delete)
}

// GET /api/listings/:id/reviews
func (h *ReviewHandler) ListForListing(c *gin.Context) {
	reviews, err := h.Reviews.ListForListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"reviews": reviews})
}

// ReviewRequestDTO is the JSON payload for posting a review.
type ReviewRequestDTO struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// POST /api/listings/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req ReviewRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	rev, err := h.Reviews.Create(c.Request.Context(), claims.UserID, c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"review": rev})
}

// DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	if err := h.Reviews.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}
