package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// FavoriteHandler serves the two per-user favorite sets. Everything here
// requires a session.
type FavoriteHandler struct {
	Favorites *service.FavoriteService
	Verifier  *token.Verifier
	Log       *zap.SugaredLogger
}

// RegisterRoutes mounts the favorite endpoints.
func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	protected := rg.Group("/", middleware.RequireAuth(h.Verifier))
	protected.GET("/favorites", h.ListListings)
	protected.POST("/favorites", h.AddListing)
	protected.DELETE("/favorites", h.RemoveListing)
	protected.GET("/favoriteRoommates", h.ListRoommatePosts)
	protected.POST("/favoriteRoommates", h.AddRoommatePost)
	protected.DELETE("/favoriteRoommates", h.RemoveRoommatePost)
}

// FavoriteListingDTO names the listing to add or remove.
type FavoriteListingDTO struct {
	ListingID string `json:"listingId" binding:"required"`
}

// GET /api/favorites
func (h *FavoriteHandler) ListListings(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	listings, err := h.Favorites.ListListings(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"listings": listings})
}

// POST /api/favorites
func (h *FavoriteHandler) AddListing(c *gin.Context) {
	var req FavoriteListingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := h.Favorites.AddListing(c.Request.Context(), claims.UserID, req.ListingID); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}

// DELETE /api/favorites
func (h *FavoriteHandler) RemoveListing(c *gin.Context) {
	var req FavoriteListingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := h.Favorites.RemoveListing(c.Request.Context(), claims.UserID, req.ListingID); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}

// FavoriteRoommateDTO names the roommate post to add or remove.
type FavoriteRoommateDTO struct {
	RoommateID string `json:"roommateId" binding:"required"`
}

// GET /api/favoriteRoommates
func (h *FavoriteHandler) ListRoommatePosts(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	posts, err := h.Favorites.ListRoommatePosts(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"roommatePosts": posts})
}

// POST /api/favoriteRoommates
func (h *FavoriteHandler) AddRoommatePost(c *gin.Context) {
	var req FavoriteRoommateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := h.Favorites.AddRoommatePost(c.Request.Context(), claims.UserID, req.RoommateID); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}

// DELETE /api/favoriteRoommates
func (h *FavoriteHandler) RemoveRoommatePost(c *gin.Context) {
	var req FavoriteRoommateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := h.Favorites.RemoveRoommatePost(c.Request.Context(), claims.UserID, req.RoommateID); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}
