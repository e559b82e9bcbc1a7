package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// RoommateHandler serves the roommate board.
type RoommateHandler struct {
	Roommates *service.RoommateService
	Verifier  *token.Verifier
	Log       *zap.SugaredLogger
}

// RegisterRoutes mounts the roommate-board endpoints.
func (h *RoommateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roommates", h.List)
	rg.GET("/roommates/:id", h.Get)

	protected := rg.Group("/", middleware.RequireAuth(h.Verifier))
	protected.GET("/roommates/mine", h.ListMine)
	protected.POST("/roommates", h.Create)
	protected.PUT("/roommates/:id", h.Update)
	protected.DELETE("/roommates/:id", h.Delete)
}

// GET /api/roommates?gender=...&minRent=...&maxRent=...&limit=...&offset=...
func (h *RoommateHandler) List(c *gin.Context) {
	f := repository.RoommateFilter{
		Gender:  c.Query("gender"),
		MinRent: floatQuery(c, "minRent"),
		MaxRent: floatQuery(c, "maxRent"),
		Limit:   intQuery(c, "limit", 20),
		Offset:  intQuery(c, "offset", 0),
	}

	posts, err := h.Roommates.List(c.Request.Context(), f)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"roommatePosts": posts})
}

// GET /api/roommates/:id
func (h *RoommateHandler) Get(c *gin.Context) {
	post, err := h.Roommates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"roommatePost": post})
}

// GET /api/roommates/mine
func (h *RoommateHandler) ListMine(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	posts, err := h.Roommates.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"roommatePosts": posts})
}

// RoommateRequestDTO is the JSON payload for creating a roommate post.
type RoommateRequestDTO struct {
	Title             string           `json:"title"`
	Gender            string           `json:"gender"`
	Address           string           `json:"address"`
	Latitude          *float64         `json:"latitude"`
	Longitude         *float64         `json:"longitude"`
	DepositAmount     float64          `json:"depositAmount"`
	Rent              float64          `json:"rent"`
	MaintenanceAmount float64          `json:"maintenanceAmount"`
	Furnishing        string           `json:"furnishing"`
	Description       string           `json:"description"`
	Amenities         model.AmenitySet `json:"amenitySet"`
	ImageURLs         []string         `json:"imageUrls"`
	Contact           model.Contact    `json:"contact"`
}

// POST /api/roommates
func (h *RoommateHandler) Create(c *gin.Context) {
	var req RoommateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	post, err := h.Roommates.Create(c.Request.Context(), claims.UserID, service.CreateRoommateInput{
		Title:             req.Title,
		Gender:            req.Gender,
		Address:           req.Address,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		DepositAmount:     req.DepositAmount,
		Rent:              req.Rent,
		MaintenanceAmount: req.MaintenanceAmount,
		Furnishing:        req.Furnishing,
		Description:       req.Description,
		Amenities:         req.Amenities,
		ImageURLs:         req.ImageURLs,
		Contact:           req.Contact,
	})
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"roommatePost": post})
}

// UpdateRoommateRequestDTO is a partial update payload; omitted fields are
// left unchanged.
type UpdateRoommateRequestDTO struct {
	Title             *string           `json:"title"`
	Gender            *string           `json:"gender"`
	Address           *string           `json:"address"`
	Latitude          *float64          `json:"latitude"`
	Longitude         *float64          `json:"longitude"`
	DepositAmount     *float64          `json:"depositAmount"`
	Rent              *float64          `json:"rent"`
	MaintenanceAmount *float64          `json:"maintenanceAmount"`
	Furnishing        *string           `json:"furnishing"`
	Description       *string           `json:"description"`
	Amenities         *model.AmenitySet `json:"amenitySet"`
	ImageURLs         []string          `json:"imageUrls"`
	Contact           *model.Contact    `json:"contact"`
}

// PUT /api/roommates/:id
func (h *RoommateHandler) Update(c *gin.Context) {
	var req UpdateRoommateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	post, err := h.Roommates.Update(c.Request.Context(), claims.UserID, c.Param("id"), service.UpdateRoommateInput{
		Title:             req.Title,
		Gender:            req.Gender,
		Address:           req.Address,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		DepositAmount:     req.DepositAmount,
		Rent:              req.Rent,
		MaintenanceAmount: req.MaintenanceAmount,
		Furnishing:        req.Furnishing,
		Description:       req.Description,
		Amenities:         req.Amenities,
		ImageURLs:         req.ImageURLs,
		Contact:           req.Contact,
	})
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"roommatePost": post})
}

// DELETE /api/roommates/:id
func (h *RoommateHandler) Delete(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	if err := h.Roommates.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}
