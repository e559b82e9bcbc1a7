package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// ListingHandler serves listing browse and CRUD.
type ListingHandler struct {
	Listings *service.ListingService
	Reviews  *service.ReviewService
	Verifier *token.Verifier
	Log      *zap.SugaredLogger
}

// RegisterRoutes mounts the listing endpoints. Browse is public; create,
// update and delete sit behind the session resolver.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings", h.List)
	rg.GET("/listings/:id", h.Get)

	protected := rg.Group("/", middleware.RequireAuth(h.Verifier))
	protected.GET("/listings/mine", h.ListMine)
	protected.POST("/listings", h.Create)
	protected.PUT("/listings/:id", h.Update)
	protected.DELETE("/listings/:id", h.Delete)
}

// GET /api/listings?listingType=...&gender=...&minRent=...&maxRent=...&limit=...&offset=...
func (h *ListingHandler) List(c *gin.Context) {
	f := repository.ListingFilter{
		ListingType: c.Query("listingType"),
		Gender:      c.Query("gender"),
		MinRent:     floatQuery(c, "minRent"),
		MaxRent:     floatQuery(c, "maxRent"),
		Limit:       intQuery(c, "limit", 20),
		Offset:      intQuery(c, "offset", 0),
	}

	list, err := h.Listings.List(c.Request.Context(), f)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"listings": list})
}

// GET /api/listings/:id also returns the listing's reviews, newest first.
func (h *ListingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	listing, err := h.Listings.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	reviews, err := h.Reviews.ListForListing(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"listing": listing, "reviews": reviews})
}

// GET /api/listings/mine
func (h *ListingHandler) ListMine(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	list, err := h.Listings.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"listings": list})
}

// ListingRequestDTO is the JSON payload for creating a listing.
type ListingRequestDTO struct {
	Title             string           `json:"title"`
	ListingType       string           `json:"listingType"`
	Gender            string           `json:"gender"`
	BHKType           string           `json:"bhkType"`
	BedsPerRoom       int              `json:"bedsPerRoom"`
	AvailableBeds     int              `json:"availableBeds"`
	Address           string           `json:"address"`
	Latitude          *float64         `json:"latitude"`
	Longitude         *float64         `json:"longitude"`
	DepositAmount     float64          `json:"depositAmount"`
	RentPerMonth      float64          `json:"rentPerMonth"`
	MaintenanceAmount float64          `json:"maintenanceAmount"`
	ElectricityBillBy string           `json:"electricityBillBy"`
	Furnishing        string           `json:"furnishing"`
	Description       string           `json:"description"`
	Amenities         model.AmenitySet `json:"amenitySet"`
	ImageURLs         []string         `json:"imageUrls"`
	Contact           model.Contact    `json:"contact"`
}

// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req ListingRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	listing, err := h.Listings.Create(c.Request.Context(), claims, service.CreateListingInput{
		Title:             req.Title,
		ListingType:       req.ListingType,
		Gender:            req.Gender,
		BHKType:           req.BHKType,
		BedsPerRoom:       req.BedsPerRoom,
		AvailableBeds:     req.AvailableBeds,
		Address:           req.Address,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		DepositAmount:     req.DepositAmount,
		RentPerMonth:      req.RentPerMonth,
		MaintenanceAmount: req.MaintenanceAmount,
		ElectricityBillBy: req.ElectricityBillBy,
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
	respond(c, http.StatusCreated, gin.H{"listing": listing})
}

// UpdateListingRequestDTO is a partial update payload; omitted fields are
// left unchanged.
type UpdateListingRequestDTO struct {
	Title             *string           `json:"title"`
	ListingType       *string           `json:"listingType"`
	Gender            *string           `json:"gender"`
	BHKType           *string           `json:"bhkType"`
	BedsPerRoom       *int              `json:"bedsPerRoom"`
	AvailableBeds     *int              `json:"availableBeds"`
	Address           *string           `json:"address"`
	Latitude          *float64          `json:"latitude"`
	Longitude         *float64          `json:"longitude"`
	DepositAmount     *float64          `json:"depositAmount"`
	RentPerMonth      *float64          `json:"rentPerMonth"`
	MaintenanceAmount *float64          `json:"maintenanceAmount"`
	ElectricityBillBy *string           `json:"electricityBillBy"`
	Furnishing        *string           `json:"furnishing"`
	Description       *string           `json:"description"`
	Amenities         *model.AmenitySet `json:"amenitySet"`
	ImageURLs         []string          `json:"imageUrls"`
	Contact           *model.Contact    `json:"contact"`
}

// PUT /api/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	var req UpdateListingRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	listing, err := h.Listings.Update(c.Request.Context(), claims.UserID, c.Param("id"), service.UpdateListingInput{
		Title:             req.Title,
		ListingType:       req.ListingType,
		Gender:            req.Gender,
		BHKType:           req.BHKType,
		BedsPerRoom:       req.BedsPerRoom,
		AvailableBeds:     req.AvailableBeds,
		Address:           req.Address,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		DepositAmount:     req.DepositAmount,
		RentPerMonth:      req.RentPerMonth,
		MaintenanceAmount: req.MaintenanceAmount,
		ElectricityBillBy: req.ElectricityBillBy,
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
	respond(c, http.StatusOK, gin.H{"listing": listing})
}

// DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	if err := h.Listings.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func floatQuery(c *gin.Context, key string) *float64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
