// Package handler ties HTTP requests to the services and maps errors to
// the response envelope.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// AuthHandler serves signup, signin, logout, me and password change.
type AuthHandler struct {
	Auth         *service.AuthService
	Verifier     *token.Verifier
	Log          *zap.SugaredLogger
	CookieMaxAge int
	CookieSecure bool
}

// RegisterRoutes mounts the auth endpoints.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.Signup)
	rg.POST("/auth/signin", h.SignIn)
	rg.POST("/auth/logout", h.Logout)

	protected := rg.Group("/", middleware.RequireAuth(h.Verifier))
	protected.GET("/auth/me", h.Me)
	protected.PUT("/auth/password", h.ChangePassword)
}

// SignupRequestDTO is the JSON payload for account creation.
type SignupRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	u, err := h.Auth.Signup(c.Request.Context(), service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"user": u})
}

// SignInRequestDTO is the JSON payload for signing in.
type SignInRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	u, tok, err := h.Auth.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, h.Log, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, tok, h.CookieMaxAge, "/", "", h.CookieSecure, true)
	respond(c, http.StatusOK, gin.H{"user": u})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.CookieSecure, true)
	respond(c, http.StatusOK, gin.H{})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	u, err := h.Auth.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"user": u})
}

// ChangePasswordRequestDTO is the JSON payload for a password change.
type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// PUT /api/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	claims := middleware.CurrentClaims(c)
	if err := h.Auth.ChangePassword(c.Request.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, h.Log, err)
		return
	}
	respond(c, http.StatusOK, gin.H{})
}
