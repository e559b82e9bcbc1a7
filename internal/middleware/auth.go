// Package middleware holds the gin middlewares: the session resolver that
// gates every protected route, and request logging.
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// CookieName is the session cookie the resolver reads.
const CookieName = "rentify_token"

const claimsKey = "claims"

// RequireAuth resolves the session from the request's cookie store. A
// missing cookie or any verification failure aborts with 401 before any
// resource is looked at, so unauthenticated callers learn nothing about
// whether a target exists. On success the claims snapshot is stored on the
// context for handlers.
func RequireAuth(verifier *token.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthenticated"})
			return
		}
		claims, err := verifier.Verify(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthenticated"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the session claims RequireAuth stored. Only valid
// behind RequireAuth.
func CurrentClaims(c *gin.Context) *token.Claims {
	v, _ := c.Get(claimsKey)
	claims, _ := v.(*token.Claims)
	return claims
}

// RequestLogger logs one line per request.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
