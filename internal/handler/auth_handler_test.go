package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/handler"
	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository/memory"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := memory.New()
	log := zap.NewNop().Sugar()
	issuer := token.NewIssuer("test-secret", time.Hour)
	verifier := token.NewVerifier("test-secret")

	authSvc := service.NewAuthService(db.Users(), issuer)
	listingSvc := service.NewListingService(db.Listings(), db.Reviews(), log)
	reviewSvc := service.NewReviewService(db.Reviews(), db.Listings(), log)

	router := gin.New()
	api := router.Group("/api")
	(&handler.AuthHandler{
		Auth:         authSvc,
		Verifier:     verifier,
		Log:          log,
		CookieMaxAge: 3600,
		CookieSecure: false,
	}).RegisterRoutes(api)
	(&handler.ListingHandler{
		Listings: listingSvc,
		Reviews:  reviewSvc,
		Verifier: verifier,
		Log:      log,
	}).RegisterRoutes(api)
	return router
}

func doJSON(router *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupResponseOmitsPassword(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/signup",
		`{"username":"priya","email":"priya@example.com","password":"secret1","role":"student"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "priya", user["username"])
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestSignupDuplicateIs409(t *testing.T) {
	router := newTestRouter(t)
	payload := `{"username":"priya","email":"priya@example.com","password":"secret1","role":"student"}`

	w := doJSON(router, http.MethodPost, "/api/auth/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/signup", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestSignInSetsSessionCookie(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/signup",
		`{"username":"priya","email":"priya@example.com","password":"secret1","role":"student"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/signin",
		`{"username":"priya","password":"wrongpass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	w = doJSON(router, http.MethodPost, "/api/auth/signin",
		`{"username":"priya","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// The cookie is the session: /auth/me works with it, not without.
	w = doJSON(router, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"priya"`)

	w = doJSON(router, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnauthenticatedMutationIs401NotFound(t *testing.T) {
	router := newTestRouter(t)

	// Without a session the caller learns nothing about whether the
	// target exists: 401, never 404.
	w := doJSON(router, http.MethodDelete, "/api/listings/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/listings/"+primitive.NewObjectID().Hex(), "",
		&http.Cookie{Name: middleware.CookieName, Value: "garbage-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
