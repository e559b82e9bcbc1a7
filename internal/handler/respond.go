package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
)

// respond writes the success envelope: {"success": true, ...data}.
func respond(c *gin.Context, status int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail maps an error to its taxonomy status and writes the failure
// envelope. Unexpected errors are logged and surfaced as a generic 500;
// internals are never leaked to the client.
func fail(c *gin.Context, log *zap.SugaredLogger, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrUploadFailed):
		msg = "image upload failed"
	default:
		log.Errorw("unexpected error", "path", c.Request.URL.Path, "err", err)
		msg = "internal server error"
	}
	c.JSON(status, gin.H{"success": false, "error": msg})
}
