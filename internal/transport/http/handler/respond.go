// Package handler translates HTTP requests into service calls and service
// errors back into status codes. Error bodies always carry an "error"
// message; validation failures add the full field-error list under
// "details".
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fittrack/internal/domain"
)

func abortError(c *gin.Context, l *zap.Logger, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if len(appErr.Details) > 0 {
			body["details"] = appErr.Details
		}
		c.AbortWithStatusJSON(appErr.Status, body)
		return
	}
	// Storage and engine failures: log the cause, expose nothing.
	l.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// pathID parses the :id segment. A malformed id behaves like an id that
// matches nothing.
func pathID(c *gin.Context, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return 0, false
	}
	return id, true
}

func abortBadJSON(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
