// Package handlers exposes the HTTP API over gin.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/seosites/seosites/backend/go-api/pkg/metrics"
)

// envelope is the shape of every JSON response.
type envelope struct {
	Success bool              `json:"success"`
	Count   *int              `json:"count,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func okList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	c.JSON(http.StatusOK, envelope{Success: true, Count: &n, Data: items})
}

func okMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: msg})
}

// fail records err for ErrorResponder and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorResponder writes the last handler error as {success:false, message}.
// Unclassified errors are logged and reported as "Server Error".
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperr.StatusCode(err)
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		resp := envelope{Success: false, Message: apperr.PublicMessage(err)}
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			resp.Errors = ve.Fields
		}
		c.JSON(status, resp)
	}
}

// NotFoundRoute answers unmatched paths.
func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, envelope{Success: false, Message: "Not found - " + c.Request.URL.Path})
}

// AccessLog logs one line per request and counts it.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		logger.Request(c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP())
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, strconv.Itoa(status)).Inc()
	}
}
