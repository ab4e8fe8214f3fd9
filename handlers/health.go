package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func Health(c *gin.Context) {
	okMessage(c, "Server is running")
}

// Ready pings the document store with a short deadline.
func Ready(p Pinger, storage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "storage": storage, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "storage": storage})
	}
}
