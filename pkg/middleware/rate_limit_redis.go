package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/seosites/seosites/backend/go-api/pkg/metrics"
)

// RedisRateLimitMiddleware is a fixed-window limiter shared by every API instance.
// Each key may make limit requests per window. Windows under a second are
// treated as one second.
func RedisRateLimitMiddleware(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if window < time.Second {
		window = time.Second
	}
	if client == nil {
		return RateLimitMiddleware(float64(limit)/window.Seconds(), limit)
	}
	windowSeconds := int64(window.Seconds())
	return func(c *gin.Context) {
		bucket := time.Now().Unix() / windowSeconds
		redisKey := fmt.Sprintf("%s:%d", rateKey(c, "rl:"), bucket)

		ctx := c.Request.Context()
		cnt, err := client.Incr(ctx, redisKey).Result()
		if err != nil {
			logger.Errorf("rate limit check failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Rate limit check failed"})
			return
		}
		if cnt == 1 {
			_ = client.Expire(ctx, redisKey, time.Duration(windowSeconds+1)*time.Second).Err()
		}
		if cnt > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", windowSeconds-time.Now().Unix()%windowSeconds))
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "message": rateLimitMessage})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		c.Next()
	}
}
