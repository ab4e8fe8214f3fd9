package middleware

import (
	"net/http"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware_Basic(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 2, time.Hour))
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	require.Equal(t, http.StatusOK, hit(r, "/r").Code)
	require.Equal(t, http.StatusOK, hit(r, "/r").Code)

	w := hit(r, "/r")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))

	// the window key expires and the counter starts over
	m.FastForward(2 * time.Hour)
	require.Equal(t, http.StatusOK, hit(r, "/r").Code)
}

func TestRedisRateLimitMiddleware_SetsExpiry(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 5, time.Minute))
	r.GET("/r", func(c *gin.Context) { c.Status(200) })

	require.Equal(t, http.StatusOK, hit(r, "/r").Code)
	keys := m.Keys()
	require.Len(t, keys, 1)
	require.Greater(t, m.TTL(keys[0]), time.Duration(0))
}

func TestRedisRateLimitMiddleware_SubSecondWindow(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	for _, window := range []time.Duration{0, 500 * time.Millisecond} {
		r := gin.New()
		r.Use(RedisRateLimitMiddleware(client, 1, window))
		r.GET("/r", func(c *gin.Context) { c.Status(200) })

		m.FlushAll()
		require.NotPanics(t, func() { hit(r, "/r") }, window.String())
		keys := m.Keys()
		require.Len(t, keys, 1)
		require.LessOrEqual(t, m.TTL(keys[0]), 2*time.Second)
	}
}

func TestRedisRateLimitMiddleware_RedisDown(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	m.Close()

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 5, time.Minute))
	r.GET("/r", func(c *gin.Context) { c.Status(200) })
	require.Equal(t, http.StatusInternalServerError, hit(r, "/r").Code)
}
