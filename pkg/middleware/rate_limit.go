package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/pkg/metrics"
	"golang.org/x/time/rate"
)

const rateLimitMessage = "Too many requests from this IP, please try again later"

// limiterStore holds one token bucket per key and forgets idle keys.
type limiterStore struct {
	mu       sync.Mutex
	rps      float64
	burst    int
	idle     time.Duration
	limiters map[string]*entry
	lastGC   time.Time
}

type entry struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLimiterStore(rps float64, burst int) *limiterStore {
	idle := 10 * time.Minute
	if rps > 0 {
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return &limiterStore{rps: rps, burst: burst, idle: idle, limiters: map[string]*entry{}, lastGC: time.Now()}
}

// get returns (and lazily creates) the limiter for key
func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastGC) > s.idle {
		for k, e := range s.limiters {
			if now.Sub(e.seen) > s.idle {
				delete(s.limiters, k)
			}
		}
		s.lastGC = now
	}
	e, ok := s.limiters[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.limiters[key] = e
	}
	e.seen = now
	return e.lim
}

// rateKey is the client IP. The API limiter runs ahead of route auth, so no
// principal is known yet.
func rateKey(c *gin.Context, prefix string) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return prefix + "ip:" + ip
}

// RateLimitMiddleware enforces an in-memory token bucket per key.
// rps = allowed events per second, burst = maximum tokens in bucket.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	store := newLimiterStore(rps, burst)
	return func(c *gin.Context) {
		lim := store.get(rateKey(c, ""), time.Now())
		if !lim.Allow() {
			retry := 1
			if rps > 0 {
				retry = int(1/rps) + 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "message": rateLimitMessage})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}
