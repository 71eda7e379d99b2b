package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"omnispa/config"
	"omnispa/utils"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiters   = make(map[string]*clientLimiter)
	limitersMu sync.Mutex
)

// RateLimiter throttles requests per client IP using a token bucket sized
// from MAX_REQUESTS_PER_MIN. Idle entries are evicted by a background sweep.
func RateLimiter() gin.HandlerFunc {
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 120
	}
	limit := rate.Limit(float64(perMin) / 60.0)
	burst := perMin / 4
	if burst < 5 {
		burst = 5
	}

	go sweepIdleLimiters()

	return func(c *gin.Context) {
		ip := clientIP(c)

		limitersMu.Lock()
		entry, ok := limiters[ip]
		if !ok {
			entry = &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
			limiters[ip] = entry
		}
		entry.lastSeen = time.Now()
		limitersMu.Unlock()

		if !entry.limiter.Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "too many requests", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func sweepIdleLimiters() {
	for range time.Tick(5 * time.Minute) {
		limitersMu.Lock()
		for ip, entry := range limiters {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(limiters, ip)
			}
		}
		limitersMu.Unlock()
	}
}

func clientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err == nil {
			return host
		}
		return c.Request.RemoteAddr
	}
	return ip
}
