package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Requests per minute for each route tier. Login and registration are
// kept tight to slow credential stuffing and signup abuse; AI routes
// are limited separately because each request costs provider quota.
const (
	rateLimitLogin    = 5
	rateLimitRegister = 3
	rateLimitAI       = 20
	rateLimitDefault  = 60
)

const visitorIdleTimeout = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter tracks one token bucket per client IP.
type ipRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	perMinute int
}

func newIPRateLimiter(perMinute int) *ipRateLimiter {
	rl := &ipRateLimiter{
		visitors:  make(map[string]*visitor),
		perMinute: perMinute,
	}
	go rl.cleanup()
	return rl
}

func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.perMinute)/60.0), rl.perMinute),
		}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *ipRateLimiter) cleanup() {
	for range time.Tick(time.Minute) {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorIdleTimeout {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// rateLimit returns middleware enforcing a per-IP requests-per-minute
// limit. The client IP honors X-Forwarded-For via echo's RealIP.
func rateLimit(perMinute int) echo.MiddlewareFunc {
	rl := newIPRateLimiter(perMinute)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}
			return next(c)
		}
	}
}
