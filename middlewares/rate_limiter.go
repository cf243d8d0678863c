package middlewares

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/utils"
	"golang.org/x/time/rate"
)

// StrictRateLimiter throttles credential endpoints per client IP so
// login/register cannot be brute-forced.
type StrictRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    time.Duration
	burst    int
}

func NewStrictRateLimiter() *StrictRateLimiter {
	return &StrictRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    time.Minute / 5, // 5 attempts per minute
		burst:    5,
	}
}

func (l *StrictRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(l.every), l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

func (l *StrictRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, errTooManyAttempts)
			c.Abort()
			return
		}
		c.Next()
	}
}

var errTooManyAttempts = errors.New("too many attempts, try again shortly")
