package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/ratelimit"
)

// windowed limiters advertise how long a client should back off.
type windowed interface {
	Window() time.Duration
}

// RateLimit throttles by client IP under scope. A failing limiter lets the
// request through.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if !ok {
			if w, isWindowed := limiter.(windowed); isWindowed {
				c.Header("Retry-After", strconv.Itoa(int(w.Window().Seconds())))
			}
			httperr.TooManyRequests(c, "rate_limited", "Too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
