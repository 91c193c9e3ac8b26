package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds an in-memory per-IP rate limiting middleware from a
// formatted rate such as "5-M" (five per minute). Applied to the login route
// and the gateway webhook.
func NewRateLimiter(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		// A bad literal is a programming error; fall back to a permissive rate.
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	store := memory.NewStore()
	return limitergin.NewMiddleware(limiter.New(store, rate))
}
