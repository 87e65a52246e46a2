package middleware

import (
	"time"

	"github.com/fadilmartias/cv-feedback/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter applies a per-IP sliding window. Zero values fall back to 50 requests per minute.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Message: "Muitas requisições, tente novamente em instantes",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
