package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"sellapp/internal/infrastructure/ratelimit"
	"sellapp/pkg/errors"
	"sellapp/pkg/logger"
	"sellapp/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles clients per IP and endpoint before any body parsing or
// external call happens.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()

		allowed, wait := m.limiter.Allow(ip, c.Path())
		if !allowed {
			logger.Warn("Rate limit exceeded for %s on %s (retry in %v)", ip, c.Path(), wait)
			return response.Error(c, errors.New(
				"TOO_MANY_REQUESTS",
				fmt.Sprintf("Too many requests, retry in %d seconds", int(wait.Seconds())+1),
				http.StatusTooManyRequests,
				nil,
			))
		}

		return next(c)
	}
}
