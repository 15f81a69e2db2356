package router

import (
	"sellapp/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupPaymentRouter(e, rateLimitMiddleware)
	SetupCardRouter(e, rateLimitMiddleware)
	SetupHealthRouter(e)
}
