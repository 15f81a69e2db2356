package router

import (
	"sellapp/internal/adapter/api/handler"
	"sellapp/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	paymentGroup := e.Group("/api")
	paymentGroup.Use(rateLimitMiddleware.Limit)

	paymentGroup.POST("/verify-payment", paymentHandler.VerifyPayment) // POST /api/verify-payment - Verify card-saving transaction
	paymentGroup.POST("/charge-card", paymentHandler.ChargeCard)       // POST /api/charge-card - Charge a saved card
}
