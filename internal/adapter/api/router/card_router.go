package router

import (
	"sellapp/internal/adapter/api/handler"
	"sellapp/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCardRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	cardHandler := handler.GetCardHandler()

	cardGroup := e.Group("/api")
	cardGroup.Use(rateLimitMiddleware.Limit)

	cardGroup.POST("/list-card-for-sale", cardHandler.ListForSale) // POST /api/list-card-for-sale - Flag a card as listed
	cardGroup.POST("/cancel-sale", cardHandler.CancelSale)         // POST /api/cancel-sale - Remove the listing flag
	cardGroup.POST("/finalize-sale", cardHandler.FinalizeSale)     // POST /api/finalize-sale - Record a completed sale
}
