package handler

import (
	"github.com/labstack/echo/v4"

	"sellapp/internal/usecase"
	"sellapp/pkg/errors"
	"sellapp/pkg/response"
)

type CardHandler struct {
	cardSaleUseCase *usecase.CardSaleUseCase
}

func NewCardHandler(cardSaleUseCase *usecase.CardSaleUseCase) *CardHandler {
	return &CardHandler{
		cardSaleUseCase: cardSaleUseCase,
	}
}

type cardListingRequest struct {
	UserID string `json:"userId" validate:"required"`
	CardID string `json:"cardId" validate:"required"`
}

type finalizeSaleRequest struct {
	SellerID string `json:"sellerId" validate:"required"`
	CardID   string `json:"cardId" validate:"required"`
}

func (h *CardHandler) ListForSale(c echo.Context) error {
	var req cardListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.cardSaleUseCase.ListForSale(c.Request().Context(), req.UserID, req.CardID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Card listed for sale",
	})
}

func (h *CardHandler) CancelSale(c echo.Context) error {
	var req cardListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.cardSaleUseCase.CancelSale(c.Request().Context(), req.UserID, req.CardID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Sale cancelled",
	})
}

func (h *CardHandler) FinalizeSale(c echo.Context) error {
	var req finalizeSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sales, err := h.cardSaleUseCase.FinalizeSale(c.Request().Context(), req.SellerID, req.CardID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Sale finalized",
		"sales":   sales,
	})
}
