package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"sellapp/internal/usecase"
	"sellapp/pkg/errors"
	"sellapp/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type verifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

type chargeCardRequest struct {
	UserID            string `json:"userId" validate:"required"`
	CardID            string `json:"cardId" validate:"required"`
	Title             string `json:"cardTitle"`
	Email             string `json:"email" validate:"required,email"`
	Amount            int64  `json:"amount" validate:"required"`
	AuthorizationCode string `json:"authorization_code" validate:"required"`
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cardDetails, err := h.paymentUseCase.VerifyPayment(c.Request().Context(), req.Reference, req.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":     "Payment verified and card saved",
		"cardDetails": cardDetails,
	})
}

func (h *PaymentHandler) ChargeCard(c echo.Context) error {
	var req chargeCardRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.paymentUseCase.ChargeCard(c.Request().Context(), usecase.ChargeCardInput{
		UserID:            req.UserID,
		CardID:            req.CardID,
		Title:             req.Title,
		Email:             req.Email,
		Amount:            req.Amount,
		AuthorizationCode: req.AuthorizationCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":     "Card purchased successfully",
		"activeUntil": result.ActiveUntil.UTC().Format(time.RFC3339),
		"sales":       result.Sales,
		"updatedCard": result.Card,
	})
}
