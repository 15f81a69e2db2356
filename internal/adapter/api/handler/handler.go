package handler

import (
	"sellapp/internal/usecase"
)

var (
	paymentHandler *PaymentHandler
	cardHandler    *CardHandler
	healthHandler  *HealthHandler
)

func Setup(
	paymentUseCase *usecase.PaymentUseCase,
	cardSaleUseCase *usecase.CardSaleUseCase,
) {
	paymentHandler = NewPaymentHandler(paymentUseCase)
	cardHandler = NewCardHandler(cardSaleUseCase)
	healthHandler = NewHealthHandler()
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetCardHandler() *CardHandler {
	return cardHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
