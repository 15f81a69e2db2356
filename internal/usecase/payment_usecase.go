package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"sellapp/internal/domain/entity"
	"sellapp/internal/domain/repository"
	"sellapp/internal/domain/service"
	apperrors "sellapp/pkg/errors"
)

type PaymentUseCase struct {
	userRepo       repository.UserRepository
	cardStatusRepo repository.CardStatusRepository
	paymentService service.PaymentGatewayService
	merchant       entity.MerchantIdentity
}

func NewPaymentUseCase(
	userRepo repository.UserRepository,
	cardStatusRepo repository.CardStatusRepository,
	paymentService service.PaymentGatewayService,
	merchant entity.MerchantIdentity,
) *PaymentUseCase {
	return &PaymentUseCase{
		userRepo:       userRepo,
		cardStatusRepo: cardStatusRepo,
		paymentService: paymentService,
		merchant:       merchant,
	}
}

// VerifyPayment confirms the card-saving transaction with the processor and
// stores the returned authorization on the user document for future charges.
func (u *PaymentUseCase) VerifyPayment(ctx context.Context, reference, userID string) (*entity.PaymentDetails, error) {
	log.Printf("Verifying payment reference %s for user %s", reference, userID)

	result, err := u.paymentService.VerifyTransaction(ctx, reference)
	if err != nil {
		// Unlike the charge path, verification never echoes the
		// processor's wording back to the caller.
		log.Printf("Payment verification error for reference %s: %v", reference, err)
		return nil, apperrors.Internal("An error occurred during payment verification", err)
	}

	if result.Status != service.StatusSuccess {
		return nil, apperrors.PaymentFailed("Payment verification failed", nil)
	}

	details := &entity.PaymentDetails{
		AuthorizationCode: result.Authorization.AuthorizationCode,
		Last4:             result.Authorization.Last4,
		ExpMonth:          result.Authorization.ExpMonth,
		ExpYear:           result.Authorization.ExpYear,
		Brand:             result.Authorization.Brand,
	}

	if err := u.userRepo.SavePaymentDetails(ctx, userID, details); err != nil {
		return nil, err
	}

	return details, nil
}

type ChargeCardInput struct {
	UserID            string
	CardID            string
	Title             string
	Email             string
	Amount            int64
	AuthorizationCode string
}

type ChargeCardResult struct {
	ActiveUntil time.Time
	Sales       int64
	Card        *entity.CardStatus
}

// ChargeCard charges the stored authorization and reconciles the outcome into
// the card_status document. The steps are sequential and non-transactional;
// a failure mid-way leaves earlier writes in place.
func (u *PaymentUseCase) ChargeCard(ctx context.Context, input ChargeCardInput) (*ChargeCardResult, error) {
	log.Printf("Charging card %s for user %s, amount %d", input.CardID, input.UserID, input.Amount)

	charge, err := u.paymentService.ChargeAuthorization(ctx, service.ChargeRequest{
		Email:             input.Email,
		Amount:            input.Amount,
		AuthorizationCode: input.AuthorizationCode,
		Metadata: service.ChargeMetadata{
			UserID: input.UserID,
			CardID: input.CardID,
		},
	})
	if err != nil {
		return nil, mapPaymentError(err, "An error occurred while charging the card")
	}

	if charge.Status != service.StatusSuccess {
		message := charge.GatewayResponse
		if message == "" {
			message = "Payment failed"
		}
		return nil, apperrors.PaymentFailed(message, nil)
	}

	// The activation window is keyed by the card's title; documents created
	// before titles existed are keyed by the card id itself.
	lookupKey := input.Title
	if lookupKey == "" {
		lookupKey = input.CardID
	}
	activeUntil := time.Now().Add(entity.ActivePeriod(lookupKey))

	// Read-then-merge: preserves the counter but is not atomic, so two
	// concurrent charges on the same card can under-count.
	currentSales, err := u.currentSales(ctx, input.UserID, input.CardID)
	if err != nil {
		return nil, err
	}

	buyerDetails, err := u.buyerPaymentDetails(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	merchant := u.merchant
	cardStatus := &entity.CardStatus{
		Active:          true,
		ActiveUntil:     activeUntil,
		Sales:           currentSales,
		Title:           input.Title,
		PrimarySeller:   &merchant,
		SecondarySeller: buyerDetails,
	}

	if err := u.cardStatusRepo.SavePurchase(ctx, input.UserID, input.CardID, cardStatus); err != nil {
		return nil, err
	}

	return &ChargeCardResult{
		ActiveUntil: activeUntil,
		Sales:       currentSales,
		Card:        cardStatus,
	}, nil
}

func (u *PaymentUseCase) currentSales(ctx context.Context, userID, cardID string) (int64, error) {
	existing, err := u.cardStatusRepo.GetByID(ctx, userID, cardID)
	if err != nil {
		if apperrors.Is(err, "NOT_FOUND") {
			return 0, nil
		}
		return 0, err
	}
	return existing.Sales, nil
}

func (u *PaymentUseCase) buyerPaymentDetails(ctx context.Context, userID string) (*entity.PaymentDetails, error) {
	buyer, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		// A buyer without a user document simply has no saved card.
		if apperrors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		return nil, err
	}
	return buyer.PaymentDetails, nil
}

// mapPaymentError surfaces the processor's own message when it reported one,
// falling back to generic wording for transport-level failures.
func mapPaymentError(err error, fallback string) error {
	var apiErr *service.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apperrors.Internal(apiErr.Message, err)
	}
	return apperrors.Internal(fallback, err)
}
