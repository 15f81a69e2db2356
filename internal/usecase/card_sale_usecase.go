package usecase

import (
	"context"
	"log"

	"sellapp/internal/domain/repository"
)

type CardSaleUseCase struct {
	cardStatusRepo repository.CardStatusRepository
}

func NewCardSaleUseCase(cardStatusRepo repository.CardStatusRepository) *CardSaleUseCase {
	return &CardSaleUseCase{
		cardStatusRepo: cardStatusRepo,
	}
}

func (u *CardSaleUseCase) ListForSale(ctx context.Context, userID, cardID string) error {
	log.Printf("Listing card %s of user %s for sale", cardID, userID)

	return u.cardStatusRepo.SetOnSale(ctx, userID, cardID, true)
}

func (u *CardSaleUseCase) CancelSale(ctx context.Context, userID, cardID string) error {
	log.Printf("Cancelling sale of card %s of user %s", cardID, userID)

	return u.cardStatusRepo.SetOnSale(ctx, userID, cardID, false)
}

// FinalizeSale records a completed sale: the listing flag is cleared and the
// sales counter incremented from its current value. There is no guard against
// finalizing twice; the counter simply grows again.
func (u *CardSaleUseCase) FinalizeSale(ctx context.Context, sellerID, cardID string) (int64, error) {
	log.Printf("Finalizing sale of card %s of seller %s", cardID, sellerID)

	current, err := u.cardStatusRepo.GetByID(ctx, sellerID, cardID)
	if err != nil {
		return 0, err
	}

	newSales := current.Sales + 1
	if err := u.cardStatusRepo.FinalizeSale(ctx, sellerID, cardID, newSales); err != nil {
		return 0, err
	}

	return newSales, nil
}
