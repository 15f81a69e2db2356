package repository

import (
	"context"

	"sellapp/internal/domain/entity"
)

type CardStatusRepository interface {
	// GetByID returns a NOT_FOUND application error when the card record
	// does not exist.
	GetByID(ctx context.Context, userID, cardID string) (*entity.CardStatus, error)
	// SavePurchase merge-writes the post-charge state of the card. It
	// creates the document if necessary and leaves card_onSale and any
	// other existing fields untouched.
	SavePurchase(ctx context.Context, userID, cardID string, status *entity.CardStatus) error
	// SetOnSale flips the card_onSale flag on an existing document. It
	// fails against a document that does not exist.
	SetOnSale(ctx context.Context, userID, cardID string, onSale bool) error
	// FinalizeSale clears card_onSale and writes the new sales count in a
	// single merge.
	FinalizeSale(ctx context.Context, userID, cardID string, newSales int64) error
}
