package repository

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sellapp/internal/domain/entity"
	"sellapp/internal/domain/repository"
	"sellapp/pkg/errors"
)

type firestoreCardStatusRepository struct {
	client *firestore.Client
}

func NewFirestoreCardStatusRepository(client *firestore.Client) repository.CardStatusRepository {
	return &firestoreCardStatusRepository{
		client: client,
	}
}

func (r *firestoreCardStatusRepository) doc(userID, cardID string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(userID).Collection("card_status").Doc(cardID)
}

func (r *firestoreCardStatusRepository) GetByID(ctx context.Context, userID, cardID string) (*entity.CardStatus, error) {
	doc, err := r.doc(userID, cardID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Card status", err)
		}
		return nil, errors.Internal("Failed to get card status", err)
	}

	var cardStatus entity.CardStatus
	if err := doc.DataTo(&cardStatus); err != nil {
		return nil, errors.Internal("Failed to parse card status data", err)
	}

	return &cardStatus, nil
}

func (r *firestoreCardStatusRepository) SavePurchase(ctx context.Context, userID, cardID string, cardStatus *entity.CardStatus) error {
	log.Printf("Saving purchase state for card %s of user %s", cardID, userID)

	// card_onSale is deliberately absent: a purchase must not disturb an
	// existing listing flag.
	data := map[string]interface{}{
		"card_status":      cardStatus.Active,
		"activeUntil":      cardStatus.ActiveUntil,
		"sales":            cardStatus.Sales,
		"primary_seller":   cardStatus.PrimarySeller,
		"secondary_seller": cardStatus.SecondarySeller,
	}
	if cardStatus.Title != "" {
		data["title"] = cardStatus.Title
	}

	_, err := r.doc(userID, cardID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to save card purchase", err)
	}

	return nil
}

func (r *firestoreCardStatusRepository) SetOnSale(ctx context.Context, userID, cardID string, onSale bool) error {
	log.Printf("Setting card_onSale=%t for card %s of user %s", onSale, cardID, userID)

	// Update fails when the document is missing; listing a card that was
	// never purchased is an operational error, not a 404.
	_, err := r.doc(userID, cardID).Update(ctx, []firestore.Update{
		{Path: "card_onSale", Value: onSale},
	})
	if err != nil {
		return errors.Internal("Failed to update card listing", err)
	}

	return nil
}

func (r *firestoreCardStatusRepository) FinalizeSale(ctx context.Context, userID, cardID string, newSales int64) error {
	log.Printf("Finalizing sale for card %s of user %s, sales=%d", cardID, userID, newSales)

	_, err := r.doc(userID, cardID).Set(ctx, map[string]interface{}{
		"card_onSale": false,
		"sales":       newSales,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to finalize sale", err)
	}

	return nil
}
