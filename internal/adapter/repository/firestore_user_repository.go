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

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) SavePaymentDetails(ctx context.Context, userID string, details *entity.PaymentDetails) error {
	log.Printf("Saving payment details for user %s (card **** %s)", userID, details.Last4)

	// Merge so an existing user document keeps its other fields.
	_, err := r.client.Collection("users").Doc(userID).Set(ctx, map[string]interface{}{
		"payment_details": details,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to save payment details", err)
	}

	return nil
}
