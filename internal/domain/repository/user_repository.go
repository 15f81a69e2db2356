package repository

import (
	"context"

	"sellapp/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	SavePaymentDetails(ctx context.Context, userID string, details *entity.PaymentDetails) error
}
