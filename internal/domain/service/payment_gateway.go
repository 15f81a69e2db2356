package service

import (
	"context"
	"fmt"
)

// TransactionStatus values reported by the processor inside an otherwise
// successful HTTP response. Anything other than "success" is a rejection.
const StatusSuccess = "success"

// Authorization is the processor-issued token for a verified card.
type Authorization struct {
	AuthorizationCode string `json:"authorization_code"`
	Last4             string `json:"last4"`
	ExpMonth          string `json:"exp_month"`
	ExpYear           string `json:"exp_year"`
	Brand             string `json:"brand"`
}

// VerifyResult is the outcome of looking up a transaction by reference.
type VerifyResult struct {
	Status        string
	Authorization Authorization
}

// ChargeMetadata rides along on a charge for the processor's audit trail.
type ChargeMetadata struct {
	UserID string `json:"userId"`
	CardID string `json:"cardId"`
}

// ChargeRequest charges a previously stored authorization.
type ChargeRequest struct {
	Email             string
	Amount            int64
	AuthorizationCode string
	Metadata          ChargeMetadata
}

// ChargeResult carries the processor's verdict on a charge attempt.
type ChargeResult struct {
	Status          string
	GatewayResponse string
}

// APIError is a non-2xx reply from the processor's API, distinct from a
// processor-reported rejection embedded in a 2xx reply.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment API error (%d): %s", e.StatusCode, e.Message)
}

// PaymentGatewayService interface for payment operations
type PaymentGatewayService interface {
	VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error)
	ChargeAuthorization(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
