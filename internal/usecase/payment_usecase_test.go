package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sellapp/internal/domain/entity"
	"sellapp/internal/domain/service"
	apperrors "sellapp/pkg/errors"
)

type fakePaymentService struct {
	verifyResult *service.VerifyResult
	verifyErr    error
	chargeResult *service.ChargeResult
	chargeErr    error

	verifyCalls int
	chargeCalls int
	lastCharge  service.ChargeRequest
}

func (f *fakePaymentService) VerifyTransaction(ctx context.Context, reference string) (*service.VerifyResult, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verifyResult, nil
}

func (f *fakePaymentService) ChargeAuthorization(ctx context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	f.chargeCalls++
	f.lastCharge = req
	if f.chargeErr != nil {
		return nil, f.chargeErr
	}
	return f.chargeResult, nil
}

type fakeUserRepository struct {
	users     map[string]*entity.User
	saved     map[string]*entity.PaymentDetails
	saveCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users: make(map[string]*entity.User),
		saved: make(map[string]*entity.PaymentDetails),
	}
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepository) SavePaymentDetails(ctx context.Context, userID string, details *entity.PaymentDetails) error {
	f.saveCalls++
	f.saved[userID] = details
	return nil
}

type fakeCardStatusRepository struct {
	records map[string]*entity.CardStatus

	purchaseCalls int
	onSaleCalls   int
	finalizeCalls int
}

func newFakeCardStatusRepository() *fakeCardStatusRepository {
	return &fakeCardStatusRepository{
		records: make(map[string]*entity.CardStatus),
	}
}

func cardKey(userID, cardID string) string {
	return userID + "/" + cardID
}

func (f *fakeCardStatusRepository) GetByID(ctx context.Context, userID, cardID string) (*entity.CardStatus, error) {
	record, ok := f.records[cardKey(userID, cardID)]
	if !ok {
		return nil, apperrors.NotFound("Card status", nil)
	}
	copied := *record
	return &copied, nil
}

func (f *fakeCardStatusRepository) SavePurchase(ctx context.Context, userID, cardID string, status *entity.CardStatus) error {
	f.purchaseCalls++
	key := cardKey(userID, cardID)
	existing, ok := f.records[key]
	if !ok {
		existing = &entity.CardStatus{}
		f.records[key] = existing
	}
	// Merge semantics: card_onSale and unwritten fields stay as they were.
	existing.Active = status.Active
	existing.ActiveUntil = status.ActiveUntil
	existing.Sales = status.Sales
	existing.PrimarySeller = status.PrimarySeller
	existing.SecondarySeller = status.SecondarySeller
	if status.Title != "" {
		existing.Title = status.Title
	}
	return nil
}

func (f *fakeCardStatusRepository) SetOnSale(ctx context.Context, userID, cardID string, onSale bool) error {
	f.onSaleCalls++
	record, ok := f.records[cardKey(userID, cardID)]
	if !ok {
		return apperrors.Internal("Failed to update card listing", nil)
	}
	record.OnSale = onSale
	return nil
}

func (f *fakeCardStatusRepository) FinalizeSale(ctx context.Context, userID, cardID string, newSales int64) error {
	f.finalizeCalls++
	record, ok := f.records[cardKey(userID, cardID)]
	if !ok {
		record = &entity.CardStatus{}
		f.records[cardKey(userID, cardID)] = record
	}
	record.OnSale = false
	record.Sales = newSales
	return nil
}

var testMerchant = entity.MerchantIdentity{
	Name:              "Sell App Merchant",
	Identifier:        "app_owner_account",
	AuthorizationCode: "AUTH_merchant",
}

func newPaymentUseCase(ps *fakePaymentService, users *fakeUserRepository, cards *fakeCardStatusRepository) *PaymentUseCase {
	return NewPaymentUseCase(users, cards, ps, testMerchant)
}

func successAuthorization() service.Authorization {
	return service.Authorization{
		AuthorizationCode: "AUTH_abc123",
		Last4:             "4081",
		ExpMonth:          "12",
		ExpYear:           "2030",
		Brand:             "visa",
	}
}

func TestVerifyPaymentSavesCardDetails(t *testing.T) {
	ps := &fakePaymentService{
		verifyResult: &service.VerifyResult{
			Status:        "success",
			Authorization: successAuthorization(),
		},
	}
	users := newFakeUserRepository()
	uc := newPaymentUseCase(ps, users, newFakeCardStatusRepository())

	details, err := uc.VerifyPayment(context.Background(), "ref-1", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, ps.verifyCalls)
	assert.Equal(t, "AUTH_abc123", details.AuthorizationCode)
	assert.Equal(t, "4081", details.Last4)
	assert.Equal(t, details, users.saved["user-1"])
}

func TestVerifyPaymentProcessorRejection(t *testing.T) {
	ps := &fakePaymentService{
		verifyResult: &service.VerifyResult{Status: "failed"},
	}
	users := newFakeUserRepository()
	uc := newPaymentUseCase(ps, users, newFakeCardStatusRepository())

	_, err := uc.VerifyPayment(context.Background(), "ref-1", "user-1")

	assert.True(t, apperrors.Is(err, "PAYMENT_FAILED"))
	assert.Equal(t, 0, users.saveCalls)
}

func TestVerifyPaymentTransportError(t *testing.T) {
	// Verification failures stay generic; processor API errors can carry
	// key hints that must not reach the caller.
	ps := &fakePaymentService{
		verifyErr: &service.APIError{StatusCode: 502, Message: "Invalid key sk_live_secret"},
	}
	users := newFakeUserRepository()
	uc := newPaymentUseCase(ps, users, newFakeCardStatusRepository())

	_, err := uc.VerifyPayment(context.Background(), "ref-1", "user-1")

	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
	assert.Contains(t, err.Error(), "An error occurred during payment verification")
	assert.NotContains(t, err.Error(), "sk_live_secret")
	assert.Equal(t, 0, users.saveCalls)
}

func successfulCharge() *fakePaymentService {
	return &fakePaymentService{
		chargeResult: &service.ChargeResult{Status: "success", GatewayResponse: "Approved"},
	}
}

func TestChargeCardActivationWindows(t *testing.T) {
	cases := []struct {
		name  string
		card  string
		title string
		days  int
	}{
		{"known title", "card-1", "Kleepa", 20},
		{"longest window", "card-2", "Two Kleepa", 30},
		{"unknown title", "card-3", "Mystery", 10},
		{"title falls back to card id", "Pinkies", "", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cards := newFakeCardStatusRepository()
			uc := newPaymentUseCase(successfulCharge(), newFakeUserRepository(), cards)

			result, err := uc.ChargeCard(context.Background(), ChargeCardInput{
				UserID:            "user-1",
				CardID:            tc.card,
				Title:             tc.title,
				Email:             "buyer@example.com",
				Amount:            50000,
				AuthorizationCode: "AUTH_abc123",
			})

			assert.NoError(t, err)
			expected := time.Now().Add(time.Duration(tc.days) * 24 * time.Hour)
			assert.WithinDuration(t, expected, result.ActiveUntil, time.Minute)
		})
	}
}

func TestChargeCardPreservesSales(t *testing.T) {
	cards := newFakeCardStatusRepository()
	cards.records[cardKey("user-1", "card-1")] = &entity.CardStatus{
		Sales:  5,
		OnSale: true,
	}
	uc := newPaymentUseCase(successfulCharge(), newFakeUserRepository(), cards)

	result, err := uc.ChargeCard(context.Background(), ChargeCardInput{
		UserID:            "user-1",
		CardID:            "card-1",
		Title:             "Kleepa",
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_abc123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), result.Sales)

	record := cards.records[cardKey("user-1", "card-1")]
	assert.Equal(t, int64(5), record.Sales)
	assert.True(t, record.OnSale, "purchase must not disturb the listing flag")
	assert.True(t, record.Active)
}

func TestChargeCardProcessorRejection(t *testing.T) {
	ps := &fakePaymentService{
		chargeResult: &service.ChargeResult{Status: "failed", GatewayResponse: "Insufficient funds"},
	}
	cards := newFakeCardStatusRepository()
	uc := newPaymentUseCase(ps, newFakeUserRepository(), cards)

	_, err := uc.ChargeCard(context.Background(), ChargeCardInput{
		UserID:            "user-1",
		CardID:            "card-1",
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_abc123",
	})

	assert.True(t, apperrors.Is(err, "PAYMENT_FAILED"))
	assert.Contains(t, err.Error(), "Insufficient funds")
	assert.Equal(t, 0, cards.purchaseCalls, "no writes after a rejected charge")
}

func TestChargeCardRejectionFallbackMessage(t *testing.T) {
	ps := &fakePaymentService{
		chargeResult: &service.ChargeResult{Status: "failed"},
	}
	uc := newPaymentUseCase(ps, newFakeUserRepository(), newFakeCardStatusRepository())

	_, err := uc.ChargeCard(context.Background(), ChargeCardInput{
		UserID:            "user-1",
		CardID:            "card-1",
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_abc123",
	})

	assert.Contains(t, err.Error(), "Payment failed")
}

func TestChargeCardRecordsSellers(t *testing.T) {
	users := newFakeUserRepository()
	users.users["user-1"] = &entity.User{
		ID: "user-1",
		PaymentDetails: &entity.PaymentDetails{
			AuthorizationCode: "AUTH_buyer",
			Last4:             "1234",
		},
	}
	cards := newFakeCardStatusRepository()
	uc := newPaymentUseCase(successfulCharge(), users, cards)

	result, err := uc.ChargeCard(context.Background(), ChargeCardInput{
		UserID:            "user-1",
		CardID:            "card-1",
		Title:             "Pinkies",
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_buyer",
	})

	assert.NoError(t, err)
	assert.Equal(t, testMerchant, *result.Card.PrimarySeller)
	assert.Equal(t, "AUTH_buyer", result.Card.SecondarySeller.AuthorizationCode)
}

func TestChargeCardBuyerWithoutUserDocument(t *testing.T) {
	cards := newFakeCardStatusRepository()
	uc := newPaymentUseCase(successfulCharge(), newFakeUserRepository(), cards)

	result, err := uc.ChargeCard(context.Background(), ChargeCardInput{
		UserID:            "ghost",
		CardID:            "card-1",
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_abc123",
	})

	assert.NoError(t, err)
	assert.Nil(t, result.Card.SecondarySeller)
	assert.Equal(t, 1, cards.purchaseCalls)
}

func TestChargeCardSendsMetadata(t *testing.T) {
	ps := successfulCharge()
	uc := newPaymentUseCase(ps, newFakeUserRepository(), newFakeCardStatusRepository())

	_, err := uc.ChargeCard(context.Background(), ChargeCardInput{
		UserID:            "user-1",
		CardID:            "card-1",
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_abc123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", ps.lastCharge.Metadata.UserID)
	assert.Equal(t, "card-1", ps.lastCharge.Metadata.CardID)
	assert.Equal(t, int64(50000), ps.lastCharge.Amount)
}
