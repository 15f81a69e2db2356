package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService(srv *httptest.Server) *PaystackPaymentService {
	return &PaystackPaymentService{
		secretKey: "sk_test_abc",
		baseURL:   srv.URL,
		client:    srv.Client(),
	}
}

func TestVerifyTransactionParsesAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/ref-1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"gateway_response": "Successful",
				"authorization": {
					"authorization_code": "AUTH_abc123",
					"last4": "4081",
					"exp_month": "12",
					"exp_year": "2030",
					"brand": "visa"
				}
			}
		}`))
	}))
	defer srv.Close()

	result, err := newTestService(srv).VerifyTransaction(context.Background(), "ref-1")

	assert.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "AUTH_abc123", result.Authorization.AuthorizationCode)
	assert.Equal(t, "visa", result.Authorization.Brand)
}

func TestChargeAuthorizationSendsStoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/charge_authorization", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "buyer@example.com", body["email"])
		assert.Equal(t, "AUTH_abc123", body["authorization_code"])
		metadata := body["metadata"].(map[string]interface{})
		assert.Equal(t, "user-1", metadata["userId"])
		assert.Equal(t, "card-1", metadata["cardId"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Charge attempted",
			"data": {"status": "success", "gateway_response": "Approved"}
		}`))
	}))
	defer srv.Close()

	result, err := newTestService(srv).ChargeAuthorization(context.Background(), ChargeRequest{
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_abc123",
		Metadata:          ChargeMetadata{UserID: "user-1", CardID: "card-1"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "Approved", result.GatewayResponse)
}

func TestChargeAuthorizationDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Charge attempted",
			"data": {"status": "failed", "gateway_response": "Insufficient funds"}
		}`))
	}))
	defer srv.Close()

	result, err := newTestService(srv).ChargeAuthorization(context.Background(), ChargeRequest{
		Email:             "buyer@example.com",
		Amount:            50000,
		AuthorizationCode: "AUTH_abc123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "Insufficient funds", result.GatewayResponse)
}

func TestAPIErrorCarriesProcessorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer srv.Close()

	_, err := newTestService(srv).VerifyTransaction(context.Background(), "ref-1")

	assert.Error(t, err)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid key", apiErr.Message)
}
