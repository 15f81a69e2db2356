package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// PaystackPaymentService - Real Paystack implementation using HTTP API
type PaystackPaymentService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewPaystackPaymentService(secretKey string) *PaystackPaymentService {
	return &PaystackPaymentService{
		secretKey: secretKey,
		baseURL:   "https://api.paystack.co",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// paystackEnvelope is the outer shape of every Paystack API response.
type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type paystackTransaction struct {
	Status          string        `json:"status"`
	GatewayResponse string        `json:"gateway_response"`
	Authorization   Authorization `json:"authorization"`
}

func (s *PaystackPaymentService) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	log.Printf("Verifying Paystack transaction: %s", reference)

	endpoint := s.baseURL + "/transaction/verify/" + url.PathEscape(reference)
	txn, err := s.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	log.Printf("Paystack verify result: reference=%s, status=%s", reference, txn.Status)

	return &VerifyResult{
		Status:        txn.Status,
		Authorization: txn.Authorization,
	}, nil
}

func (s *PaystackPaymentService) ChargeAuthorization(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	log.Printf("Charging stored authorization for user %s, amount %d", req.Metadata.UserID, req.Amount)

	body := map[string]interface{}{
		"email":              req.Email,
		"amount":             req.Amount,
		"authorization_code": req.AuthorizationCode,
		"metadata":           req.Metadata,
	}

	txn, err := s.do(ctx, http.MethodPost, s.baseURL+"/transaction/charge_authorization", body)
	if err != nil {
		return nil, err
	}

	log.Printf("Paystack charge result: user=%s, status=%s, gateway_response=%s",
		req.Metadata.UserID, txn.Status, txn.GatewayResponse)

	return &ChargeResult{
		Status:          txn.Status,
		GatewayResponse: txn.GatewayResponse,
	}, nil
}

func (s *PaystackPaymentService) do(ctx context.Context, method, endpoint string, payload interface{}) (*paystackTransaction, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	var envelope paystackEnvelope
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Paystack API error: status=%d, body=%s", resp.StatusCode, string(respBody))
		// Best effort: surface Paystack's own message when the body parses.
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Message != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "payment processor request failed"}
	}

	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	var txn paystackTransaction
	if err := json.Unmarshal(envelope.Data, &txn); err != nil {
		return nil, fmt.Errorf("failed to parse transaction data: %v", err)
	}

	return &txn, nil
}
