package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	FirebaseProject   string
	Environment       string
	PaystackSecretKey string
	MerchantAuthCode  string
	MerchantName      string
	MerchantID        string
}

// ErrMissingPaystackKey aborts startup; every endpoint but /health is useless without it.
var ErrMissingPaystackKey = errors.New("PAYSTACK_SECRET_KEY is not set")

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "3001"),
		FirebaseProject:   getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:       getEnv("ENVIRONMENT", "development"),
		PaystackSecretKey: getEnv("PAYSTACK_SECRET_KEY", ""),
		MerchantAuthCode:  getEnv("MERCHANT_AUTH_CODE", ""),
		MerchantName:      getEnv("MERCHANT_NAME", "Sell App Merchant"),
		MerchantID:        getEnv("MERCHANT_ID", "app_owner_account"),
	}

	if config.PaystackSecretKey == "" {
		return nil, ErrMissingPaystackKey
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
