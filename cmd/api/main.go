package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"sellapp/internal/adapter/api"
	"sellapp/internal/adapter/api/handler"
	apimiddleware "sellapp/internal/adapter/api/middleware"
	"sellapp/internal/adapter/api/router"
	"sellapp/internal/adapter/repository"
	"sellapp/internal/domain/entity"
	"sellapp/internal/domain/service"
	"sellapp/internal/infrastructure/ratelimit"
	"sellapp/internal/usecase"
	"sellapp/pkg/config"
	"sellapp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), file path as
	// fallback (local development), application default credentials last.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	cardStatusRepo := repository.NewFirestoreCardStatusRepository(firestoreClient)

	paymentService := service.NewPaystackPaymentService(cfg.PaystackSecretKey)

	// The merchant is the fixed receiving party recorded as primary_seller.
	// A missing authorization code degrades the record but not the service.
	if cfg.MerchantAuthCode == "" {
		logger.Warn("MERCHANT_AUTH_CODE is not set; primary_seller will carry no authorization code")
	}
	merchant := entity.MerchantIdentity{
		Name:              cfg.MerchantName,
		Identifier:        cfg.MerchantID,
		AuthorizationCode: cfg.MerchantAuthCode,
	}

	paymentUseCase := usecase.NewPaymentUseCase(userRepo, cardStatusRepo, paymentService, merchant)
	cardSaleUseCase := usecase.NewCardSaleUseCase(cardStatusRepo)

	handler.Setup(paymentUseCase, cardSaleUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
