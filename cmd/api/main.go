package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"wetlandwarden/internal/adapter/api"
	"wetlandwarden/internal/adapter/api/handler"
	apimiddleware "wetlandwarden/internal/adapter/api/middleware"
	"wetlandwarden/internal/adapter/api/router"
	"wetlandwarden/internal/adapter/repository"
	"wetlandwarden/internal/infrastructure/firebase"
	"wetlandwarden/internal/infrastructure/realtime"
	"wetlandwarden/internal/infrastructure/storage"
	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account from the environment in production, file path locally.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	volunteerRepo := repository.NewFirestoreVolunteerRepository(firestoreClient)
	driveRepo := repository.NewFirestoreDriveRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	quizRepo := repository.NewFirestoreQuizRepository(firestoreClient)
	newsRepo := repository.NewFirestoreNewsRepository(firestoreClient)
	statsRepo := repository.NewFirestoreStatisticsRepository(firestoreClient)
	badgeRepo := repository.NewFirestoreBadgeRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient, cfg.FirebaseApiKey)

	hub := realtime.NewHub()
	hub.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(profileRepo, firebaseAuthClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, reportRepo, driveRepo, badgeRepo)
	statisticsUseCase := usecase.NewStatisticsUseCase(statsRepo, hub)
	volunteerUseCase := usecase.NewVolunteerUseCase(volunteerRepo, profileUseCase, statisticsUseCase)
	driveUseCase := usecase.NewDriveUseCase(driveRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, storageClient, profileUseCase, statisticsUseCase)
	quizUseCase := usecase.NewQuizUseCase(quizRepo, profileUseCase)
	newsUseCase := usecase.NewNewsUseCase(newsRepo, hub)
	mapUseCase := usecase.NewMapUseCase()

	handler.Setup(
		authUseCase,
		profileUseCase,
		volunteerUseCase,
		driveUseCase,
		reportUseCase,
		quizUseCase,
		newsUseCase,
		statisticsUseCase,
		mapUseCase,
		hub,
	)
	handler.SetupHealthHandler(firestoreClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
