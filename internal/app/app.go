package app

import (
	"claimdesk/config"
	"claimdesk/internal/database"
	"claimdesk/internal/events"
	"claimdesk/internal/handlers/middleware"
	"claimdesk/internal/logger"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"
	"claimdesk/internal/websockets"

	claimController "claimdesk/internal/controllers/claim"
	dashboardController "claimdesk/internal/controllers/dashboard"
	integrationController "claimdesk/internal/controllers/integration"
	patientController "claimdesk/internal/controllers/patient"
	paymentController "claimdesk/internal/controllers/payment"
	reviewController "claimdesk/internal/controllers/review"
	supplementController "claimdesk/internal/controllers/supplement"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Config     config.Config

	// Services
	TransactionService       *services.TransactionService
	CacheInvalidationService *services.CacheInvalidationService

	// Repositories
	PatientRepo     repositories.PatientRepository
	ClaimRepo       repositories.ClaimRepository
	SubmissionRepo  repositories.SubmissionRepository
	ReviewRepo      repositories.ReviewResultRepository
	SupplementRepo  repositories.SupplementRepository
	PaymentRepo     repositories.PaymentRepository
	IntegrationRepo repositories.IntegrationRepository
	DashboardRepo   repositories.DashboardRepository

	// Controllers
	PatientController     *patientController.PatientController
	ClaimController       *claimController.ClaimController
	ReviewController      *reviewController.ReviewController
	SupplementController  *supplementController.SupplementController
	PaymentController     *paymentController.PaymentController
	IntegrationController *integrationController.IntegrationController
	DashboardController   *dashboardController.DashboardController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Cache.Events, config)

	// Initialize services
	transactionService := services.NewTransactionService(db)
	cacheInvalidationService := services.NewCacheInvalidationService(db)
	rand := services.NewRand()

	// Initialize repositories
	patientRepo := repositories.NewPatient(db)
	claimRepo := repositories.NewClaim(db)
	submissionRepo := repositories.NewSubmission(db)
	reviewRepo := repositories.NewReviewResult(db)
	supplementRepo := repositories.NewSupplement(db)
	paymentRepo := repositories.NewPayment(db)
	integrationRepo := repositories.NewIntegration(db)
	dashboardRepo := repositories.NewDashboard(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(db, config)
	patientController := patientController.New(patientRepo)
	claimController := claimController.New(
		claimRepo,
		patientRepo,
		submissionRepo,
		transactionService,
		cacheInvalidationService,
		eventBus,
	)
	reviewController := reviewController.New(
		claimRepo,
		reviewRepo,
		paymentRepo,
		transactionService,
		cacheInvalidationService,
		eventBus,
		rand,
	)
	supplementController := supplementController.New(
		supplementRepo,
		claimRepo,
		transactionService,
		cacheInvalidationService,
		eventBus,
	)
	paymentController := paymentController.New(paymentRepo, cacheInvalidationService)
	integrationController := integrationController.New(integrationRepo, patientRepo, rand)
	dashboardController := dashboardController.New(dashboardRepo, patientRepo, db, config)

	websocket, err := websockets.New(db, eventBus, config)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	app := &App{
		Database:                 db,
		Config:                   config,
		Middleware:               middleware,
		TransactionService:       transactionService,
		CacheInvalidationService: cacheInvalidationService,
		PatientRepo:              patientRepo,
		ClaimRepo:                claimRepo,
		SubmissionRepo:           submissionRepo,
		ReviewRepo:               reviewRepo,
		SupplementRepo:           supplementRepo,
		PaymentRepo:              paymentRepo,
		IntegrationRepo:          integrationRepo,
		DashboardRepo:            dashboardRepo,
		PatientController:        patientController,
		ClaimController:          claimController,
		ReviewController:         reviewController,
		SupplementController:     supplementController,
		PaymentController:        paymentController,
		IntegrationController:    integrationController,
		DashboardController:      dashboardController,
		Websocket:                websocket,
		EventBus:                 eventBus,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.EventBus,
		a.TransactionService,
		a.CacheInvalidationService,
		a.PatientRepo,
		a.ClaimRepo,
		a.SubmissionRepo,
		a.ReviewRepo,
		a.SupplementRepo,
		a.PaymentRepo,
		a.IntegrationRepo,
		a.DashboardRepo,
		a.PatientController,
		a.ClaimController,
		a.ReviewController,
		a.SupplementController,
		a.PaymentController,
		a.IntegrationController,
		a.DashboardController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
