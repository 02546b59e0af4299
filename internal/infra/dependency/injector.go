// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/category"
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/application/usecase/insights"
	"github.com/budgetwise/backend/internal/application/usecase/receipt"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/alerts"
	"github.com/budgetwise/backend/internal/integration/cache"
	"github.com/budgetwise/backend/internal/integration/email"
	"github.com/budgetwise/backend/internal/integration/email/templates"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	AlertsWorker *alerts.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	ocrService := adapters.NewGeminiOCRService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	analysisCache := cache.NewRedisAnalysisCache(redisClient, cfg.Redis.CacheTTL)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, budget alert emails will not be delivered")
		emailSender = email.NewMockEmailSender()
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, categoryRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)
	seedCategoriesUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, analysisCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, analysisCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, analysisCache)

	// Create budget use cases
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	budgetStatusUseCase := budget.NewGetBudgetStatusUseCase(budgetRepo, transactionRepo)

	// Create analytics use cases
	insightsUseCase := insights.NewGetInsightsUseCase(transactionRepo, analysisCache)
	trendsUseCase := dashboard.NewGetMonthlyTrendsUseCase(transactionRepo)
	scanReceiptUseCase := receipt.NewScanReceiptUseCase(ocrService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		seedCategoriesUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		upsertBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
		budgetStatusUseCase,
	)

	dashboardController := controller.NewDashboardController(trendsUseCase)
	insightsController := controller.NewInsightsController(insightsUseCase)
	receiptController := controller.NewReceiptController(scanReceiptUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create alerts worker
	alertsWorker := alerts.NewWorker(
		userRepo,
		budgetStatusUseCase,
		emailSender,
		renderer,
		alerts.WorkerConfig{PollInterval: cfg.Alerts.PollInterval},
	)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		budgetController,
		dashboardController,
		insightsController,
		receiptController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		AlertsWorker: alertsWorker,
	}, nil
}
