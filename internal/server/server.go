package server

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/summitretail/pos-api/internal/client/aws"
	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/handlers"
	"github.com/summitretail/pos-api/internal/helpers"
	"github.com/summitretail/pos-api/internal/logger"
	"github.com/summitretail/pos-api/internal/services"
)

// Handler definitions
var (
	discountHandler   *handlers.DiscountHandler
	budgetHandler     *handlers.BudgetHandler
	escalationHandler *handlers.EscalationHandler
	tierHandler       *handlers.TierHandler
	productHandler    *handlers.ProductHandler
	employeeHandler   *handlers.EmployeeHandler
	healthHandler     *handlers.HealthHandler

	// Database
	dbQueries *db.Queries
	dbPool    *pgxpool.Pool
)

// InitializeHandlers wires configuration, the database pool, services, and
// handlers. It must run before InitializeRoutes.
func InitializeHandlers() {
	var dsn string

	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))

		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret

		err = secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData)
		if err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err), zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}
		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data", zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username),
			url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
		logger.Info("Constructed DSN from Secrets Manager credentials")
	} else {
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
		if dsn == "" {
			logger.Fatal("DATABASE_URL is required for local development")
		}
	}

	// --- Resend API Key ---
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Warn("Failed to get Resend API Key. Escalation emails will be disabled.", zap.Error(err))
		resendAPIKey = ""
	}

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	dbQueries = db.New(dbPool)

	// --- Services ---
	notificationService := services.NewNotificationService(
		resendAPIKey,
		envWithDefault("ESCALATION_FROM_EMAIL", "no-reply@summitretail.example"),
		envWithDefault("ESCALATION_FROM_NAME", "Summit Retail POS"),
		os.Getenv("ESCALATION_REVIEWER_EMAIL"),
		logger.Log,
	)

	txRunner := services.NewPgxTxRunner(dbPool, dbQueries)
	tierService := services.NewTierService(dbQueries)
	budgetService := services.NewBudgetService(dbQueries, tierService)
	catalogService := services.NewCatalogService(dbQueries)
	escalationService := services.NewEscalationService(dbQueries, tierService, notificationService)
	discountService := services.NewDiscountService(dbQueries, txRunner, tierService, budgetService, catalogService, escalationService)

	// --- Handlers ---
	discountHandler = handlers.NewDiscountHandler(discountService, dbQueries, logger.Log)
	budgetHandler = handlers.NewBudgetHandler(budgetService, logger.Log)
	escalationHandler = handlers.NewEscalationHandler(escalationService, logger.Log)
	tierHandler = handlers.NewTierHandler(tierService, logger.Log)
	productHandler = handlers.NewProductHandler(catalogService, logger.Log)
	employeeHandler = handlers.NewEmployeeHandler(dbQueries, logger.Log)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers middleware and the API surface on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		discounts := v1.Group("/discounts")
		{
			discounts.POST("/validate", discountHandler.ValidateDiscount)
			discounts.POST("/apply", discountHandler.ApplyDiscount)
			discounts.GET("/transactions", discountHandler.ListTransactions)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.POST("", budgetHandler.InitializeBudget)
			budgets.GET("/:employee_id", budgetHandler.GetCurrentBudget)
		}

		escalations := v1.Group("/escalations")
		{
			escalations.POST("", escalationHandler.CreateEscalation)
			escalations.GET("/pending", escalationHandler.ListPending)
			escalations.GET("/:escalation_id", escalationHandler.GetEscalation)
			escalations.POST("/:escalation_id/approve", escalationHandler.ApproveEscalation)
			escalations.POST("/:escalation_id/deny", escalationHandler.DenyEscalation)
		}

		tiers := v1.Group("/tiers")
		{
			tiers.GET("", tierHandler.ListTiers)
			tiers.PUT("/:role", tierHandler.UpdateTier)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:product_id", productHandler.GetProduct)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:employee_id", employeeHandler.GetEmployee)
		}
	}
}

// Shutdown closes shared resources. Safe to call once after the HTTP server stops.
func Shutdown() {
	if dbPool != nil {
		dbPool.Close()
	}
	if logger.Log != nil {
		_ = logger.Sync()
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func envWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
