package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oguzk/stajtakip/internal/app/controllers"
	appMigrations "github.com/oguzk/stajtakip/internal/app/migrations"
	appRepos "github.com/oguzk/stajtakip/internal/app/repositories"
	appRoutes "github.com/oguzk/stajtakip/internal/app/routes"
	appServices "github.com/oguzk/stajtakip/internal/app/services"
	"github.com/oguzk/stajtakip/internal/config"
	"github.com/oguzk/stajtakip/internal/db"
	appMiddleware "github.com/oguzk/stajtakip/internal/middleware"
	pkgAuth "github.com/oguzk/stajtakip/internal/pkg/auth"
	"github.com/oguzk/stajtakip/internal/pkg/docparse"
	"github.com/oguzk/stajtakip/internal/pkg/filestorage"
	"github.com/oguzk/stajtakip/internal/pkg/helpers"
	"github.com/oguzk/stajtakip/internal/pkg/logger"
	"github.com/oguzk/stajtakip/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	AuthController       *appControllers.AuthController
	CommissionController *appControllers.CommissionController
	TermController       *appControllers.TermController
	InternshipController *appControllers.InternshipController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	GeneralLimiter       *appMiddleware.RateLimiter
	AuthLimiter          *appMiddleware.RateLimiter
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 1*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(
		deps.Repos,
		deps.JWTService,
		deps.FileStorage,
		docparse.NewPdfToTextExtractor(),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	window := helpers.ParseDuration(cfg.RateLimit.Window, 15*time.Minute)
	deps.GeneralLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.GeneralLimit, window)
	deps.AuthLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.AuthLimit, window)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.CommissionController = appControllers.NewCommissionController(deps.Services.CommissionService, lgr)
	deps.TermController = appControllers.NewTermController(deps.Services.TermService, lgr)
	deps.InternshipController = appControllers.NewInternshipController(
		deps.Services.InternshipService,
		deps.Services.ReportService,
		deps.Services.DocumentService,
		lgr,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CommissionController,
		deps.TermController,
		deps.InternshipController,
		deps.AuthMiddleware,
		deps.GeneralLimiter,
		deps.AuthLimiter,
	)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "ITS API is running"})
	})

	return router
}
