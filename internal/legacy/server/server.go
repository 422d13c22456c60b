package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/stajtakip/internal/bootstrap"
	"github.com/oguzk/stajtakip/internal/config"
	"github.com/oguzk/stajtakip/internal/db"
	"github.com/oguzk/stajtakip/internal/legacy/auth"
	"github.com/oguzk/stajtakip/internal/legacy/controllers"
	"github.com/oguzk/stajtakip/internal/legacy/repositories"
	"github.com/oguzk/stajtakip/internal/legacy/routes"
	"github.com/oguzk/stajtakip/internal/middleware"
	"github.com/oguzk/stajtakip/internal/pkg/helpers"
)

// Server holds the state for the legacy HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	mongo  *db.MongoDB
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and initializes the legacy server instance.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	mongoDB, err := db.NewMongoDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup mongodb: %w", err)
	}

	router := buildRouter(cfg, mongoDB, lgr)

	return &Server{
		config: cfg,
		router: router,
		mongo:  mongoDB,
		logger: lgr,
	}, nil
}

func buildRouter(cfg *config.Config, mongoDB *db.MongoDB, lgr zerolog.Logger) *gin.Engine {
	userRepo := repositories.NewUserRepository(mongoDB.Database)
	studentRepo := repositories.NewStudentRepository(mongoDB.Database)
	companyRepo := repositories.NewCompanyRepository(mongoDB.Database)
	internshipRepo := repositories.NewInternshipRepository(mongoDB.Database)
	applicationRepo := repositories.NewApplicationRepository(mongoDB.Database)

	tokenExp := helpers.ParseDuration(cfg.JWT.TokenExpiration, time.Hour)
	tokens := auth.NewTokenService(cfg.JWT.Secret, tokenExp, cfg.JWT.Issuer)
	authMiddleware := auth.NewMiddleware(tokens, userRepo)

	authController := controllers.NewAuthController(userRepo, studentRepo, companyRepo, tokens, lgr)
	internshipController := controllers.NewInternshipController(internshipRepo, companyRepo, lgr)
	applicationController := controllers.NewApplicationController(applicationRepo, studentRepo, internshipRepo, lgr)

	window := helpers.ParseDuration(cfg.RateLimit.Window, 15*time.Minute)
	generalLimiter := middleware.NewRateLimiter(cfg.RateLimit.GeneralLimit, window)
	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.AuthLimit, window)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	routes.SetupRouter(router, authController, internshipController, applicationController, authMiddleware, generalLimiter, authLimiter)
	return router
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Mongo.ServerPort,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("Legacy HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		}
	}

	if s.mongo != nil {
		if err := s.mongo.Close(ctx); err != nil {
			s.logger.Error().Err(err).Msg("MongoDB disconnect error")
			shutdownError = true
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
