package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davi814/projeto-pi-definitivo/config"
	deliveryHttp "github.com/davi814/projeto-pi-definitivo/internal/delivery/http"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/handler"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/middleware"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/cache"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/cep"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/database"
	"github.com/davi814/projeto-pi-definitivo/internal/repository"
	"github.com/davi814/projeto-pi-definitivo/internal/service"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/jwt"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	log := logrus.StandardLogger()
	app.Log = log

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	setupLogger(log, cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database schema up to date")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, db, redisClient, log)

	return app, nil
}

// setupLogger configures the logrus logger; an unknown level falls back to info.
func setupLogger(log *logrus.Logger, level string) {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	categoryRepo := repository.NewCategoryRepository()
	professionalRepo := repository.NewProfessionalRepository()
	requestRepo := repository.NewServiceRequestRepository()
	reviewRepo := repository.NewReviewRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	sessions := service.NewRedisSessionStore(redisClient, log)
	cepResolver := cep.NewCachedResolver(cep.NewViaCEPClient(cfg.CEP, log), redisClient, cfg.CEP.CacheTTL, log)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, requestRepo, reviewRepo, professionalRepo, auditLogRepo, cepResolver, jwtService, sessions, auditService)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, professionalRepo, categoryRepo, reviewRepo, auditService)
	requestUsecase := usecase.NewServiceRequestUsecase(db, log, requestRepo, professionalRepo, reviewRepo, auditService, cfg.Workflow)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, requestRepo, professionalRepo, auditService, cfg.Workflow)
	addressUsecase := usecase.NewAddressUsecase(log, cepResolver)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg.App.IsProduction())
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	requestHandler := handler.NewServiceRequestHandler(requestUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	addressHandler := handler.NewAddressHandler(addressUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		professionalHandler,
		requestHandler,
		reviewHandler,
		addressHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
