package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hospital-records/config"
	"go-hospital-records/internal/delivery/cli"
	"go-hospital-records/internal/identity"
	"go-hospital-records/internal/infrastructure/cache"
	"go-hospital-records/internal/infrastructure/database"
	"go-hospital-records/internal/repository"
	"go-hospital-records/internal/session"
	"go-hospital-records/internal/usecase"
	"go-hospital-records/pkg/validator"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Tracker     *session.Tracker
	CLI         *cli.Runner
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Create the schema if absent; safe against an existing store.
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	logrus.Info("Schema ready")

	// Initialize identity cache
	ctx := context.Background()
	idCache, err := app.newIdentityCache(cfg)
	if err != nil {
		return nil, err
	}
	if err := identity.Warm(ctx, db, idCache); err != nil {
		return nil, fmt.Errorf("failed to warm identity cache: %w", err)
	}
	logrus.Info("Identity cache warmed")

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	stayRepo := repository.NewHospitalStayRepository()
	visitationRepo := repository.NewVisitationRepository()

	// Initialize session tracker; clear any flag left over by an unclean
	// termination before accepting logins.
	tracker := session.NewTracker(log, userRepo)
	app.Tracker = tracker
	if err := tracker.DeactivateAll(db); err != nil {
		return nil, fmt.Errorf("failed to reset sessions: %w", err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(db, log, customValidator, idCache, userRepo)
	authUsecase := usecase.NewAuthUsecase(db, log, customValidator, idCache, tracker, userRepo, doctorRepo, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, idCache, doctorRepo, patientRepo, stayRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, customValidator, idCache, patientRepo)
	stayUsecase := usecase.NewHospitalStayUsecase(db, log, customValidator, idCache, stayRepo)
	visitationUsecase := usecase.NewVisitationUsecase(db, log, customValidator, idCache, visitationRepo)

	// Initialize the interactive collaborator
	app.CLI = cli.NewRunner(
		log, cfg.App.Name, os.Stdin, os.Stdout,
		authUsecase, userUsecase, doctorUsecase, patientUsecase, stayUsecase, visitationUsecase,
	)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

func (app *App) newIdentityCache(cfg *config.Config) (identity.Cache, error) {
	if cfg.Cache.Driver == config.CacheDriverRedis {
		redisClient, err := cache.NewRedisClient(cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		return identity.NewRedisCache(redisClient, cfg.App.Name), nil
	}
	return identity.NewMemoryCache(), nil
}

// Run drives the interactive loop and handles shutdown. The store is
// released, and every session reset, on every exit path.
func (app *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.CLI.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logrus.Info("Shutting down...")
		cancel()
	case <-done:
	}

	app.Close()
	logrus.Info("Shutdown complete")
}

// Close resets every active session and releases all connections.
func (app *App) Close() {
	if app.Tracker != nil && app.DB != nil {
		if err := app.Tracker.DeactivateAll(app.DB); err != nil {
			logrus.Errorf("Failed to reset sessions on shutdown: %v", err)
		}
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
