package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-medical-console/config"
	deliveryHttp "go-medical-console/internal/delivery/http"
	"go-medical-console/internal/delivery/http/handler"
	"go-medical-console/internal/delivery/http/middleware"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/internal/infrastructure/cache"
	"go-medical-console/internal/infrastructure/database"
	"go-medical-console/internal/repository"
	"go-medical-console/internal/service"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/jwt"
	"go-medical-console/pkg/validator"

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
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db, cfg.DB); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewHandler(cfg, log, db, redisClient),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// NewRepositories binds every remote collection to its API path.
func NewRepositories(client *api.Client) usecase.Repositories {
	return usecase.Repositories{
		Departements:     repository.NewResourceRepository[entity.Departement](client, repository.PathDepartements),
		Specialites:      repository.NewResourceRepository[entity.Specialite](client, repository.PathSpecialites),
		Medecins:         repository.NewResourceRepository[entity.Medecin](client, repository.PathMedecins),
		Secretaires:      repository.NewResourceRepository[entity.Secretaire](client, repository.PathSecretaires),
		Patients:         repository.NewPatientRepository(client),
		RendezVous:       repository.NewRendezVousRepository(client),
		Consultations:    repository.NewConsultationRepository(client),
		ComptesRendus:    repository.NewResourceRepository[entity.CompteRendu](client, repository.PathComptesRendus),
		Paiements:        repository.NewPaiementRepository(client),
		Disponibilites:   repository.NewResourceRepository[entity.Disponibilite](client, repository.PathDisponibilites),
		DossiersMedicaux: repository.NewResourceRepository[entity.DossierMedical](client, repository.PathDossiersMedicaux),
		Users:            repository.NewResourceRepository[entity.User](client, repository.PathUsers),
		Statistics:       repository.NewStatisticsRepository(client),
	}
}

// NewHandler wires every layer and returns the root HTTP handler.
func NewHandler(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) http.Handler {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	apiClient := api.NewClient(cfg.API, log)
	repos := NewRepositories(apiClient)
	authRepo := repository.NewAuthRepository(apiClient)
	sessionRepo := repository.NewSessionRepository(redisClient)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	resourceUsecases := usecase.NewResourceUsecases(log, repos, auditService)
	rendezVousUsecase := usecase.NewRendezVousUsecase(log, repos, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(log, repos, cfg.App.Location())
	calendarUsecase := usecase.NewCalendarUsecase(log, repos, cfg.Console.CalendarEventDuration)
	authUsecase := usecase.NewAuthUsecase(log, authRepo, sessionRepo, jwtService, auditService, cfg.Session.TTL)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	resourceHandlers := handler.NewResourceHandlers(resourceUsecases, customValidator, cfg.Console.RedirectDelay)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	rendezVousHandler := handler.NewRendezVousHandler(rendezVousUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, calendarUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.Console.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		resourceHandlers,
		authHandler,
		rendezVousHandler,
		dashboardHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Remote API: %s", app.Config.API.BaseURL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
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
