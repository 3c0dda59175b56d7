package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hospital-admin/config"
	deliveryHttp "go-hospital-admin/internal/delivery/http"
	"go-hospital-admin/internal/delivery/http/handler"
	"go-hospital-admin/internal/delivery/http/middleware"
	"go-hospital-admin/internal/infrastructure/cache"
	"go-hospital-admin/internal/infrastructure/database"
	"go-hospital-admin/internal/repository"
	"go-hospital-admin/internal/service"
	"go-hospital-admin/internal/usecase"
	"go-hospital-admin/pkg/jwt"
	"go-hospital-admin/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.Log = NewLogger(cfg.App)
	log := app.Log

	repos := repository.NewMemoryRepositories()
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn("Using in-memory storage; data is lost on shutdown")
	} else {
		db, err := database.NewPostgresConnection(cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		repos = repository.NewGormRepositories(db)
		log.Info("Database connected successfully")
	}

	var idempotency cache.IdempotencyStore
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		idempotency = cache.NewIdempotencyStore(redisClient, cfg.Redis.IdempotencyTTL)
		log.Info("Redis connected successfully")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	httpHandler := NewHTTPHandler(Dependencies{
		Config:      cfg,
		Log:         log,
		Repos:       repos,
		Idempotency: idempotency,
		Registry:    registry,
	})

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// NewLogger builds the JSON logger shared by every layer.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// Dependencies are the pieces NewHTTPHandler wires together. Idempotency and
// Registry may be nil.
type Dependencies struct {
	Config      *config.Config
	Log         *logrus.Logger
	Repos       *repository.Repositories
	Idempotency cache.IdempotencyStore
	Registry    *prometheus.Registry
}

// NewHTTPHandler builds every usecase, handler and middleware on top of the
// given repositories and returns the routed handler.
func NewHTTPHandler(deps Dependencies) http.Handler {
	cfg := deps.Config
	log := deps.Log
	repos := deps.Repos

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	auditService := service.NewAuditService(log, repos.AuditLogs)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, repos.Patients, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.Doctors, auditService)
	staffUsecase := usecase.NewStaffUsecase(log, repos.Staff, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.Appointments, auditService)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(log, repos.MedicalRecords, auditService)
	billUsecase := usecase.NewBillUsecase(log, repos.Bills, auditService)
	medicineUsecase := usecase.NewMedicineUsecase(log, repos.Medicines, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(log, repos.Patients, repos.Doctors, repos.Appointments, repos.Staff, repos.Bills)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, repos.AuditLogs)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Patient:       handler.NewPatientHandler(patientUsecase, customValidator),
		Doctor:        handler.NewDoctorHandler(doctorUsecase, customValidator),
		Staff:         handler.NewStaffHandler(staffUsecase, customValidator),
		Appointment:   handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		MedicalRecord: handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator),
		Bill:          handler.NewBillHandler(billUsecase, customValidator),
		Medicine:      handler.NewMedicineHandler(medicineUsecase, customValidator),
		Dashboard:     handler.NewDashboardHandler(dashboardUsecase),
		AuditLog:      handler.NewAuditLogHandler(auditLogUsecase, customValidator),
	}

	// Initialize middleware
	var jwtService *jwt.JWTService
	if cfg.JWT.Enabled() {
		jwtService = jwt.NewJWTService(cfg.JWT)
	}
	middlewares := deliveryHttp.Middlewares{
		Auth: middleware.NewAuthMiddleware(jwtService),
		CORS: middleware.NewCORSMiddleware(cfg.App.CORSOrigins),
		Log:  log,
	}
	if deps.Idempotency != nil {
		middlewares.Idempotency = middleware.NewIdempotencyMiddleware(deps.Idempotency, log)
	}
	if deps.Registry != nil {
		middlewares.Metrics = middleware.NewHTTPMetrics(deps.Registry)
		middlewares.Gatherer = deps.Registry
	}

	// Initialize router
	return deliveryHttp.NewRouter(handlers, middlewares).Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	log := app.Log

	// Start server in goroutine
	go func() {
		log.Infof("Server starting on port %s", app.Config.App.Port)
		log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
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
