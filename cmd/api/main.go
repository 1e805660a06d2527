package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/docs"
	"github.com/freightflow/booking-api/internal/auth"
	"github.com/freightflow/booking-api/internal/config"
	"github.com/freightflow/booking-api/internal/database"
	"github.com/freightflow/booking-api/internal/http/handler"
	"github.com/freightflow/booking-api/internal/http/middleware"
	"github.com/freightflow/booking-api/internal/http/router"
	"github.com/freightflow/booking-api/internal/jobs"
	"github.com/freightflow/booking-api/internal/logger"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/service"
	"github.com/freightflow/booking-api/internal/storage"
)

// @title FreightFlow Booking API
// @version 1.0
// @description Back-office API for full-truck-load trip booking, payment lifecycle, and settlement tracking

// @contact.name API Support
// @contact.email support@freightflow.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "booking-api-staging.freightflow.in"
	case "production":
		docs.SwaggerInfo.Host = "api.freightflow.in"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Event hub pushes lifecycle events to connected dashboards
	hub := notifier.NewHub(log, cfg.CORS.AllowedOrigins)
	go hub.Run()

	// Initialize repositories
	tripRepo := repository.NewTripRepository(db)
	seqRepo := repository.NewOrderSequenceRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)

	// Initialize services
	tripService := service.NewTripService(tripRepo, seqRepo, hub, log)
	documentService := service.NewDocumentService(tripRepo, fileStorage, hub, log)
	paymentService := service.NewPaymentService(tripRepo, log)
	dashboardService := service.NewDashboardService(tripRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	supplierService := service.NewSupplierService(supplierRepo, log)
	vehicleService := service.NewVehicleService(vehicleRepo, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	tripHandler := handler.NewTripHandler(tripService, log)
	documentHandler := handler.NewDocumentHandler(documentService, cfg.Storage.MaxUploadSizeMB, log)
	paymentHandler := handler.NewPaymentHandler(paymentService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	clientHandler := handler.NewClientHandler(clientService, log)
	supplierHandler := handler.NewSupplierHandler(supplierService, log)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		hub,
		tripHandler,
		documentHandler,
		paymentHandler,
		dashboardHandler,
		clientHandler,
		supplierHandler,
		vehicleHandler,
	)

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		staleAfter := time.Duration(cfg.Jobs.QueueStaleAfterHours) * time.Hour
		if err := jobs.RegisterQueueReminderJob(
			scheduler,
			paymentService,
			hub,
			log,
			cfg.Jobs.QueueReminderSchedule,
			staleAfter,
		); err != nil {
			log.Error("Failed to register queue reminder job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with queue reminder job",
				zap.String("cron_expr", cfg.Jobs.QueueReminderSchedule),
				zap.Duration("stale_after", staleAfter),
			)
		}
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
