package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/auth"
	"github.com/freightflow/booking-api/internal/config"
	"github.com/freightflow/booking-api/internal/http/handler"
	"github.com/freightflow/booking-api/internal/http/middleware"
	"github.com/freightflow/booking-api/internal/notifier"

	_ "github.com/freightflow/booking-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	hub              *notifier.Hub
	tripHandler      *handler.TripHandler
	documentHandler  *handler.DocumentHandler
	paymentHandler   *handler.PaymentHandler
	dashboardHandler *handler.DashboardHandler
	clientHandler    *handler.ClientHandler
	supplierHandler  *handler.SupplierHandler
	vehicleHandler   *handler.VehicleHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	hub *notifier.Hub,
	tripHandler *handler.TripHandler,
	documentHandler *handler.DocumentHandler,
	paymentHandler *handler.PaymentHandler,
	dashboardHandler *handler.DashboardHandler,
	clientHandler *handler.ClientHandler,
	supplierHandler *handler.SupplierHandler,
	vehicleHandler *handler.VehicleHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		hub:              hub,
		tripHandler:      tripHandler,
		documentHandler:  documentHandler,
		paymentHandler:   paymentHandler,
		dashboardHandler: dashboardHandler,
		clientHandler:    clientHandler,
		supplierHandler:  supplierHandler,
		vehicleHandler:   vehicleHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		sqlDB, err := rt.db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		stats := sqlDB.Stats()
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// WebSocket event stream. Authentication is handled in the upgrade
	// handshake via the origin check; browsers cannot set custom headers on
	// WebSocket connections.
	if rt.hub != nil {
		r.Get("/ws", rt.hub.ServeWS)
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			// Trips and the payment lifecycle
			r.Route("/trips", func(r chi.Router) {
				r.Get("/", rt.tripHandler.List)
				r.Post("/", rt.tripHandler.Create)
				r.Get("/{ref}", rt.tripHandler.Get)
				r.Patch("/{ref}", rt.tripHandler.Update)
				r.Delete("/{ref}", rt.tripHandler.Delete)

				// Lifecycle endpoints
				r.Patch("/{ref}/status", rt.tripHandler.UpdateStatus)
				r.Patch("/{ref}/payment-status", rt.tripHandler.UpdatePaymentStatus)
				r.Post("/{ref}/payments", rt.tripHandler.ProcessPayment)
				r.Put("/{ref}/charges", rt.tripHandler.UpdateCharges)

				// Documents
				r.Post("/{ref}/pod", rt.documentHandler.UploadPOD)
				r.Post("/{ref}/documents", rt.documentHandler.UploadDocument)
				r.Get("/{ref}/documents/{documentId}", rt.documentHandler.Download)
			})

			// Payment queues
			r.Route("/payments", func(r chi.Router) {
				r.Get("/queue/advance", rt.paymentHandler.AdvanceQueue)
				r.Get("/queue/balance", rt.paymentHandler.BalanceQueue)
				r.Get("/stats", rt.paymentHandler.Stats)
			})

			// Dashboard
			r.Get("/dashboard/status-counts", rt.dashboardHandler.StatusCounts)

			// Clients
			r.Route("/clients", func(r chi.Router) {
				r.Get("/", rt.clientHandler.List)
				r.Post("/", rt.clientHandler.Create)
				r.Get("/{id}", rt.clientHandler.Get)
				r.Patch("/{id}", rt.clientHandler.Update)
				r.Delete("/{id}", rt.clientHandler.Delete)
			})

			// Suppliers
			r.Route("/suppliers", func(r chi.Router) {
				r.Get("/", rt.supplierHandler.List)
				r.Post("/", rt.supplierHandler.Create)
				r.Get("/{id}", rt.supplierHandler.Get)
				r.Patch("/{id}", rt.supplierHandler.Update)
				r.Delete("/{id}", rt.supplierHandler.Delete)
			})

			// Vehicles
			r.Route("/vehicles", func(r chi.Router) {
				r.Get("/", rt.vehicleHandler.List)
				r.Post("/", rt.vehicleHandler.Create)
				r.Get("/{id}", rt.vehicleHandler.Get)
				r.Patch("/{id}", rt.vehicleHandler.Update)
				r.Delete("/{id}", rt.vehicleHandler.Delete)
			})
		})
	})

	return r
}
