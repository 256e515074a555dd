package api

import (
	"log/slog"
	"net/http"
	"time"

	"collection-portal/internal/api/handler"
	mw "collection-portal/internal/api/middleware"
	"collection-portal/internal/config"
	"collection-portal/internal/domain/customer"
	"collection-portal/internal/domain/payment"
	"collection-portal/internal/domain/report"
	"collection-portal/internal/domain/schedule"

	_ "collection-portal/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Services struct {
	Customer customer.CustomerService
	Ledger   payment.LedgerService
	Schedule schedule.ScheduleService
	Report   report.ReportService
}

func SetupRouter(services Services, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupCustomerRoutes(router, cfg, services, logger)
	setupScheduleRoutes(router, cfg, services.Schedule, logger)
	setupReportRoutes(router, cfg, services.Report, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupCustomerRoutes(router *chi.Mux, cfg *config.Config, services Services, logger *slog.Logger) {
	customerHandler := handler.NewCustomerHandler(services.Customer, logger)
	paymentHandler := handler.NewPaymentHandler(services.Ledger, logger)
	authHandler := handler.NewAuthHandler(*cfg, logger)
	logger.Info("Route Config")
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.GenerateBearerToken)
	})

	router.Route("/customers", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", customerHandler.CreateCustomer)
		r.Get("/", customerHandler.ListCustomers)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", customerHandler.GetCustomer)
			r.Put("/", customerHandler.UpdateCustomer)
			r.Delete("/", customerHandler.ArchiveCustomer)
			r.Put("/reactivate", customerHandler.ReactivateCustomer)
			r.Post("/payments", paymentHandler.RecordPayment)
			r.Get("/payments", paymentHandler.GetCustomerPayments)
		})
	})

	router.Route("/payments", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/cash-total", paymentHandler.CashTotal)
	})
}

func setupScheduleRoutes(router *chi.Mux, cfg *config.Config, svc schedule.ScheduleService, logger *slog.Logger) {
	h := handler.NewScheduleHandler(svc, logger)

	router.Route("/schedule", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.GetDailySchedule)
		r.Put("/order", h.SaveVisitOrder)
	})
}

func setupReportRoutes(router *chi.Mux, cfg *config.Config, svc report.ReportService, logger *slog.Logger) {
	h := handler.NewReportHandler(svc, logger)

	router.Route("/reports", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/summary", h.GetSummary)
		r.With(mw.RequireRole(cfg.Server.Auth, mw.RoleAdmin, logger)).Get("/dashboard", h.GetDashboard)
	})
}
