package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/config"
	"github.com/hirecentive/dashboard/controllers"
	"github.com/hirecentive/dashboard/database"
	"github.com/hirecentive/dashboard/metrics"
	appmiddleware "github.com/hirecentive/dashboard/middleware"
	"github.com/hirecentive/dashboard/mockdata"
	"github.com/hirecentive/dashboard/repositories"
	"github.com/hirecentive/dashboard/services"
)

func main() {
	// Load configuration from .env and the environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the audit database
	db, err := database.InitializeDatabase(cfg.AuditDSN, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Seed the in-memory stores
	gen := mockdata.NewGenerator(cfg.Seed)
	repos := repositories.NewRepositories(db, gen.Influencers(cfg.MockInfluencers), gen.Logs(cfg.MockLogs))

	// Initialize services
	srvs := services.NewServices(repos, logger)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, logger)

	metrics.MustRegister()

	// Set up router
	r, err := setupRouter(cfg, ctrl, repos, logger)
	if err != nil {
		logger.Fatal("failed to setup router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("dashboard starting",
			zap.String("addr", "http://localhost:"+cfg.Port),
			zap.Uint64("seed", cfg.Seed),
			zap.Int("influencers", cfg.MockInfluencers),
			zap.Int("logs", cfg.MockLogs),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newLogger builds a development logger for LOG_LEVEL=debug and a production
// logger at the requested level otherwise.
func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = atomic
	return zcfg.Build()
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, repos *repositories.Repositories, logger *zap.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(appmiddleware.WithMetrics)

	// Session middleware
	lifetime := int64(cfg.SessionLifetime / time.Second)
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "hirecentive_session",
		Secure:         cfg.UseHTTPS, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     lifetime,
		Maxlifetime:    lifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Attribute every request to the configured operator, then audit mutations
	r.Use(appmiddleware.WithOperator(cfg.OperatorName))
	r.Use(appmiddleware.AuditLogger(repos.Audit, logger))

	limitMutations := func(next http.Handler) http.Handler { return next }
	if cfg.MutationRateLimit > 0 {
		limitMutations = httprate.LimitByIP(cfg.MutationRateLimit, time.Minute)
	}

	r.Get("/", ctrl.Dashboard.Root)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "hirecentive-dashboard"}`)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.With(limitMutations).Post("/sidebar/toggle", ctrl.Pages.ToggleSidebar)

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", ctrl.Dashboard.Index)

		r.Route("/influencers", func(r chi.Router) {
			r.Get("/", ctrl.Influencers.Index)
			r.With(limitMutations).Post("/", ctrl.Influencers.Create)
			r.With(limitMutations).Post("/{id}/toggle", ctrl.Influencers.Toggle)
		})

		r.Get("/logs", ctrl.Logs.Index)

		r.Get("/profile", ctrl.Pages.ComingSoon)
		r.Get("/settings", ctrl.Pages.ComingSoon)
		r.Get("/resources", ctrl.Pages.ComingSoon)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/influencers", ctrl.API.ListInfluencers)
		r.With(limitMutations).Post("/influencers", ctrl.API.CreateInfluencer)
		r.With(limitMutations).Post("/influencers/{id}/toggle", ctrl.API.ToggleInfluencer)
		r.Get("/logs", ctrl.API.ListLogs)
		r.Get("/audit", ctrl.API.ListAudit)
	})

	return r, nil
}
