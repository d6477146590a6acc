package rest

import (
	"net/http"

	"paperplay-backend/application/commands"
	"paperplay-backend/application/commands/bus"
	querybus "paperplay-backend/application/queries/bus"
	"paperplay-backend/infrastructure/config"
	"paperplay-backend/interfaces/http/rest/handlers"
	"paperplay-backend/interfaces/http/rest/middleware"
	pkgerrors "paperplay-backend/pkg/errors"
	"paperplay-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg           *config.Config
	commandBus    *bus.CommandBus
	queryBus      *querybus.QueryBus
	processPaper  *commands.ProcessPaperHandler
	createSession *commands.CreateSessionHandler
	endSession    *commands.EndSessionHandler
	errorHandler  *pkgerrors.ErrorHandler
	metrics       *observability.Collector
	ipLimiter     middleware.RequestLimiter
	userLimiter   middleware.RequestLimiter
	logger        *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	processPaper *commands.ProcessPaperHandler,
	createSession *commands.CreateSessionHandler,
	endSession *commands.EndSessionHandler,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	ipLimiter middleware.RequestLimiter,
	userLimiter middleware.RequestLimiter,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:           cfg,
		commandBus:    commandBus,
		queryBus:      queryBus,
		processPaper:  processPaper,
		createSession: createSession,
		endSession:    endSession,
		errorHandler:  errorHandler,
		metrics:       metrics,
		ipLimiter:     ipLimiter,
		userLimiter:   userLimiter,
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.paperplay.dev"},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health and observability endpoints stay outside auth
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.cfg, rt.ipLimiter, rt.userLimiter))

		paperHandler := handlers.NewPaperHandler(rt.processPaper, rt.errorHandler, rt.metrics, rt.cfg.MaxPaperBytes, rt.logger)
		r.Post("/papers", paperHandler.ProcessPaper)

		gameHandler := handlers.NewGameHandler(rt.queryBus, rt.errorHandler, rt.logger)
		r.Get("/games/{gameID}", gameHandler.GetGame)

		sessionHandler := handlers.NewSessionHandler(
			rt.createSession,
			rt.endSession,
			rt.commandBus,
			rt.queryBus,
			rt.errorHandler,
			rt.metrics,
			rt.logger,
		)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.CreateSession)
			r.Get("/{sessionID}", sessionHandler.GetSession)
			r.Patch("/{sessionID}", sessionHandler.UpdateSession)
			r.Post("/{sessionID}/end", sessionHandler.EndSession)
		})

		progressHandler := handlers.NewProgressHandler(rt.queryBus, rt.errorHandler, rt.logger)
		r.Get("/users/{userID}/progress", progressHandler.GetUserProgress)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
