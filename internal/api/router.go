package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/matchbook-go/internal/api/handler"
	"github.com/mcoot/matchbook-go/internal/api/middleware"
	"github.com/mcoot/matchbook-go/internal/dependencies/clock"
	"github.com/mcoot/matchbook-go/internal/services/ledger"
	matchsvc "github.com/mcoot/matchbook-go/internal/services/match"
	"github.com/mcoot/matchbook-go/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	LedgerService   *ledger.Service
	MatchController *matchsvc.Controller
	Storage         storage.Storage
	Clock           clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.LedgerService)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.LedgerService, cfg.Clock)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/deposit", playerHandler.Deposit).Methods(http.MethodPost)

	// Match routes
	api.HandleFunc("/matches", matchHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/matches", matchHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", matchHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}/award/{player_id}", matchHandler.Award).Methods(http.MethodPost)
	api.HandleFunc("/matches/{id}/end", matchHandler.End).Methods(http.MethodPost)
	api.HandleFunc("/matches/{id}/disqualify/{player_id}", matchHandler.Disqualify).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.Storage)).Methods(http.MethodGet)

	return r
}

func healthHandler(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
