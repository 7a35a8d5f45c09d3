package core

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StateSource is what the HTTP routes read. Server implements it; tests can
// stub it.
type StateSource interface {
	Snapshot() Snapshot
	Level() LevelInfo
}

// RouterConfig contains the dependencies of the HTTP router.
type RouterConfig struct {
	State StateSource

	// Hub serves /ws. The route is not mounted when nil.
	Hub *Hub

	// RateLimiter guards /ws upgrades; nil leaves them unlimited. The caller
	// owns it and calls Stop.
	RateLimiter *IPRateLimiter

	DisableLogging bool
}

// NewRouter constructs the HTTP router. It starts no goroutines.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/level", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cfg.State.Level())
	})
	r.Get("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cfg.State.Snapshot())
	})

	if cfg.Hub != nil {
		ws := r.With()
		if cfg.RateLimiter != nil {
			ws = r.With(cfg.RateLimiter.Middleware)
		}
		ws.Get("/ws", cfg.Hub.HandleWebSocket)
	}
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
