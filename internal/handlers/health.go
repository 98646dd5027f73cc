package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/dal"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// Analytics is the read side of the balance analytics sink
type Analytics interface {
	BalanceSummary(ctx context.Context, since time.Time) (models.BalanceSummary, error)
}

// Connectivity reports whether a broker connection is up
type Connectivity interface {
	Connected() bool
}

// HealthHandlers serves health, liveness and readiness probes
type HealthHandlers struct {
	store     dal.SessionDAL
	analytics Analytics
	broker    Connectivity
}

// NewHealthHandlers creates the health handlers. analytics and broker may be nil.
func NewHealthHandlers(store dal.SessionDAL, analytics Analytics, broker Connectivity) *HealthHandlers {
	return &HealthHandlers{store: store, analytics: analytics, broker: broker}
}

// Register mounts the health routes on mux
func (h *HealthHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/healthz", h.Liveness) // Kubernetes liveness probe
	mux.HandleFunc("/readyz", h.Readiness) // Kubernetes readiness probe
}

// Health reports the state of every dependency
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ok"
	httpStatus := http.StatusOK
	checks := make(map[string]interface{})

	unhealthy := func(name string, err error) {
		checks[name] = map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}
	degrade := func(name string, err error) {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		unhealthy(name, err)
	}

	// Check database connectivity
	if err := h.store.Ping(ctx); err != nil {
		degrade("database", err)
	} else {
		check := map[string]interface{}{"status": "healthy"}
		if n, err := h.store.CountSessions(ctx); err == nil {
			check["sessions"] = n
		}
		checks["database"] = check
	}

	// Analytics is best effort: balancing works without it
	if h.analytics != nil {
		summary, err := h.analytics.BalanceSummary(ctx, time.Now().Add(-24*time.Hour))
		if err != nil {
			unhealthy("analytics", err)
		} else {
			checks["analytics"] = map[string]interface{}{
				"status":          "healthy",
				"balances_24h":    summary.Balances,
				"mean_spread_24h": summary.MeanSpread,
			}
		}
	} else {
		checks["analytics"] = map[string]interface{}{"status": "not_configured"}
	}

	if h.broker != nil {
		if h.broker.Connected() {
			checks["nats"] = map[string]interface{}{"status": "healthy"}
		} else {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			checks["nats"] = map[string]interface{}{"status": "disconnected"}
		}
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Unix(),
		"checks":    checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(response)
}

// Liveness handles Kubernetes liveness probes
// Returns 200 if the application is running (doesn't check dependencies)
func (h *HealthHandlers) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "alive",
		"timestamp": time.Now().Unix(),
	})
}

// Readiness handles Kubernetes readiness probes
// Only the session store is critical for serving traffic
func (h *HealthHandlers) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := h.store.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "not_ready",
			"reason":    "database_unavailable",
			"timestamp": time.Now().Unix(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ready",
		"timestamp": time.Now().Unix(),
	})
}
