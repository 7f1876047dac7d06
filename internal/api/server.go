package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/mtlprog/lendstat/internal/investment"
	"github.com/mtlprog/lendstat/internal/metrics"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, tracker DashboardTracker, opts investment.Options, adminAPIKey string) *http.Server {
	handler := NewHandler(tracker, opts)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("POST /api/v1/dashboard/compute", handler.ComputeDashboard)

	updateHandler := http.HandlerFunc(handler.UpdateDashboard)
	if adminAPIKey != "" {
		mux.Handle("PUT /api/v1/dashboard", requireAuth(adminAPIKey, updateHandler))
	} else {
		mux.Handle("PUT /api/v1/dashboard", updateHandler)
	}

	mux.Handle("GET /metrics", metrics.Handler())

	return &http.Server{
		Addr:         ":" + port,
		Handler:      metrics.InstrumentHandler(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func requireAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
