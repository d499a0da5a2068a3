package server

import (
	"context"
	"net/http"
	"time"

	"github.com/ahmed-elbehidy/bill-management-system/httpx"
	"github.com/ahmed-elbehidy/bill-management-system/internal/handlers"
	"github.com/ahmed-elbehidy/bill-management-system/internal/logger"
	"github.com/ahmed-elbehidy/bill-management-system/internal/middleware"
	"github.com/ahmed-elbehidy/bill-management-system/internal/ui"
	"github.com/google/uuid"
)

// Pinger reports storage health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(c *ui.Controller, db Pinger) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	bh := handlers.NewBillHandler(c)
	mux.HandleFunc("GET /{$}", bh.Index)
	mux.HandleFunc("GET /menu", bh.Menu)
	mux.HandleFunc("POST /bill", bh.Total)
	mux.HandleFunc("POST /reset", bh.Reset)

	hh := handlers.NewHistoryHandler(c)
	mux.HandleFunc("GET /orders", hh.List)

	return middleware.Prefs(withRecover(withLogging(mux)))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.GetLogger().Infow("request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.GetLogger().Errorw("panic in handler", "path", r.URL.Path, "panic", rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
