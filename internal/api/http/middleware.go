package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"vo-qc-service/internal/models"
	"vo-qc-service/internal/observability/metrics"
)

// RequestLogger logs every HTTP request with its status and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("requestId", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}

// Recoverer converts a panic during request handling into a JSON error
// response and records the request-level failure. Per-item errors never
// reach this path; only a truly unexpected fault does.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("requestId", middleware.GetReqID(r.Context())).
					Msg("Request handler panicked")
				metrics.DefaultMetrics.RecordAnalysisFailed()

				writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
					Status: "error",
					Error:  "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
