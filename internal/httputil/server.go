// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil exposes the operation dispatcher over HTTP.
package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pdiddy/doctool/internal/dispatch"
	"github.com/pdiddy/doctool/pkg/types"
)

// NewRouter builds the HTTP surface of the service. Every operation the
// dispatcher knows is reachable through POST /v1/call; GET /v1/ops lists
// them. Panics inside handlers are contained by chi's Recoverer in
// addition to the dispatcher's own guard.
func NewRouter(d *dispatch.Dispatcher, log zerolog.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/call", handleCall(d))
		r.Get("/ops", handleOps(d))
	})

	return r
}

// handleCall decodes a call request and runs it through the dispatcher.
// Malformed JSON is the only transport-level failure; everything else,
// including unknown operations, comes back as a 200 with success=false
// so clients only ever parse one envelope shape.
func handleCall(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CallRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, types.CallResponse{
				Success: false,
				Message: fmt.Sprintf("invalid request body: %v", err),
			})
			return
		}
		writeJSON(w, http.StatusOK, d.Call(req))
	}
}

func handleOps(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, d.Descriptors())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger emits one structured log line per request once the
// response is written.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(start)).
				Str("request_id", chimiddleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
