// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/SYLESH-1125/SIH/internal/api/rpc"
	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/engine"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, assistant *engine.Assistant, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	// Health checks (unauthenticated)
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"agri-assist"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready"}`))
	})

	queryHandler := NewQueryHandler(logger, assistant)
	kbHandler := NewKnowledgeHandler(logger, assistant.Store())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/query", queryHandler.Answer)

		r.Route("/kb", func(r chi.Router) {
			r.Get("/categories", kbHandler.ListCategories)
			r.Get("/entries", kbHandler.ListEntries)
			r.Get("/entries/{category}/{item}", kbHandler.GetEntry)
		})
	})

	// Connect RPC surface alongside REST.
	assistService := rpc.NewAssistService(logger, assistant)
	path, handler := assistService.Handler()
	r.Handle(path, handler)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
