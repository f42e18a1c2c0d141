package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SYLESH-1125/SIH/internal/engine"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

// QueryHandler serves answer requests.
type QueryHandler struct {
	logger    *observability.Logger
	assistant *engine.Assistant
}

// NewQueryHandler creates a query handler.
func NewQueryHandler(logger *observability.Logger, assistant *engine.Assistant) *QueryHandler {
	return &QueryHandler{logger: logger, assistant: assistant}
}

// Answer handles POST /api/v1/query.
func (h *QueryHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req engine.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	resp := h.assistant.Answer(r.Context(), req)
	respondJSON(w, http.StatusOK, resp)
}

// KnowledgeHandler serves read-only knowledge-base endpoints.
type KnowledgeHandler struct {
	logger *observability.Logger
	store  *knowledge.Store
}

// NewKnowledgeHandler creates a knowledge handler.
func NewKnowledgeHandler(logger *observability.Logger, store *knowledge.Store) *KnowledgeHandler {
	return &KnowledgeHandler{logger: logger, store: store}
}

// ListCategories handles GET /api/v1/kb/categories.
func (h *KnowledgeHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"categories": h.store.Categories(),
		"entries":    h.store.Len(),
	})
}

// ListEntries handles GET /api/v1/kb/entries. An optional category
// query parameter filters the list.
func (h *KnowledgeHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var keys []knowledge.Key
	for _, e := range h.store.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		keys = append(keys, e.Key())
	}
	respondJSON(w, http.StatusOK, map[string]any{"entries": keys})
}

// GetEntry handles GET /api/v1/kb/entries/{category}/{item}.
func (h *KnowledgeHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	item := chi.URLParam(r, "item")

	entry, ok := h.store.Get(category, item)
	if !ok {
		respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
