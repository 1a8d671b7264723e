package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwhite7112/edulookup/internal/service"
)

// --- GET /lookups/recent?limit=&provider= ---

func handleRecentLookups(history *service.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if history == nil {
			jsonError(w, "lookup history is not configured", http.StatusServiceUnavailable)
			return
		}

		limit := 0
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				jsonError(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := history.ListRecent(r.Context(), r.URL.Query().Get("provider"), limit)
		if err != nil {
			jsonError(w, "failed to list lookups", http.StatusInternalServerError)
			return
		}
		jsonOK(w, map[string]any{"lookups": items})
	}
}

// --- GET /lookups/:id ---

func handleGetLookup(history *service.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if history == nil {
			jsonError(w, "lookup history is not configured", http.StatusServiceUnavailable)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}

		item, err := history.GetLookup(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				jsonError(w, "lookup not found", http.StatusNotFound)
				return
			}
			jsonError(w, "failed to get lookup", http.StatusInternalServerError)
			return
		}
		jsonOK(w, item)
	}
}
