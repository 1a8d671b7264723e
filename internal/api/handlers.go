package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwhite7112/edulookup/internal/lookup"
	"github.com/mwhite7112/edulookup/internal/provider"
	"github.com/mwhite7112/edulookup/internal/service"
)

// NewRouter wires all routes. history and mcp may be nil; the audit routes
// then answer 503 and /mcp is not mounted.
func NewRouter(registry *service.Registry, history *service.HistoryService, mcp http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Get("/providers", handleListProviders(registry))
	r.Get("/lookup", handleLookup(registry))
	r.Get("/lookups/recent", handleRecentLookups(history))
	r.Get("/lookups/{id}", handleGetLookup(history))

	if mcp != nil {
		r.Handle("/mcp", mcp)
		r.Handle("/mcp/*", mcp)
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET /providers ---

type providerView struct {
	provider.Profile
	Default bool `json:"default"`
}

func handleListProviders(registry *service.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles := registry.Profiles()
		out := make([]providerView, 0, len(profiles))
		for i, p := range profiles {
			out = append(out, providerView{Profile: p, Default: i == 0})
		}
		jsonOK(w, map[string]any{"providers": out})
	}
}

// --- GET /lookup?q=&collection=&provider= ---

type lookupResponse struct {
	Provider   string           `json:"provider"`
	Query      string           `json:"query"`
	Collection string           `json:"collection"`
	Count      int              `json:"count"`
	Results    []provider.Entry `json:"results"`
}

func handleLookup(registry *service.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		svc, err := registry.Get(q.Get("provider"))
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}

		rs, err := svc.Lookup(r.Context(), q.Get("q"), q.Get("collection"))
		if err != nil {
			writeLookupError(w, err)
			return
		}

		jsonOK(w, lookupResponse{
			Provider:   rs.Provider,
			Query:      rs.Query,
			Collection: rs.Collection,
			Count:      rs.Len(),
			Results:    svc.Profile().Fields.Entries(rs),
		})
	}
}

// writeLookupError maps the lookup error taxonomy onto HTTP statuses.
func writeLookupError(w http.ResponseWriter, err error) {
	var (
		terr *lookup.TransportError
		nerr *lookup.NormalizationError
	)
	switch {
	case errors.Is(err, lookup.ErrUnknownCollection), errors.Is(err, service.ErrUnknownProvider):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &terr):
		status := http.StatusBadGateway
		if terr.Timeout() {
			status = http.StatusGatewayTimeout
		}
		writeJSON(w, status, map[string]any{
			"error":           "provider unavailable",
			"kind":            "transport",
			"provider_status": terr.StatusCode,
			"detail":          terr.Message,
		})
	case errors.As(err, &nerr):
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":      "provider response not understood",
			"kind":       nerr.Kind.String(),
			"detail":     nerr.Message,
			"diagnostic": nerr.Diagnostic(),
		})
	default:
		slog.Error("lookup failed", "error", err)
		jsonError(w, "lookup failed", http.StatusInternalServerError)
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
