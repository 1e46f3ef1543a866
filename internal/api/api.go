// Package api exposes the search server's two HTTP routes: GET /api/search
// and GET /api/text. It is a thin collaborator: its only contract with the
// suffix-tree core is invoking [*suffixtree.Tree.Search] and relaying the
// indexed text verbatim.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AntonChernev/suffix-tree-search/internal/suffixtree"
)

// Handler serves the search API. The zero value is not usable; construct one
// with [NewHandler].
type Handler struct {
	tree              *suffixtree.Tree
	defaultContextLen int
	logger            *slog.Logger
}

// NewHandler returns a Handler backed by tree. defaultContextLen is used for
// requests that omit the "context" query parameter.
func NewHandler(tree *suffixtree.Tree, defaultContextLen int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{tree: tree, defaultContextLen: defaultContextLen, logger: logger}
}

// Routes registers the API's routes on mux, wrapping each in panic recovery
// so that a [suffixtree.CorruptionError] — which indicates a bug and is
// never recovered from inside the core — still yields a 500 response
// instead of taking down the server.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.Handle("GET /api/search", h.recovered(h.handleSearch))
	mux.Handle("GET /api/text", h.recovered(h.handleText))
}

func (h *Handler) recovered(handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error("panic handling request", "path", r.URL.Path, "panic", rec)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		handler(w, r)
	})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	part := q.Get("part")

	contextLen := h.defaultContextLen
	if raw := q.Get("context"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "context must be a non-negative integer", http.StatusBadRequest)
			return
		}
		contextLen = n
	}

	results := h.tree.Search(part, contextLen)
	h.logger.Info("search", "part", part, "context", contextLen, "matches", len(results))
	if results == nil {
		results = []string{} // a JSON array, never null, even with zero matches
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.logger.Error("encoding search response", "error", err)
	}
}

func (h *Handler) handleText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.tree.Text()))
}
