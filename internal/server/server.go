// Package server is the HTTP adapter: JSON for CRUD, CSV for export.
// Authentication happens upstream; the acting user arrives as the
// X-User-ID header.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"tasktrack/internal/service"
)

// Server carries the handler dependencies.
type Server struct {
	log        *slog.Logger
	categories *service.CategoryService
	tasks      *service.TaskService
}

func New(log *slog.Logger, categories *service.CategoryService, tasks *service.TaskService) *Server {
	return &Server{log: log, categories: categories, tasks: tasks}
}

// Handler builds the route table wrapped in request-id and logging
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true}, http.StatusOK)
	})
	mux.HandleFunc("GET /api/taxonomy", s.handleTaxonomy)

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleCreateCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("GET /api/tasks/export", s.handleExportTasks)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleGetTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)

	return withRequestID(withLogging(s.log, mux))
}

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, msg string, statusCode int) {
	writeJSON(w, map[string]any{"error": msg}, statusCode)
}

// userID extracts the authenticated identity set by the upstream auth
// layer.
func userID(r *http.Request) (uint, bool) {
	raw := r.Header.Get("X-User-ID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
