package server

import (
	"encoding/json"
	"net/http"

	"tasktrack/internal/service"
	"tasktrack/internal/taxonomy"
)

func (s *Server) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"colors": taxonomy.Colors,
		"styles": taxonomy.Styles,
		"presets": map[string]any{
			"categories": taxonomy.CategoryPresets,
			"priorities": taxonomy.PriorityPresets,
			"tags":       taxonomy.TagPresets,
		},
	}, http.StatusOK)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, "missing user identity", http.StatusUnauthorized)
		return
	}

	categories, err := s.categories.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"categories": categories}, http.StatusOK)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, "missing user identity", http.StatusUnauthorized)
		return
	}

	var in categoryIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid json", http.StatusBadRequest)
		return
	}

	category, err := s.categories.Create(r.Context(), uid, service.CategoryInput{Name: in.Name, Color: in.Color})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, category, http.StatusCreated)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, "missing user identity", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var in categoryIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid json", http.StatusBadRequest)
		return
	}

	category, err := s.categories.Update(r.Context(), uid, id, service.CategoryInput{Name: in.Name, Color: in.Color})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, category, http.StatusOK)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, "missing user identity", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.categories.Delete(r.Context(), uid, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true}, http.StatusOK)
}
