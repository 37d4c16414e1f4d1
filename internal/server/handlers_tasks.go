package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tasktrack/internal/export"
	"tasktrack/internal/model"
	"tasktrack/internal/query"
	"tasktrack/internal/service"
)

// taskView decorates a task with the computed urgency flag for table
// rendering.
type taskView struct {
	model.Task
	Urgent bool `json:"urgent"`
}

func toViews(tasks []model.Task, now time.Time) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskView{Task: t, Urgent: query.IsUrgent(t.DueDate, now)})
	}
	return views
}

// listFilter is the parsed query-string filter/sort selection.
type listFilter struct {
	status      *model.TaskStatus
	categoryIDs []uint
	sortField   query.SortField
	direction   query.Direction
}

func parseListFilter(values url.Values) (listFilter, error) {
	f := listFilter{direction: query.Asc}

	if raw := values.Get("status"); raw != "" {
		status, ok := model.ParseTaskStatus(raw)
		if !ok {
			return f, &service.ValidationError{Field: "status", Reason: "must be incomplete or complete"}
		}
		f.status = &status
	}
	for _, raw := range values["category"] {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return f, &service.ValidationError{Field: "category", Reason: "must be a positive integer id"}
		}
		f.categoryIDs = append(f.categoryIDs, uint(id))
	}
	if raw := values.Get("sort"); raw != "" {
		field, ok := query.ParseSortField(raw)
		if !ok {
			return f, &service.ValidationError{Field: "sort", Reason: "must be title, due_date or created_at"}
		}
		f.sortField = field
	}
	if raw := values.Get("order"); raw != "" {
		switch query.Direction(raw) {
		case query.Asc, query.Desc:
			f.direction = query.Direction(raw)
		default:
			return f, &service.ValidationError{Field: "order", Reason: "must be asc or desc"}
		}
	}
	return f, nil
}

func (f listFilter) apply(tasks []model.Task) []model.Task {
	tasks = query.ByStatus(tasks, f.status)
	tasks = query.ByCategories(tasks, f.categoryIDs)
	if f.sortField != "" {
		tasks = query.Sort(tasks, f.sortField, f.direction)
	}
	return tasks
}

func (s *Server) filteredTasks(r *http.Request) ([]model.Task, error) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		return nil, err
	}
	return filter.apply(tasks), nil
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.filteredTasks(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"tasks": toViews(tasks, time.Now())}, http.StatusOK)
}

func (s *Server) handleExportTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.filteredTasks(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	now := time.Now()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(now)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.TasksCSV(tasks, export.TaskColumns)))
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	task, err := s.tasks.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, taskView{Task: *task, Urgent: query.IsUrgent(task.DueDate, time.Now())}, http.StatusOK)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var in createTaskIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid json", http.StatusBadRequest)
		return
	}

	input := service.TaskInput{
		Title:       in.Title,
		Description: in.Description,
		CategoryIDs: in.Categories,
	}
	if in.DueDate != nil && *in.DueDate != "" {
		due, err := parseDueDate(*in.DueDate)
		if err != nil {
			writeError(w, "invalid due_date", http.StatusBadRequest)
			return
		}
		input.DueDate = &due
	}

	task, err := s.tasks.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, task, http.StatusCreated)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var in patchTaskIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid json", http.StatusBadRequest)
		return
	}

	patch := service.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		CategoryIDs: in.Categories,
	}
	if in.DueDate != nil {
		if *in.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			due, err := parseDueDate(*in.DueDate)
			if err != nil {
				writeError(w, "invalid due_date", http.StatusBadRequest)
				return
			}
			patch.DueDate = &due
		}
	}
	if in.Status != nil {
		status, ok := model.ParseTaskStatus(*in.Status)
		if !ok {
			writeError(w, "invalid status", http.StatusBadRequest)
			return
		}
		patch.Status = &status
	}

	task, err := s.tasks.Update(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, task, http.StatusOK)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.tasks.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true}, http.StatusOK)
}
