// Package query narrows and orders an already-loaded task collection.
// Every function is pure: inputs are never mutated and no I/O happens,
// so calls are safe from any goroutine.
package query

import (
	"sort"
	"strings"
	"time"

	"tasktrack/internal/model"
)

// SortField names a sortable task column.
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByDueDate   SortField = "due_date"
	SortByCreatedAt SortField = "created_at"
)

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseSortField maps a raw string onto a known sort field.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortByTitle, SortByDueDate, SortByCreatedAt:
		return SortField(s), true
	default:
		return "", false
	}
}

// UrgentWindow is how far ahead of now a due date still counts as
// urgent. Anything already overdue is urgent too.
const UrgentWindow = 48 * time.Hour

// ByStatus keeps tasks whose status equals the given one. A nil status
// passes everything through.
func ByStatus(tasks []model.Task, status *model.TaskStatus) []model.Task {
	if status == nil {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == *status {
			out = append(out, t)
		}
	}
	return out
}

// ByCategories keeps tasks linked to any of the selected categories.
// An empty selection passes everything through.
func ByCategories(tasks []model.Task, categoryIDs []uint) []model.Task {
	if len(categoryIDs) == 0 {
		return tasks
	}
	selected := make(map[uint]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		selected[id] = struct{}{}
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		for _, c := range t.Categories {
			if _, ok := selected[c.ID]; ok {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// Sort returns a copy ordered by the given field. The sort is stable,
// so equal keys keep their input order. Tasks without a due date go
// last for either direction.
func Sort(tasks []model.Task, field SortField, dir Direction) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	less := lessFunc(field)
	if dir == Desc {
		inner := less
		less = func(a, b model.Task) bool { return inner(b, a) }
	}
	if field == SortByDueDate {
		// Unset due dates stay last regardless of direction.
		inner := less
		less = func(a, b model.Task) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			default:
				return inner(a, b)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field SortField) func(a, b model.Task) bool {
	switch field {
	case SortByTitle:
		return func(a, b model.Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByDueDate:
		return func(a, b model.Task) bool {
			return a.DueDate.Before(*b.DueDate)
		}
	default:
		return func(a, b model.Task) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
}

// IsUrgent reports whether the due date has passed or falls within the
// urgency window of now. Tasks without a due date are never urgent.
func IsUrgent(dueDate *time.Time, now time.Time) bool {
	if dueDate == nil {
		return false
	}
	return dueDate.Sub(now) <= UrgentWindow
}
