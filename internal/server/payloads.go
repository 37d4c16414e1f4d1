package server

import (
	"fmt"
	"time"
)

type categoryIn struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type createTaskIn struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date,omitempty"`
	Categories  []uint  `json:"categories,omitempty"`
}

type patchTaskIn struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"` // empty string clears the due date
	Status      *string `json:"status,omitempty"`
	Categories  *[]uint `json:"categories,omitempty"`
}

// parseDueDate accepts RFC 3339 timestamps or bare dates.
func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
