package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tasktrack/internal/model"
	"tasktrack/internal/query"
	"tasktrack/internal/repository"
)

// DigestService builds human-readable summaries of urgent tasks for
// periodic notifications.
type DigestService struct {
	taskRepo *repository.TaskRepository
}

func NewDigestService(taskRepo *repository.TaskRepository) *DigestService {
	return &DigestService{taskRepo: taskRepo}
}

// UrgentSummary lists incomplete tasks that are overdue or due within
// the urgency window, closest deadline first. Returns an empty string
// when nothing is urgent so callers can skip the notification.
func (s *DigestService) UrgentSummary(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	status := model.StatusIncomplete
	open := query.ByStatus(tasks, &status)

	var urgent []model.Task
	for _, task := range open {
		if query.IsUrgent(task.DueDate, now) {
			urgent = append(urgent, task)
		}
	}
	if len(urgent) == 0 {
		return "", nil
	}
	urgent = query.Sort(urgent, query.SortByDueDate, query.Asc)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 Urgent tasks — %s\n", now.Format("2006-01-02")))
	for _, task := range urgent {
		b.WriteString(formatUrgentLine(task, now))
	}
	return strings.TrimSpace(b.String()), nil
}

func formatUrgentLine(task model.Task, now time.Time) string {
	var b strings.Builder

	due := task.DueDate.In(now.Location())
	if now.After(due) {
		b.WriteString(fmt.Sprintf("⚠️ %s — overdue since %s", strings.TrimSpace(task.Title), due.Format("2006-01-02")))
	} else {
		b.WriteString(fmt.Sprintf("⏳ %s — due %s", strings.TrimSpace(task.Title), due.Format("2006-01-02")))
	}

	if len(task.Categories) > 0 {
		names := make([]string, 0, len(task.Categories))
		for _, c := range task.Categories {
			names = append(names, c.Name)
		}
		b.WriteString(fmt.Sprintf(" (%s)", strings.Join(names, "; ")))
	}

	b.WriteByte('\n')
	return b.String()
}
