package model

import "time"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	StatusIncomplete TaskStatus = "incomplete"
	StatusComplete   TaskStatus = "complete"
)

// ParseTaskStatus maps a raw string onto a known status.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case StatusIncomplete, StatusComplete:
		return TaskStatus(s), true
	default:
		return "", false
	}
}

// Task is a single to-do item. Tasks are not user-scoped; ownership
// applies to categories only.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255" json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      TaskStatus `gorm:"size:16;default:incomplete" json:"status"`
	Categories  []Category `gorm:"many2many:task_categories" json:"categories"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HasCategory reports whether the task is linked to the given category.
func (t Task) HasCategory(categoryID uint) bool {
	for _, c := range t.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
