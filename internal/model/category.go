package model

import "time"

// Category is a user-owned label attachable to tasks. UniqueID is a
// human-readable slug derived from the name, unique per user.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_user_unique_id" json:"user_id"`
	Name      string    `gorm:"size:255" json:"name"`
	UniqueID  string    `gorm:"size:255;uniqueIndex:idx_user_unique_id" json:"unique_id"`
	Color     string    `gorm:"size:32" json:"color"`
	Icon      string    `gorm:"size:64" json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskCategory is the task↔category association row. Existence implies
// membership only; it carries no attributes of its own.
type TaskCategory struct {
	TaskID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

func (TaskCategory) TableName() string {
	return "task_categories"
}
