package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// TaskRepository handles CRUD for tasks and their category links.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts the task and attaches the given categories as one
// transaction, so a failed attach leaves no task behind.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task, categoryIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return attach(tx, task, categoryIDs)
	})
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Preload("Categories").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListAll returns every task with categories eagerly loaded.
func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Preload("Categories").Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save persists field changes on an already-loaded task. Associations
// are managed separately via ReplaceCategories.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit("Categories").Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// ReplaceCategories swaps the task's association set for exactly the
// given ids: missing links are added, absent ones removed, surviving
// ones left alone.
func (r *TaskRepository) ReplaceCategories(ctx context.Context, task *model.Task, categoryIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.TaskCategory{}).Error; err != nil {
			return err
		}
		return attach(tx, task, categoryIDs)
	})
	if err != nil {
		return fmt.Errorf("replace task categories: %w", err)
	}
	return nil
}

// Delete removes the task row and its association rows.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// attach inserts association rows, skipping ones that already exist so
// repeated attaches stay idempotent.
func attach(tx *gorm.DB, task *model.Task, categoryIDs []uint) error {
	for _, id := range categoryIDs {
		link := model.TaskCategory{TaskID: task.ID, CategoryID: id}
		if err := tx.Where(&link).FirstOrCreate(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
