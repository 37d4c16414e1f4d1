package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// A pooled second connection would see its own empty in-memory
	// database, so pin the pool to one.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := repository.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newServices(t *testing.T) (*gorm.DB, *CategoryService, *TaskService) {
	t.Helper()

	db := newTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	return db, NewCategoryService(categoryRepo), NewTaskService(taskRepo, categoryRepo)
}

func mustCreateCategory(t *testing.T, svc *CategoryService, userID uint, name, color string) *model.Category {
	t.Helper()

	category, err := svc.Create(context.Background(), userID, CategoryInput{Name: name, Color: color})
	if err != nil {
		t.Fatalf("failed to prepare category: %v", err)
	}
	return category
}

func mustCreateTask(t *testing.T, svc *TaskService, input TaskInput) *model.Task {
	t.Helper()

	task, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("failed to prepare task: %v", err)
	}
	return task
}

func categoryIDs(task *model.Task) []uint {
	out := make([]uint, 0, len(task.Categories))
	for _, c := range task.Categories {
		out = append(out, c.ID)
	}
	return out
}

func linkCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&model.TaskCategory{}).Count(&count).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	return count
}
