package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	CategoryIDs []uint
}

// TaskPatch carries a partial update. Nil pointers mean "leave
// unchanged". CategoryIDs nil means associations stay untouched; a
// non-nil slice (including an empty one) replaces the full set.
type TaskPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Status       *model.TaskStatus
	CategoryIDs  *[]uint
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// Create validates the input and inserts the task with its initial
// category set. Status is always incomplete on creation, whatever the
// caller sent upstream.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	categoryIDs := dedupe(input.CategoryIDs)
	if err := s.ensureCategoriesExist(ctx, categoryIDs); err != nil {
		return nil, err
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      model.StatusIncomplete,
	}
	if err := s.taskRepo.Create(ctx, &task, categoryIDs); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByID(ctx, task.ID)
}

// Update applies the patch to an existing task. Only present fields are
// touched; a present CategoryIDs syncs the association set exactly.
func (s *TaskService) Update(ctx context.Context, taskID uint, patch TaskPatch) (*model.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.ClearDueDate {
		task.DueDate = nil
	} else if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	var categoryIDs []uint
	if patch.CategoryIDs != nil {
		categoryIDs = dedupe(*patch.CategoryIDs)
		if err := s.ensureCategoriesExist(ctx, categoryIDs); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	if patch.CategoryIDs != nil {
		if err := s.taskRepo.ReplaceCategories(ctx, task, categoryIDs); err != nil {
			return nil, err
		}
	}
	return s.taskRepo.FindByID(ctx, task.ID)
}

// Delete removes the task and its category associations.
func (s *TaskService) Delete(ctx context.Context, taskID uint) error {
	if _, err := s.findTask(ctx, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}

// List returns all tasks with categories eagerly loaded.
func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.ListAll(ctx)
}

// Get returns one task with categories eagerly loaded.
func (s *TaskService) Get(ctx context.Context, taskID uint) (*model.Task, error) {
	return s.findTask(ctx, taskID)
}

func (s *TaskService) findTask(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, &NotFoundError{Resource: "task", ID: taskID}
	case err != nil:
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

func (s *TaskService) ensureCategoriesExist(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.categoryRepo.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return invalidField("categories", "references a category that does not exist")
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return invalidField("title", "required")
	}
	if len(title) > 255 {
		return invalidField("title", "must be at most 255 characters")
	}
	return nil
}

func dedupe(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
