package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// CategoryRepository manages user-owned category records.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByUser returns the user's categories in insertion order.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

// Delete removes the category and its task associations in one
// transaction. The tasks themselves are untouched.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.TaskCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// UniqueIDExists reports whether the user already has a category with
// the given slug.
func (r *CategoryRepository) UniqueIDExists(ctx context.Context, userID uint, uniqueID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("user_id = ? AND unique_id = ?", userID, uniqueID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check unique id: %w", err)
	}
	return count > 0, nil
}

// CountByIDs counts how many of the given category ids exist.
func (r *CategoryRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
