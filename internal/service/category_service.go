package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"
	"tasktrack/internal/taxonomy"
)

var categoryNamePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

// CategoryInput carries the user-editable category fields.
type CategoryInput struct {
	Name  string
	Color string
}

// CategoryService owns validation, slug generation and ownership checks
// for user categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create validates the input, derives a per-user-unique slug from the
// name and persists the category with the default icon.
func (s *CategoryService) Create(ctx context.Context, userID uint, input CategoryInput) (*model.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	uniqueID, err := s.uniqueSlug(ctx, userID, input.Name)
	if err != nil {
		return nil, err
	}

	category := model.Category{
		UserID:   userID,
		Name:     input.Name,
		UniqueID: uniqueID,
		Color:    input.Color,
		Icon:     taxonomy.DefaultIcon,
	}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update renames or recolors an owned category. The slug is kept stable
// across renames so links held elsewhere stay valid.
func (s *CategoryService) Update(ctx context.Context, userID, categoryID uint, input CategoryInput) (*model.Category, error) {
	category, err := s.ownedCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Color = input.Color
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes an owned category. Task associations go with it; the
// tasks themselves stay.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uint) error {
	category, err := s.ownedCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, category.ID)
}

// List returns the user's categories in insertion order.
func (s *CategoryService) List(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *CategoryService) ownedCategory(ctx context.Context, userID, categoryID uint) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, categoryID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, &NotFoundError{Resource: "category", ID: categoryID}
	case err != nil:
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category.UserID != userID {
		return nil, &AuthorizationError{Resource: "category", ID: categoryID}
	}
	return category, nil
}

// uniqueSlug lowercases the trimmed name, collapses whitespace runs to
// single hyphens and appends -1, -2, … until the slug is free for the
// user.
func (s *CategoryService) uniqueSlug(ctx context.Context, userID uint, name string) (string, error) {
	base := strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(name)), "-"))

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := s.repo.UniqueIDExists(ctx, userID, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func validateCategoryInput(input CategoryInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return invalidField("name", "required")
	}
	if len(input.Name) > 255 {
		return invalidField("name", "must be at most 255 characters")
	}
	if !categoryNamePattern.MatchString(input.Name) {
		return invalidField("name", "must contain only letters and spaces")
	}
	if !taxonomy.ValidColor(input.Color) {
		return invalidField("color", "not in the palette")
	}
	return nil
}
