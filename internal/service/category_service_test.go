package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateCategorySlugSuffixesOnCollision(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)
	ctx := context.Background()

	first := mustCreateCategory(t, categories, 1, "Work", "blue")
	second := mustCreateCategory(t, categories, 1, "Work", "red")
	third, err := categories.Create(ctx, 1, CategoryInput{Name: "Work", Color: "green"})
	if err != nil {
		t.Fatalf("third create failed: %v", err)
	}

	if first.UniqueID != "work" {
		t.Fatalf("expected slug %q, got %q", "work", first.UniqueID)
	}
	if second.UniqueID != "work-1" {
		t.Fatalf("expected slug %q, got %q", "work-1", second.UniqueID)
	}
	if third.UniqueID != "work-2" {
		t.Fatalf("expected slug %q, got %q", "work-2", third.UniqueID)
	}
}

func TestCreateCategorySlugIsPerUser(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)

	mine := mustCreateCategory(t, categories, 1, "Work", "blue")
	theirs := mustCreateCategory(t, categories, 2, "Work", "blue")

	if mine.UniqueID != "work" || theirs.UniqueID != "work" {
		t.Fatalf("expected both users to get %q, got %q and %q", "work", mine.UniqueID, theirs.UniqueID)
	}
}

func TestCreateCategoryCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)

	category := mustCreateCategory(t, categories, 1, "  Deep   Work ", "purple")
	if category.UniqueID != "deep-work" {
		t.Fatalf("expected slug %q, got %q", "deep-work", category.UniqueID)
	}
}

func TestCreateCategoryAssignsDefaultIcon(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)

	category := mustCreateCategory(t, categories, 1, "Health", "red")
	if category.Icon != "tag" {
		t.Fatalf("expected default icon, got %q", category.Icon)
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CategoryInput
		field string
	}{
		{"empty name", CategoryInput{Name: "", Color: "blue"}, "name"},
		{"digits in name", CategoryInput{Name: "Work 2025", Color: "blue"}, "name"},
		{"punctuation in name", CategoryInput{Name: "Work!", Color: "blue"}, "name"},
		{"unknown color", CategoryInput{Name: "Work", Color: "magenta"}, "color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := categories.Create(ctx, 1, tc.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestUpdateCategoryKeepsSlugAcrossRename(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)
	ctx := context.Background()

	category := mustCreateCategory(t, categories, 1, "Work", "blue")
	updated, err := categories.Update(ctx, 1, category.ID, CategoryInput{Name: "Office", Color: "gray"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Name != "Office" || updated.Color != "gray" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.UniqueID != "work" {
		t.Fatalf("slug changed on rename: %q", updated.UniqueID)
	}
}

func TestUpdateCategoryRejectsNonOwner(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)
	ctx := context.Background()

	category := mustCreateCategory(t, categories, 1, "Work", "blue")
	_, err := categories.Update(ctx, 2, category.ID, CategoryInput{Name: "Stolen", Color: "red"})
	var aerr *AuthorizationError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestUpdateCategoryMissingTarget(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)

	_, err := categories.Update(context.Background(), 1, 999, CategoryInput{Name: "Ghost", Color: "red"})
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteCategoryRejectsNonOwner(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)

	category := mustCreateCategory(t, categories, 1, "Work", "blue")
	err := categories.Delete(context.Background(), 2, category.ID)
	var aerr *AuthorizationError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestDeleteCategoryCascadesLinksOnly(t *testing.T) {
	t.Parallel()

	db, categories, tasks := newServices(t)
	ctx := context.Background()

	category := mustCreateCategory(t, categories, 1, "Work", "blue")
	first := mustCreateTask(t, tasks, TaskInput{Title: "Report", CategoryIDs: []uint{category.ID}})
	second := mustCreateTask(t, tasks, TaskInput{Title: "Slides", CategoryIDs: []uint{category.ID}})

	if err := categories.Delete(ctx, 1, category.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if got := linkCount(t, db); got != 0 {
		t.Fatalf("expected no association rows, got %d", got)
	}
	for _, id := range []uint{first.ID, second.ID} {
		task, err := tasks.Get(ctx, id)
		if err != nil {
			t.Fatalf("task %d missing after category delete: %v", id, err)
		}
		if len(task.Categories) != 0 {
			t.Fatalf("task %d still has categories: %v", id, categoryIDs(task))
		}
		if task.Status != "incomplete" {
			t.Fatalf("task %d status changed: %q", id, task.Status)
		}
	}
}

func TestListCategoriesScopedAndOrdered(t *testing.T) {
	t.Parallel()

	_, categories, _ := newServices(t)
	ctx := context.Background()

	b := mustCreateCategory(t, categories, 1, "Banana", "yellow")
	a := mustCreateCategory(t, categories, 1, "Apple", "red")
	mustCreateCategory(t, categories, 2, "Other", "gray")

	got, err := categories.List(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	// Insertion order, not alphabetical.
	if got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("expected insertion order [%d %d], got [%d %d]", b.ID, a.ID, got[0].ID, got[1].ID)
	}
}
