package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type CategoryUseCase struct {
	Repo  CategoryRepositoryInterface
	Queue EventPublisherInterface
}

func NewCategoryUseCase(repo CategoryRepositoryInterface, queue EventPublisherInterface) *CategoryUseCase {
	return &CategoryUseCase{Repo: repo, Queue: queue}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if categories == nil {
		categories = []*entity.Category{}
	}
	return categories, nil
}

func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if category == nil {
		return nil, NewNotFound("category")
	}
	return category, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	if validationErrors := ValidateCategoryInput(input); len(validationErrors) > 0 {
		return nil, NewValidationFailed(validationErrors)
	}

	slug := input.Slug
	if strings.TrimSpace(slug) == "" {
		slug = entity.GenerateSlug(input.Name)
	}

	existing, err := uc.Repo.FindByNameOrSlug(ctx, input.Name, slug)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if existing != nil {
		return nil, NewDuplicateCategory()
	}

	category := entity.NewCategory(input.Name, slug)
	if err := uc.Repo.Create(ctx, category); err != nil {
		return nil, translateCategoryError(err)
	}

	publishInvalidation(ctx, uc.Queue, "category", category.ID, "created")
	return category, nil
}

// Update renames a category. The slug is never regenerated from a new
// name; it only changes when supplied explicitly.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, input UpdateCategoryInput) (*entity.Category, error) {
	if validationErrors := ValidateUpdateCategoryInput(input); len(validationErrors) > 0 {
		return nil, NewValidationFailed(validationErrors)
	}

	category, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if category == nil {
		return nil, NewNotFound("category")
	}

	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.Slug != nil {
		category.Slug = strings.ToLower(strings.TrimSpace(*input.Slug))
	}
	category.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, category); err != nil {
		return nil, translateCategoryError(err)
	}

	publishInvalidation(ctx, uc.Queue, "category", category.ID, "updated")
	return category, nil
}

// Delete removes the category without touching referencing leads; readers
// render those as "Unknown Category".
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return translateCategoryError(err)
	}

	publishInvalidation(ctx, uc.Queue, "category", id, "deleted")
	return nil
}
