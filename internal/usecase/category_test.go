package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

func newCategoryFixture() (*CategoryUseCase, *MockCategoryRepository, *MockEventPublisher) {
	repo := new(MockCategoryRepository)
	publisher := new(MockEventPublisher)
	return NewCategoryUseCase(repo, publisher), repo, publisher
}

func TestCategoryListEmptyStoreReturnsEmptySlice(t *testing.T) {
	uc, repo, _ := newCategoryFixture()

	repo.On("List", mock.Anything).Return(nil, nil)

	categories, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestCategoryCreateDerivesSlug(t *testing.T) {
	uc, repo, publisher := newCategoryFixture()

	repo.On("FindByNameOrSlug", mock.Anything, "Coffee Shops", "coffee-shops").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Category")).Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	category, err := uc.Create(context.Background(), CategoryInput{Name: "Coffee Shops"})

	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "coffee-shops", category.Slug)
}

func TestCategoryCreateKeepsExplicitSlug(t *testing.T) {
	uc, repo, publisher := newCategoryFixture()

	repo.On("FindByNameOrSlug", mock.Anything, "Coffee Shops", "cafes").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	category, err := uc.Create(context.Background(), CategoryInput{Name: "Coffee Shops", Slug: "cafes"})

	assert.NoError(t, err)
	assert.Equal(t, "cafes", category.Slug)
}

func TestCategoryCreateConflict(t *testing.T) {
	uc, repo, _ := newCategoryFixture()

	existing := &entity.Category{ID: "cat-1", Name: "Coffee Shops", Slug: "coffee-shops"}
	repo.On("FindByNameOrSlug", mock.Anything, "Coffee Shops", "coffee-shops").Return(existing, nil)

	_, err := uc.Create(context.Background(), CategoryInput{Name: "Coffee Shops"})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeDuplicate, de.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestCategoryCreateStorageBackstopTranslatesConflict(t *testing.T) {
	uc, repo, _ := newCategoryFixture()

	repo.On("FindByNameOrSlug", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrDuplicateCategory)

	_, err := uc.Create(context.Background(), CategoryInput{Name: "Coffee Shops"})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeDuplicate, de.Code)
}

func TestCategoryCreateValidation(t *testing.T) {
	uc, _, _ := newCategoryFixture()

	_, err := uc.Create(context.Background(), CategoryInput{Name: "   "})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, de.Code)
}

func TestCategoryUpdateRenameKeepsSlug(t *testing.T) {
	uc, repo, publisher := newCategoryFixture()

	existing := &entity.Category{ID: "cat-1", Name: "Coffee Shops", Slug: "coffee-shops"}
	repo.On("FindByID", mock.Anything, "cat-1").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	name := "Cafes"
	category, err := uc.Update(context.Background(), "cat-1", UpdateCategoryInput{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "Cafes", category.Name)
	assert.Equal(t, "coffee-shops", category.Slug)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	uc, repo, _ := newCategoryFixture()

	repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	name := "Cafes"
	_, err := uc.Update(context.Background(), "missing", UpdateCategoryInput{Name: &name})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, de.Code)
}

func TestCategoryGetNotFound(t *testing.T) {
	uc, repo, _ := newCategoryFixture()

	repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.Get(context.Background(), "missing")

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, de.Code)
}

func TestCategoryDelete(t *testing.T) {
	uc, repo, publisher := newCategoryFixture()

	repo.On("Delete", mock.Anything, "cat-1").Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	err := uc.Delete(context.Background(), "cat-1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	uc, repo, _ := newCategoryFixture()

	repo.On("Delete", mock.Anything, "missing").Return(entity.ErrNotFound)

	err := uc.Delete(context.Background(), "missing")

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, de.Code)
}
