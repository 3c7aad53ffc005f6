package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

func newUpdateFixture() (*UpdateLeadUseCase, *MockLeadRepository, *MockCategoryRepository, *MockEventPublisher) {
	leadRepo := new(MockLeadRepository)
	categoryRepo := new(MockCategoryRepository)
	publisher := new(MockEventPublisher)
	return NewUpdateLeadUseCase(leadRepo, categoryRepo, publisher), leadRepo, categoryRepo, publisher
}

func strPtr(s string) *string { return &s }

func TestUpdateLeadNotFound(t *testing.T) {
	uc, leadRepo, _, _ := newUpdateFixture()

	leadRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.Execute(context.Background(), "missing", UpdateLeadInput{Name: strPtr("x")})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, de.Code)
}

func TestUpdateLeadPartialFields(t *testing.T) {
	uc, leadRepo, _, publisher := newUpdateFixture()

	existing := makeLead(func(l *entity.Lead) { l.Name = "Old Name"; l.Rating = 2 })
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(existing, nil)
	leadRepo.On("Update", mock.Anything, existing).Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	rating := 4.0
	lead, err := uc.Execute(context.Background(), "lead-1", UpdateLeadInput{Rating: &rating})

	assert.NoError(t, err)
	assert.Equal(t, 4.0, lead.Rating)
	assert.Equal(t, "Old Name", lead.Name)
	assert.NotNil(t, lead.LastActivityAt)
}

func TestUpdateLeadPhoneCollision(t *testing.T) {
	uc, leadRepo, _, _ := newUpdateFixture()

	existing := makeLead()
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(existing, nil)
	other := makeLead(func(l *entity.Lead) { l.ID = "lead-2"; l.Phone = "+1 555 0199" })
	leadRepo.On("FindByPhone", mock.Anything, "+1 555 0199", "lead-1").Return(other, nil)

	_, err := uc.Execute(context.Background(), "lead-1", UpdateLeadInput{Phone: strPtr("+1 555 0199")})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeDuplicate, de.Code)
	assert.Contains(t, de.Message, "+1 555 0199")
}

func TestUpdateLeadPhoneExcludesSelf(t *testing.T) {
	uc, leadRepo, _, publisher := newUpdateFixture()

	existing := makeLead()
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(existing, nil)
	leadRepo.On("FindByPhone", mock.Anything, "+1 555 0100", "lead-1").Return(nil, nil)
	leadRepo.On("Update", mock.Anything, existing).Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), "lead-1", UpdateLeadInput{Phone: strPtr("+1 555 0100")})

	assert.NoError(t, err)
}

func TestUpdateLeadStatusToContactedStampsContactedAt(t *testing.T) {
	uc, leadRepo, _, publisher := newUpdateFixture()

	existing := makeLead()
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(existing, nil)
	leadRepo.On("Update", mock.Anything, existing).Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	lead, err := uc.Execute(context.Background(), "lead-1", UpdateLeadInput{Status: strPtr("contacted")})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, lead.Status)
	assert.NotNil(t, lead.ContactedAt)
}

func TestUpdateLeadStayingContactedKeepsStamp(t *testing.T) {
	uc, leadRepo, _, publisher := newUpdateFixture()

	existing := makeLead(func(l *entity.Lead) { l.Status = entity.StatusContacted })
	first := existing.CreatedAt
	existing.ContactedAt = &first

	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(existing, nil)
	leadRepo.On("Update", mock.Anything, existing).Return(nil)
	publisher.On("PublishInvalidation", mock.Anything, mock.Anything).Return(nil)

	lead, err := uc.Execute(context.Background(), "lead-1", UpdateLeadInput{Status: strPtr("contacted")})

	assert.NoError(t, err)
	assert.Equal(t, first, *lead.ContactedAt)
}

func TestUpdateLeadValidationFailure(t *testing.T) {
	uc, _, _, _ := newUpdateFixture()

	rating := 7.0
	_, err := uc.Execute(context.Background(), "lead-1", UpdateLeadInput{Rating: &rating})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, de.Code)
}

func TestUpdateLeadUnknownCategory(t *testing.T) {
	uc, leadRepo, categoryRepo, _ := newUpdateFixture()

	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(makeLead(), nil)
	categoryRepo.On("FindByID", mock.Anything, "cat-9").Return(nil, nil)

	_, err := uc.Execute(context.Background(), "lead-1", UpdateLeadInput{Category: strPtr("cat-9")})

	de, ok := AsDomainError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, de.Code)
}
