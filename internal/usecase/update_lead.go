package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type UpdateLeadUseCase struct {
	LeadRepo     LeadRepositoryInterface
	CategoryRepo CategoryRepositoryInterface
	Queue        EventPublisherInterface
}

func NewUpdateLeadUseCase(
	leadRepo LeadRepositoryInterface,
	categoryRepo CategoryRepositoryInterface,
	queue EventPublisherInterface,
) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		LeadRepo:     leadRepo,
		CategoryRepo: categoryRepo,
		Queue:        queue,
	}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateUpdateLeadInput(input); len(validationErrors) > 0 {
		return nil, NewValidationFailed(validationErrors)
	}

	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if lead == nil {
		return nil, NewNotFound("lead")
	}

	if input.Phone != nil {
		duplicate, err := uc.LeadRepo.FindByPhone(ctx, *input.Phone, id)
		if err != nil {
			return nil, NewUnexpected(err)
		}
		if duplicate != nil {
			return nil, NewDuplicatePhone(*input.Phone)
		}
		lead.Phone = *input.Phone
	}

	if input.Category != nil {
		category, err := uc.CategoryRepo.FindByID(ctx, *input.Category)
		if err != nil {
			return nil, NewUnexpected(err)
		}
		if category == nil {
			return nil, NewNotFound("category")
		}
		lead.CategoryID = category.ID
		lead.Category = category
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.ContactPerson != nil {
		lead.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Rating != nil {
		lead.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		lead.ReviewCount = *input.ReviewCount
	}
	if input.GoogleMapsURL != nil {
		lead.GoogleMapsURL = *input.GoogleMapsURL
	}
	if input.Address != nil {
		lead.Address = input.Address.toEntity()
	}
	if input.Tags != nil {
		lead.Tags = *input.Tags
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.Source != nil {
		lead.Source, _ = entity.ParseLeadSource(*input.Source)
	}
	if input.Priority != nil {
		lead.Priority, _ = entity.ParsePriority(*input.Priority)
	}

	now := time.Now()
	if input.Status != nil {
		status, _ := entity.ParseLeadStatus(*input.Status)
		applyStatus(lead, status, now)
	}
	touchActivity(lead, now)

	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		return nil, translateLeadError(err, lead.Phone)
	}

	ensureCategory(lead)
	publishInvalidation(ctx, uc.Queue, "lead", lead.ID, "updated")

	return lead, nil
}
