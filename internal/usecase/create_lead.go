package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

type CreateLeadUseCase struct {
	LeadRepo     LeadRepositoryInterface
	CategoryRepo CategoryRepositoryInterface
	Queue        EventPublisherInterface
}

func NewCreateLeadUseCase(
	leadRepo LeadRepositoryInterface,
	categoryRepo CategoryRepositoryInterface,
	queue EventPublisherInterface,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		LeadRepo:     leadRepo,
		CategoryRepo: categoryRepo,
		Queue:        queue,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, NewValidationFailed(validationErrors)
	}

	category, err := uc.CategoryRepo.FindByID(ctx, input.Category)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if category == nil {
		return nil, NewNotFound("category")
	}

	// Pre-check for a non-deleted lead with the same phone. Two concurrent
	// creates can both pass this; the partial unique index in the store is
	// the backstop and surfaces as the same DUPLICATE_RESOURCE error.
	existing, err := uc.LeadRepo.FindByPhone(ctx, input.Phone, "")
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if existing != nil {
		return nil, NewDuplicatePhone(input.Phone)
	}

	now := time.Now()
	lead := buildLead(input, now)
	if lead.Status == entity.StatusContacted {
		lead.ContactedAt = &now
	}
	lead.LastActivityAt = &now

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, translateLeadError(err, input.Phone)
	}

	lead.Category = category
	publishInvalidation(ctx, uc.Queue, "lead", lead.ID, "created")

	return lead, nil
}

func buildLead(input CreateLeadInput, now time.Time) *entity.Lead {
	status := entity.StatusLeadGenerated
	if input.Status != "" {
		status, _ = entity.ParseLeadStatus(input.Status)
	}
	source := entity.SourceManual
	if input.Source != "" {
		source, _ = entity.ParseLeadSource(input.Source)
	}
	priority := entity.PriorityMedium
	if input.Priority != "" {
		priority, _ = entity.ParsePriority(input.Priority)
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Lead{
		ID:            uuid.New().String(),
		CategoryID:    input.Category,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Rating:        input.Rating,
		ReviewCount:   input.ReviewCount,
		GoogleMapsURL: input.GoogleMapsURL,
		Address:       input.Address.toEntity(),
		Status:        status,
		Source:        source,
		Tags:          tags,
		Notes:         input.Notes,
		Priority:      priority,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
