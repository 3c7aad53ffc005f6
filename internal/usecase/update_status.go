package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	LeadRepo LeadRepositoryInterface
	Queue    EventPublisherInterface
}

func NewUpdateLeadStatusUseCase(leadRepo LeadRepositoryInterface, queue EventPublisherInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{LeadRepo: leadRepo, Queue: queue}
}

// Execute moves a single lead to a new status, optionally appending a
// timestamped note to its history.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id, status, note string) (*entity.Lead, error) {
	parsed, ok := entity.ParseLeadStatus(status)
	if !ok {
		return nil, NewValidationFailed([]ValidationError{{"status", "is not a supported status"}})
	}

	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if lead == nil {
		return nil, NewNotFound("lead")
	}

	applyStatusChange(lead, parsed, note, time.Now())

	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		return nil, translateLeadError(err, lead.Phone)
	}

	ensureCategory(lead)
	publishInvalidation(ctx, uc.Queue, "lead", lead.ID, "status_changed")

	return lead, nil
}

// ExecuteBulk applies the status to every matched id in one statement:
// either all matched rows change or the whole batch fails. contactedAt is
// stamped unconditionally for the batch when the target status is
// "contacted".
func (uc *UpdateLeadStatusUseCase) ExecuteBulk(ctx context.Context, input BulkStatusUpdateInput) error {
	status, ok := entity.ParseLeadStatus(input.Status)
	if !ok {
		return NewValidationFailed([]ValidationError{{"status", "is not a supported status"}})
	}
	if len(input.LeadIDs) == 0 {
		return nil
	}

	if err := uc.LeadRepo.BulkUpdateStatus(ctx, input.LeadIDs, status, time.Now()); err != nil {
		return NewUnexpected(err)
	}

	publishInvalidation(ctx, uc.Queue, "lead", "", "bulk_status_changed")
	return nil
}
