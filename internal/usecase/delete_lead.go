package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type DeleteLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
	Queue    EventPublisherInterface
}

func NewDeleteLeadUseCase(leadRepo LeadRepositoryInterface, queue EventPublisherInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{LeadRepo: leadRepo, Queue: queue}
}

// SoftDelete hides the lead without removing it. Its phone becomes
// reusable by new leads while it stays deleted.
func (uc *DeleteLeadUseCase) SoftDelete(ctx context.Context, id string) error {
	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return NewUnexpected(err)
	}
	if lead == nil {
		return NewNotFound("lead")
	}

	lead.IsDeleted = true
	touchActivity(lead, time.Now())

	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		return translateLeadError(err, lead.Phone)
	}

	publishInvalidation(ctx, uc.Queue, "lead", lead.ID, "deleted")
	return nil
}

// Restore flips a soft-deleted lead back. If another non-deleted lead took
// the phone in the meantime, the storage uniqueness backstop rejects the
// restore as a duplicate.
func (uc *DeleteLeadUseCase) Restore(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if lead == nil {
		return nil, NewNotFound("lead")
	}

	lead.IsDeleted = false
	touchActivity(lead, time.Now())

	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		return nil, translateLeadError(err, lead.Phone)
	}

	ensureCategory(lead)
	publishInvalidation(ctx, uc.Queue, "lead", lead.ID, "restored")

	return lead, nil
}

// HardDelete permanently removes the record, bypassing soft-delete
// semantics.
func (uc *DeleteLeadUseCase) HardDelete(ctx context.Context, id string) error {
	if err := uc.LeadRepo.HardDelete(ctx, id); err != nil {
		return translateLeadError(err, "")
	}

	publishInvalidation(ctx, uc.Queue, "lead", id, "deleted")
	return nil
}
