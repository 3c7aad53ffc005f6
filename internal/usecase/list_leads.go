package usecase

import (
	"context"
	"sort"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type ListLeadsUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewListLeadsUseCase(leadRepo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{LeadRepo: leadRepo}
}

// Execute runs the filter/sort/paginate pipeline: load, apply the filter
// predicate, order, slice. The total in the pagination block counts all
// matches before slicing.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, filters LeadFilters, sortOpt LeadSortOptions, page, limit int) (*LeadPage, error) {
	// Deleted rows only leave the store when the caller filters on them.
	includeDeleted := filters.IsDeleted != nil
	leads, err := uc.LeadRepo.List(ctx, includeDeleted)
	if err != nil {
		return nil, NewUnexpected(err)
	}

	matched := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if filters.Match(lead) {
			matched = append(matched, lead)
		}
	}

	sortLeads(matched, sortOpt)
	pageSlice, pagination := paginateLeads(matched, page, limit)

	for _, lead := range pageSlice {
		ensureCategory(lead)
	}

	return &LeadPage{Data: pageSlice, Pagination: pagination}, nil
}

func (uc *ListLeadsUseCase) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if lead == nil {
		return nil, NewNotFound("lead")
	}

	ensureCategory(lead)
	return lead, nil
}

// ByStatus lists non-deleted leads in one pipeline stage, most urgent
// first, newest first within a priority.
func (uc *ListLeadsUseCase) ByStatus(ctx context.Context, status string) ([]*entity.Lead, error) {
	parsed, ok := entity.ParseLeadStatus(status)
	if !ok {
		return nil, NewValidationFailed([]ValidationError{{"status", "is not a supported status"}})
	}

	leads, err := uc.LeadRepo.List(ctx, false)
	if err != nil {
		return nil, NewUnexpected(err)
	}

	matched := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.Status == parsed {
			matched = append(matched, lead)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority.Rank() != matched[j].Priority.Rank() {
			return matched[i].Priority.Rank() > matched[j].Priority.Rank()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	for _, lead := range matched {
		ensureCategory(lead)
	}
	return matched, nil
}

func (uc *ListLeadsUseCase) Tags(ctx context.Context) ([]string, error) {
	tags, err := uc.LeadRepo.DistinctTags(ctx)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (uc *ListLeadsUseCase) Cities(ctx context.Context) ([]string, error) {
	cities, err := uc.LeadRepo.DistinctCities(ctx)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}
