package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

func makeLead(mutators ...func(*entity.Lead)) *entity.Lead {
	lead := &entity.Lead{
		ID:         "lead-1",
		CategoryID: "cat-1",
		Phone:      "+1 555 0100",
		Status:     entity.StatusLeadGenerated,
		Source:     entity.SourceManual,
		Priority:   entity.PriorityMedium,
		Tags:       []string{},
		CreatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, mutate := range mutators {
		mutate(lead)
	}
	return lead
}

func TestFiltersDefaultExcludesDeleted(t *testing.T) {
	filters := LeadFilters{}

	assert.True(t, filters.Match(makeLead()))
	assert.False(t, filters.Match(makeLead(func(l *entity.Lead) { l.IsDeleted = true })))
}

func TestFiltersDeletedOptIn(t *testing.T) {
	deleted := true
	filters := LeadFilters{IsDeleted: &deleted}

	assert.False(t, filters.Match(makeLead()))
	assert.True(t, filters.Match(makeLead(func(l *entity.Lead) { l.IsDeleted = true })))
}

func TestFiltersSearchIsAnOrGroup(t *testing.T) {
	filters := LeadFilters{Search: "acme"}

	assert.True(t, filters.Match(makeLead(func(l *entity.Lead) { l.Name = "Acme Corp" })))
	assert.True(t, filters.Match(makeLead(func(l *entity.Lead) { l.Notes = "met Acme rep" })))
	assert.False(t, filters.Match(makeLead(func(l *entity.Lead) { l.Name = "Other" })))
}

func TestFiltersCitySubstringCaseInsensitive(t *testing.T) {
	filters := LeadFilters{City: "york"}

	assert.True(t, filters.Match(makeLead(func(l *entity.Lead) { l.Address.City = "New York" })))
	assert.False(t, filters.Match(makeLead(func(l *entity.Lead) { l.Address.City = "Boston" })))
	assert.False(t, filters.Match(makeLead()))
}

func TestFiltersRatingRangeInclusive(t *testing.T) {
	min, max := 2.0, 4.0
	filters := LeadFilters{MinRating: &min, MaxRating: &max}

	assert.True(t, filters.Match(makeLead(func(l *entity.Lead) { l.Rating = 2.0 })))
	assert.True(t, filters.Match(makeLead(func(l *entity.Lead) { l.Rating = 4.0 })))
	assert.False(t, filters.Match(makeLead(func(l *entity.Lead) { l.Rating = 1.9 })))
	assert.False(t, filters.Match(makeLead(func(l *entity.Lead) { l.Rating = 4.1 })))
}

func TestFiltersTagsIntersect(t *testing.T) {
	filters := LeadFilters{Tags: []string{"vip", "cold"}}

	assert.True(t, filters.Match(makeLead(func(l *entity.Lead) { l.Tags = []string{"cold", "web"} })))
	assert.False(t, filters.Match(makeLead(func(l *entity.Lead) { l.Tags = []string{"warm"} })))
	assert.False(t, filters.Match(makeLead()))
}

func TestFiltersCombineWithAnd(t *testing.T) {
	filters := LeadFilters{
		Status:   entity.StatusContacted,
		Priority: entity.PriorityHigh,
	}

	match := makeLead(func(l *entity.Lead) {
		l.Status = entity.StatusContacted
		l.Priority = entity.PriorityHigh
	})
	onlyStatus := makeLead(func(l *entity.Lead) { l.Status = entity.StatusContacted })

	assert.True(t, filters.Match(match))
	assert.False(t, filters.Match(onlyStatus))
}

func TestSortLeadsDefaultCreatedAtDesc(t *testing.T) {
	older := makeLead(func(l *entity.Lead) {
		l.ID = "older"
		l.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	newer := makeLead(func(l *entity.Lead) {
		l.ID = "newer"
		l.CreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	})

	leads := []*entity.Lead{older, newer}
	sortLeads(leads, LeadSortOptions{})

	assert.Equal(t, "newer", leads[0].ID)
	assert.Equal(t, "older", leads[1].ID)
}

func TestSortLeadsByPriorityUsesSeverityRank(t *testing.T) {
	leads := []*entity.Lead{
		makeLead(func(l *entity.Lead) { l.ID = "m"; l.Priority = entity.PriorityMedium }),
		makeLead(func(l *entity.Lead) { l.ID = "u"; l.Priority = entity.PriorityUrgent }),
		makeLead(func(l *entity.Lead) { l.ID = "l"; l.Priority = entity.PriorityLow }),
		makeLead(func(l *entity.Lead) { l.ID = "h"; l.Priority = entity.PriorityHigh }),
	}

	sortLeads(leads, LeadSortOptions{Field: "priority", Order: "desc"})

	got := []string{leads[0].ID, leads[1].ID, leads[2].ID, leads[3].ID}
	assert.Equal(t, []string{"u", "h", "m", "l"}, got)
}

func TestSortLeadsByNameAsc(t *testing.T) {
	leads := []*entity.Lead{
		makeLead(func(l *entity.Lead) { l.Name = "Zeta" }),
		makeLead(func(l *entity.Lead) { l.Name = "Alpha" }),
	}

	sortLeads(leads, LeadSortOptions{Field: "name", Order: "asc"})

	assert.Equal(t, "Alpha", leads[0].Name)
}

func TestPaginateLeads(t *testing.T) {
	leads := make([]*entity.Lead, 45)
	for i := range leads {
		leads[i] = makeLead(func(l *entity.Lead) { l.ID = fmt.Sprintf("lead-%d", i) })
	}

	page, pagination := paginateLeads(leads, 2, 20)

	assert.Len(t, page, 20)
	assert.Equal(t, "lead-20", page[0].ID)
	assert.Equal(t, "lead-39", page[19].ID)
	assert.Equal(t, 45, pagination.Total)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 20, pagination.Limit)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestPaginateLeadsLastPartialPage(t *testing.T) {
	leads := make([]*entity.Lead, 45)
	for i := range leads {
		leads[i] = makeLead()
	}

	page, pagination := paginateLeads(leads, 3, 20)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestPaginateLeadsBeyondLastPage(t *testing.T) {
	leads := []*entity.Lead{makeLead()}

	page, pagination := paginateLeads(leads, 9, 20)
	assert.Empty(t, page)
	assert.Equal(t, 1, pagination.Total)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestPaginateLeadsDefaults(t *testing.T) {
	leads := []*entity.Lead{makeLead()}

	page, pagination := paginateLeads(leads, 0, 0)
	assert.Len(t, page, 1)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.Limit)
}
