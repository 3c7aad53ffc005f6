package usecase

import (
	"sort"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// LeadFilters is a partial filter. Zero values mean "no constraint"; all
// set filters combine with AND. IsDeleted defaults to false, so callers
// must opt in to see deleted leads.
type LeadFilters struct {
	Category  string
	Status    entity.LeadStatus
	City      string
	MinRating *float64
	MaxRating *float64
	Search    string
	Tags      []string
	Source    entity.LeadSource
	Priority  entity.Priority
	IsDeleted *bool
}

func (f LeadFilters) Match(l *entity.Lead) bool {
	wantDeleted := false
	if f.IsDeleted != nil {
		wantDeleted = *f.IsDeleted
	}
	if l.IsDeleted != wantDeleted {
		return false
	}
	if f.Category != "" && l.CategoryID != f.Category {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.City != "" && !containsFold(l.Address.City, f.City) {
		return false
	}
	if f.MinRating != nil && l.Rating < *f.MinRating {
		return false
	}
	if f.MaxRating != nil && l.Rating > *f.MaxRating {
		return false
	}
	if f.Source != "" && l.Source != f.Source {
		return false
	}
	if f.Priority != "" && l.Priority != f.Priority {
		return false
	}
	if len(f.Tags) > 0 && !tagsIntersect(l.Tags, f.Tags) {
		return false
	}
	if f.Search != "" && !matchesSearch(l, f.Search) {
		return false
	}
	return true
}

// matchesSearch is the free-text OR-group: a case-insensitive substring
// match against name, contact person, phone, email or notes.
func matchesSearch(l *entity.Lead, term string) bool {
	return containsFold(l.Name, term) ||
		containsFold(l.ContactPerson, term) ||
		containsFold(l.Phone, term) ||
		containsFold(l.Email, term) ||
		containsFold(l.Notes, term)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func tagsIntersect(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

type LeadSortOptions struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// sortLeads orders the slice in place. Unknown fields fall back to the
// default createdAt; priority orders by severity rank, not by label.
func sortLeads(leads []*entity.Lead, opt LeadSortOptions) {
	asc := opt.Order == "asc"

	var less func(a, b *entity.Lead) bool
	switch opt.Field {
	case "name":
		less = func(a, b *entity.Lead) bool { return a.Name < b.Name }
	case "rating":
		less = func(a, b *entity.Lead) bool { return a.Rating < b.Rating }
	case "updatedAt":
		less = func(a, b *entity.Lead) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "priority":
		less = func(a, b *entity.Lead) bool { return a.Priority.Rank() < b.Priority.Rank() }
	default:
		less = func(a, b *entity.Lead) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	sort.SliceStable(leads, func(i, j int) bool {
		if asc {
			return less(leads[i], leads[j])
		}
		return less(leads[j], leads[i])
	})
}

func paginateLeads(leads []*entity.Lead, page, limit int) ([]*entity.Lead, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total := len(leads)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return leads[start:end], Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
