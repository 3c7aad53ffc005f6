package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type DashboardUseCase struct {
	LeadRepo     LeadRepositoryInterface
	CategoryRepo CategoryRepositoryInterface
}

func NewDashboardUseCase(leadRepo LeadRepositoryInterface, categoryRepo CategoryRepositoryInterface) *DashboardUseCase {
	return &DashboardUseCase{LeadRepo: leadRepo, CategoryRepo: categoryRepo}
}

func (uc *DashboardUseCase) Stats(ctx context.Context) (*DashboardStats, error) {
	leads, err := uc.LeadRepo.List(ctx, false)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	categories, err := uc.CategoryRepo.List(ctx)
	if err != nil {
		return nil, NewUnexpected(err)
	}
	return computeDashboardStats(leads, categories), nil
}

func computeDashboardStats(leads []*entity.Lead, categories []*entity.Category) *DashboardStats {
	// Zero-fill so every status key is present even with no leads.
	statusCounts := make(map[entity.LeadStatus]int, 5)
	for _, status := range entity.LeadStatuses() {
		statusCounts[status] = 0
	}

	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	type group struct {
		count     int
		sumRating float64
	}
	groups := make(map[string]*group)

	active := 0
	for _, lead := range leads {
		statusCounts[lead.Status]++
		if lead.Status != entity.StatusDeclined {
			active++
		}
		g := groups[lead.CategoryID]
		if g == nil {
			g = &group{}
			groups[lead.CategoryID] = g
		}
		g.count++
		g.sumRating += lead.Rating
	}

	categoryStats := make([]CategoryStat, 0, len(groups))
	for categoryID, g := range groups {
		name, ok := categoryNames[categoryID]
		if !ok {
			// Dangling category reference; the per-category breakdown
			// skips it, mirroring the join.
			continue
		}
		categoryStats = append(categoryStats, CategoryStat{
			CategoryID:   categoryID,
			CategoryName: name,
			Count:        g.count,
			AvgRating:    round2(g.sumRating / float64(g.count)),
		})
	}

	sort.SliceStable(categoryStats, func(i, j int) bool {
		if categoryStats[i].Count != categoryStats[j].Count {
			return categoryStats[i].Count > categoryStats[j].Count
		}
		return categoryStats[i].CategoryName < categoryStats[j].CategoryName
	})

	return &DashboardStats{
		TotalLeads:    len(leads),
		ActiveLeads:   active,
		StatusCounts:  statusCounts,
		CategoryStats: categoryStats,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// RecentActivity returns the freshest non-deleted leads by last activity,
// ties broken by update time.
func (uc *DashboardUseCase) RecentActivity(ctx context.Context, limit int) ([]*entity.Lead, error) {
	if limit < 1 {
		limit = 10
	}

	leads, err := uc.LeadRepo.List(ctx, false)
	if err != nil {
		return nil, NewUnexpected(err)
	}

	sort.SliceStable(leads, func(i, j int) bool {
		ai, aj := activityTime(leads[i]), activityTime(leads[j])
		if !ai.Equal(aj) {
			return ai.After(aj)
		}
		return leads[i].UpdatedAt.After(leads[j].UpdatedAt)
	})

	if len(leads) > limit {
		leads = leads[:limit]
	}
	for _, lead := range leads {
		ensureCategory(lead)
	}
	return leads, nil
}

// HighPriority returns the most urgent open leads: non-deleted, not
// declined, priority high or urgent, ordered by severity then recency.
func (uc *DashboardUseCase) HighPriority(ctx context.Context, limit int) ([]*entity.Lead, error) {
	if limit < 1 {
		limit = 5
	}

	leads, err := uc.LeadRepo.List(ctx, false)
	if err != nil {
		return nil, NewUnexpected(err)
	}

	matched := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.Status == entity.StatusDeclined {
			continue
		}
		if lead.Priority != entity.PriorityHigh && lead.Priority != entity.PriorityUrgent {
			continue
		}
		matched = append(matched, lead)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority.Rank() != matched[j].Priority.Rank() {
			return matched[i].Priority.Rank() > matched[j].Priority.Rank()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	for _, lead := range matched {
		ensureCategory(lead)
	}
	return matched, nil
}

// activityTime treats a missing lastActivityAt as the zero time so such
// leads sort to the bottom.
func activityTime(lead *entity.Lead) time.Time {
	if lead.LastActivityAt != nil {
		return *lead.LastActivityAt
	}
	return time.Time{}
}
