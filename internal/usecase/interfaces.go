package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// LeadRepositoryInterface is the persisted form of a lead. Find methods
// return (nil, nil) when the record is absent; mutation methods return
// entity sentinels for not-found and uniqueness violations.
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindByPhone(ctx context.Context, phone, excludeID string) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	BulkUpdateStatus(ctx context.Context, ids []string, status entity.LeadStatus, now time.Time) error
	HardDelete(ctx context.Context, id string) error
	List(ctx context.Context, includeDeleted bool) ([]*entity.Lead, error)
	DistinctTags(ctx context.Context) ([]string, error)
	DistinctCities(ctx context.Context) ([]string, error)
}

type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindByNameOrSlug(ctx context.Context, name, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}

// EventPublisherInterface notifies collaborators (cached listings in the
// presentation layer) that a record changed. Publish failures never fail
// the mutation itself.
type EventPublisherInterface interface {
	PublishInvalidation(ctx context.Context, payload queue.InvalidationPayload) error
}
