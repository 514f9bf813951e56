package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

// ActivityRepository defines the interface for activity persistence.
//
// ListByStop returns activities sorted ascending by sort index. ListByTrip
// returns every activity of the trip, ordered by owning stop position then
// sort index, for timeline expansion. Reindex mirrors StopRepository.Reindex
// scoped to one stop's activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	Get(ctx context.Context, id string) (*entity.Activity, error)
	ListByStop(ctx context.Context, stopID string) ([]entity.Activity, error)
	ListByTrip(ctx context.Context, tripID string) ([]entity.Activity, error)
	MaxSortIndex(ctx context.Context, stopID string) (int, error)
	Update(ctx context.Context, activity *entity.Activity) error
	Reindex(ctx context.Context, stopID string, orderedIDs []string) error
	Delete(ctx context.Context, id string) error
	DeleteByStop(ctx context.Context, stopID string) error
	DeleteByTrip(ctx context.Context, tripID string) error
}
