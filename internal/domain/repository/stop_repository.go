package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

// StopRepository defines the interface for trip stop persistence.
//
// ListByTrip returns stops sorted ascending by sort index. Reindex rewrites
// the sort index of every listed stop to its position in orderedIDs; callers
// pass the complete stop set of the trip so the contiguous-index invariant
// holds trivially afterwards.
type StopRepository interface {
	Create(ctx context.Context, stop *entity.TripStop) error
	Get(ctx context.Context, id string) (*entity.TripStop, error)
	ListByTrip(ctx context.Context, tripID string) ([]entity.TripStop, error)
	MaxSortIndex(ctx context.Context, tripID string) (int, error)
	Update(ctx context.Context, stop *entity.TripStop) error
	Reindex(ctx context.Context, tripID string, orderedIDs []string) error
	Delete(ctx context.Context, id string) error
	DeleteByTrip(ctx context.Context, tripID string) error
}
