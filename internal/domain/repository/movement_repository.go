package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

// MovementRepository defines the interface for movement persistence.
//
// FindByPair looks up the single movement for an ordered (from, to) stop
// pair. DeleteByTrip and DeleteByStop return the number of movements removed.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	Get(ctx context.Context, id string) (*entity.Movement, error)
	ListByTrip(ctx context.Context, tripID string) ([]entity.Movement, error)
	FindByPair(ctx context.Context, fromStopID, toStopID string) (*entity.Movement, error)
	Update(ctx context.Context, movement *entity.Movement) error
	Delete(ctx context.Context, id string) error
	DeleteByTrip(ctx context.Context, tripID string) (int64, error)
	DeleteByStop(ctx context.Context, stopID string) (int64, error)
}
