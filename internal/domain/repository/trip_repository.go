package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

// TripRepository defines the interface for trip persistence.
type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	Get(ctx context.Context, id string) (*entity.Trip, error)
	GetByCountry(ctx context.Context, countryCode string) (*entity.Trip, error)
	List(ctx context.Context) ([]entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id string) error
}
