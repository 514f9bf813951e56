package repository

import (
	"context"

	"itinerary-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormStore implements repository.Store on PostgreSQL via GORM. Cascading
// mutations run inside a database transaction so all affected records commit
// together.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ repository.Store = (*GormStore)(nil)

// AutoMigrate creates or updates the itinerary tables.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&TripRecord{}, &TripStopRecord{}, &MovementRecord{}, &ActivityRecord{})
}

// Trips returns the trip repository.
func (s *GormStore) Trips() repository.TripRepository {
	return &gormTripRepo{db: s.db}
}

// Stops returns the stop repository.
func (s *GormStore) Stops() repository.StopRepository {
	return &gormStopRepo{db: s.db}
}

// Movements returns the movement repository.
func (s *GormStore) Movements() repository.MovementRepository {
	return &gormMovementRepo{db: s.db}
}

// Activities returns the activity repository.
func (s *GormStore) Activities() repository.ActivityRepository {
	return &gormActivityRepo{db: s.db}
}

// InTransaction runs fn against a store bound to one database transaction.
func (s *GormStore) InTransaction(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
