package repository

import (
	"context"
	"errors"
	"time"

	"itinerary-service/internal/domain/entity"

	"gorm.io/gorm"
)

type gormMovementRepo struct {
	db *gorm.DB
}

// MovementRecord is the GORM model for movements.
type MovementRecord struct {
	ID              string `gorm:"primaryKey;size:36"`
	TripID          string `gorm:"size:36;not null;index"`
	FromStopID      string `gorm:"size:36;not null;index:idx_movements_pair"`
	ToStopID        string `gorm:"size:36;not null;index:idx_movements_pair"`
	Type            string `gorm:"size:20;not null"`
	DurationMinutes *int
	DepartureTime   *time.Time
	ArrivalTime     *time.Time
	Carrier         string `gorm:"size:200;not null;default:''"`
	BookingRef      string `gorm:"size:200;not null;default:''"`
	Notes           string `gorm:"type:text;not null;default:''"`
	Price           *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name.
func (MovementRecord) TableName() string {
	return "movements"
}

func movementToRecord(m *entity.Movement) *MovementRecord {
	return &MovementRecord{
		ID:              m.ID,
		TripID:          m.TripID,
		FromStopID:      m.FromStopID,
		ToStopID:        m.ToStopID,
		Type:            string(m.Type),
		DurationMinutes: m.DurationMinutes,
		DepartureTime:   m.DepartureTime,
		ArrivalTime:     m.ArrivalTime,
		Carrier:         m.Carrier,
		BookingRef:      m.BookingRef,
		Notes:           m.Notes,
		Price:           m.Price,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func recordToMovement(r *MovementRecord) *entity.Movement {
	return &entity.Movement{
		ID:              r.ID,
		TripID:          r.TripID,
		FromStopID:      r.FromStopID,
		ToStopID:        r.ToStopID,
		Type:            entity.TransportMode(r.Type),
		DurationMinutes: r.DurationMinutes,
		DepartureTime:   r.DepartureTime,
		ArrivalTime:     r.ArrivalTime,
		Carrier:         r.Carrier,
		BookingRef:      r.BookingRef,
		Notes:           r.Notes,
		Price:           r.Price,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *gormMovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	return r.db.WithContext(ctx).Create(movementToRecord(movement)).Error
}

func (r *gormMovementRepo) Get(ctx context.Context, id string) (*entity.Movement, error) {
	var record MovementRecord
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrMovementNotFound
		}
		return nil, result.Error
	}
	return recordToMovement(&record), nil
}

func (r *gormMovementRepo) ListByTrip(ctx context.Context, tripID string) ([]entity.Movement, error) {
	var records []MovementRecord
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&records).Error; err != nil {
		return nil, err
	}
	movements := make([]entity.Movement, 0, len(records))
	for i := range records {
		movements = append(movements, *recordToMovement(&records[i]))
	}
	return movements, nil
}

func (r *gormMovementRepo) FindByPair(ctx context.Context, fromStopID, toStopID string) (*entity.Movement, error) {
	var record MovementRecord
	result := r.db.WithContext(ctx).
		Where("from_stop_id = ? AND to_stop_id = ?", fromStopID, toStopID).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrMovementNotFound
		}
		return nil, result.Error
	}
	return recordToMovement(&record), nil
}

func (r *gormMovementRepo) Update(ctx context.Context, movement *entity.Movement) error {
	result := r.db.WithContext(ctx).Model(&MovementRecord{}).Where("id = ?", movement.ID).
		Select("Type", "DurationMinutes", "DepartureTime", "ArrivalTime", "Carrier", "BookingRef", "Notes", "Price", "UpdatedAt").
		Updates(movementToRecord(movement))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrMovementNotFound
	}
	return nil
}

func (r *gormMovementRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MovementRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrMovementNotFound
	}
	return nil
}

func (r *gormMovementRepo) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&MovementRecord{})
	return result.RowsAffected, result.Error
}

func (r *gormMovementRepo) DeleteByStop(ctx context.Context, stopID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("from_stop_id = ? OR to_stop_id = ?", stopID, stopID).
		Delete(&MovementRecord{})
	return result.RowsAffected, result.Error
}
