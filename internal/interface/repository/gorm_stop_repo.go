package repository

import (
	"context"
	"errors"
	"time"

	"itinerary-service/internal/domain/entity"

	"gorm.io/gorm"
)

type gormStopRepo struct {
	db *gorm.DB
}

// TripStopRecord is the GORM model for trip stops. The (trip_id, sort_index)
// pair carries a plain composite index rather than a unique constraint: the
// sequencer rewrites indexes in bulk and enforces contiguity itself.
type TripStopRecord struct {
	ID            string `gorm:"primaryKey;size:36"`
	TripID        string `gorm:"size:36;not null;index:idx_trip_stops_order"`
	SortIndex     int    `gorm:"not null;index:idx_trip_stops_order"`
	Name          string `gorm:"size:200;not null"`
	Lng           float64
	Lat           float64
	Notes         string `gorm:"type:text;not null;default:''"`
	Nights        int    `gorm:"not null;default:1"`
	PricePerNight *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name.
func (TripStopRecord) TableName() string {
	return "trip_stops"
}

func stopToRecord(s *entity.TripStop) *TripStopRecord {
	return &TripStopRecord{
		ID:            s.ID,
		TripID:        s.TripID,
		SortIndex:     s.SortIndex,
		Name:          s.Name,
		Lng:           s.Lng,
		Lat:           s.Lat,
		Notes:         s.Notes,
		Nights:        s.Nights,
		PricePerNight: s.PricePerNight,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func recordToStop(r *TripStopRecord) *entity.TripStop {
	return &entity.TripStop{
		ID:            r.ID,
		TripID:        r.TripID,
		SortIndex:     r.SortIndex,
		Name:          r.Name,
		Lng:           r.Lng,
		Lat:           r.Lat,
		Notes:         r.Notes,
		Nights:        r.Nights,
		PricePerNight: r.PricePerNight,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *gormStopRepo) Create(ctx context.Context, stop *entity.TripStop) error {
	return r.db.WithContext(ctx).Create(stopToRecord(stop)).Error
}

func (r *gormStopRepo) Get(ctx context.Context, id string) (*entity.TripStop, error) {
	var record TripStopRecord
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrStopNotFound
		}
		return nil, result.Error
	}
	return recordToStop(&record), nil
}

func (r *gormStopRepo) ListByTrip(ctx context.Context, tripID string) ([]entity.TripStop, error) {
	var records []TripStopRecord
	err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Order("sort_index").Find(&records).Error
	if err != nil {
		return nil, err
	}
	stops := make([]entity.TripStop, 0, len(records))
	for i := range records {
		stops = append(stops, *recordToStop(&records[i]))
	}
	return stops, nil
}

func (r *gormStopRepo) MaxSortIndex(ctx context.Context, tripID string) (int, error) {
	var maxIndex int
	err := r.db.WithContext(ctx).Model(&TripStopRecord{}).
		Where("trip_id = ?", tripID).
		Select("COALESCE(MAX(sort_index), -1)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex, nil
}

func (r *gormStopRepo) Update(ctx context.Context, stop *entity.TripStop) error {
	result := r.db.WithContext(ctx).Model(&TripStopRecord{}).Where("id = ?", stop.ID).
		Select("SortIndex", "Name", "Lng", "Lat", "Notes", "Nights", "PricePerNight", "UpdatedAt").
		Updates(stopToRecord(stop))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrStopNotFound
	}
	return nil
}

func (r *gormStopRepo) Reindex(ctx context.Context, tripID string, orderedIDs []string) error {
	now := time.Now().UTC()
	for i, id := range orderedIDs {
		result := r.db.WithContext(ctx).Model(&TripStopRecord{}).
			Where("id = ? AND trip_id = ?", id, tripID).
			Updates(map[string]interface{}{"sort_index": i, "updated_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrStopNotFound
		}
	}
	return nil
}

func (r *gormStopRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TripStopRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrStopNotFound
	}
	return nil
}

func (r *gormStopRepo) DeleteByTrip(ctx context.Context, tripID string) error {
	return r.db.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&TripStopRecord{}).Error
}
