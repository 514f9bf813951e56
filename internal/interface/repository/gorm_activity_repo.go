package repository

import (
	"context"
	"errors"
	"time"

	"itinerary-service/internal/domain/entity"

	"gorm.io/gorm"
)

type gormActivityRepo struct {
	db *gorm.DB
}

// ActivityRecord is the GORM model for activities.
type ActivityRecord struct {
	ID              string `gorm:"primaryKey;size:36"`
	TripStopID      string `gorm:"size:36;not null;index:idx_activities_order"`
	SortIndex       int    `gorm:"not null;index:idx_activities_order"`
	Title           string `gorm:"size:200;not null"`
	Date            *time.Time
	StartTime       *string `gorm:"size:5"`
	DurationMinutes *int
	Lng             *float64
	Lat             *float64
	Address         string `gorm:"type:text;not null;default:''"`
	Category        string `gorm:"size:100;not null;default:''"`
	Notes           string `gorm:"type:text;not null;default:''"`
	Price           *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name.
func (ActivityRecord) TableName() string {
	return "activities"
}

func activityToRecord(a *entity.Activity) *ActivityRecord {
	return &ActivityRecord{
		ID:              a.ID,
		TripStopID:      a.TripStopID,
		SortIndex:       a.SortIndex,
		Title:           a.Title,
		Date:            a.Date,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Lng:             a.Lng,
		Lat:             a.Lat,
		Address:         a.Address,
		Category:        a.Category,
		Notes:           a.Notes,
		Price:           a.Price,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func recordToActivity(r *ActivityRecord) *entity.Activity {
	return &entity.Activity{
		ID:              r.ID,
		TripStopID:      r.TripStopID,
		SortIndex:       r.SortIndex,
		Title:           r.Title,
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Lng:             r.Lng,
		Lat:             r.Lat,
		Address:         r.Address,
		Category:        r.Category,
		Notes:           r.Notes,
		Price:           r.Price,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *gormActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	return r.db.WithContext(ctx).Create(activityToRecord(activity)).Error
}

func (r *gormActivityRepo) Get(ctx context.Context, id string) (*entity.Activity, error) {
	var record ActivityRecord
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrActivityNotFound
		}
		return nil, result.Error
	}
	return recordToActivity(&record), nil
}

func (r *gormActivityRepo) ListByStop(ctx context.Context, stopID string) ([]entity.Activity, error) {
	var records []ActivityRecord
	err := r.db.WithContext(ctx).Where("trip_stop_id = ?", stopID).Order("sort_index").Find(&records).Error
	if err != nil {
		return nil, err
	}
	activities := make([]entity.Activity, 0, len(records))
	for i := range records {
		activities = append(activities, *recordToActivity(&records[i]))
	}
	return activities, nil
}

func (r *gormActivityRepo) ListByTrip(ctx context.Context, tripID string) ([]entity.Activity, error) {
	var records []ActivityRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_stops ON trip_stops.id = activities.trip_stop_id").
		Where("trip_stops.trip_id = ?", tripID).
		Order("trip_stops.sort_index, activities.sort_index").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	activities := make([]entity.Activity, 0, len(records))
	for i := range records {
		activities = append(activities, *recordToActivity(&records[i]))
	}
	return activities, nil
}

func (r *gormActivityRepo) MaxSortIndex(ctx context.Context, stopID string) (int, error) {
	var maxIndex int
	err := r.db.WithContext(ctx).Model(&ActivityRecord{}).
		Where("trip_stop_id = ?", stopID).
		Select("COALESCE(MAX(sort_index), -1)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex, nil
}

func (r *gormActivityRepo) Update(ctx context.Context, activity *entity.Activity) error {
	result := r.db.WithContext(ctx).Model(&ActivityRecord{}).Where("id = ?", activity.ID).
		Select("SortIndex", "Title", "Date", "StartTime", "DurationMinutes", "Lng", "Lat", "Address", "Category", "Notes", "Price", "UpdatedAt").
		Updates(activityToRecord(activity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrActivityNotFound
	}
	return nil
}

func (r *gormActivityRepo) Reindex(ctx context.Context, stopID string, orderedIDs []string) error {
	now := time.Now().UTC()
	for i, id := range orderedIDs {
		result := r.db.WithContext(ctx).Model(&ActivityRecord{}).
			Where("id = ? AND trip_stop_id = ?", id, stopID).
			Updates(map[string]interface{}{"sort_index": i, "updated_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrActivityNotFound
		}
	}
	return nil
}

func (r *gormActivityRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ActivityRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrActivityNotFound
	}
	return nil
}

func (r *gormActivityRepo) DeleteByStop(ctx context.Context, stopID string) error {
	return r.db.WithContext(ctx).Where("trip_stop_id = ?", stopID).Delete(&ActivityRecord{}).Error
}

func (r *gormActivityRepo) DeleteByTrip(ctx context.Context, tripID string) error {
	return r.db.WithContext(ctx).
		Where("trip_stop_id IN (?)", r.db.Model(&TripStopRecord{}).Select("id").Where("trip_id = ?", tripID)).
		Delete(&ActivityRecord{}).Error
}
