package repository

import (
	"context"
	"errors"
	"time"

	"itinerary-service/internal/domain/entity"

	"gorm.io/gorm"
)

type gormTripRepo struct {
	db *gorm.DB
}

// TripRecord is the GORM model for trips.
type TripRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:200;not null"`
	CountryCode string `gorm:"size:10;not null;index"`
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string `gorm:"size:20;not null;default:planning"`
	Notes       string `gorm:"type:text;not null;default:''"`
	Currency    string `gorm:"size:3;not null;default:EUR"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name.
func (TripRecord) TableName() string {
	return "trips"
}

func tripToRecord(t *entity.Trip) *TripRecord {
	return &TripRecord{
		ID:          t.ID,
		Name:        t.Name,
		CountryCode: t.CountryCode,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Status:      string(t.Status),
		Notes:       t.Notes,
		Currency:    t.Currency,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func recordToTrip(r *TripRecord) *entity.Trip {
	return &entity.Trip{
		ID:          r.ID,
		Name:        r.Name,
		CountryCode: r.CountryCode,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      entity.TripStatus(r.Status),
		Notes:       r.Notes,
		Currency:    r.Currency,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *gormTripRepo) Create(ctx context.Context, trip *entity.Trip) error {
	return r.db.WithContext(ctx).Create(tripToRecord(trip)).Error
}

func (r *gormTripRepo) Get(ctx context.Context, id string) (*entity.Trip, error) {
	var record TripRecord
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrTripNotFound
		}
		return nil, result.Error
	}
	return recordToTrip(&record), nil
}

func (r *gormTripRepo) GetByCountry(ctx context.Context, countryCode string) (*entity.Trip, error) {
	var record TripRecord
	result := r.db.WithContext(ctx).Where("country_code = ?", countryCode).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrTripNotFound
		}
		return nil, result.Error
	}
	return recordToTrip(&record), nil
}

func (r *gormTripRepo) List(ctx context.Context) ([]entity.Trip, error) {
	var records []TripRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	trips := make([]entity.Trip, 0, len(records))
	for i := range records {
		trips = append(trips, *recordToTrip(&records[i]))
	}
	return trips, nil
}

func (r *gormTripRepo) Update(ctx context.Context, trip *entity.Trip) error {
	result := r.db.WithContext(ctx).Model(&TripRecord{}).Where("id = ?", trip.ID).
		Select("Name", "CountryCode", "StartDate", "EndDate", "Status", "Notes", "Currency", "UpdatedAt").
		Updates(tripToRecord(trip))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrTripNotFound
	}
	return nil
}

func (r *gormTripRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TripRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrTripNotFound
	}
	return nil
}
