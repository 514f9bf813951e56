package repository

import (
	"context"
	"sort"

	"itinerary-service/internal/domain/entity"
)

type memoryTripRepo struct {
	store *MemoryStore
	inTx  bool
}

func (r *memoryTripRepo) Create(ctx context.Context, trip *entity.Trip) error {
	r.store.write(r.inTx, func(d *memoryData) {
		d.trips[trip.ID] = *trip
	})
	return nil
}

func (r *memoryTripRepo) Get(ctx context.Context, id string) (*entity.Trip, error) {
	var trip *entity.Trip
	r.store.read(r.inTx, func(d *memoryData) {
		if t, ok := d.trips[id]; ok {
			trip = &t
		}
	})
	if trip == nil {
		return nil, entity.ErrTripNotFound
	}
	return trip, nil
}

func (r *memoryTripRepo) GetByCountry(ctx context.Context, countryCode string) (*entity.Trip, error) {
	var trip *entity.Trip
	r.store.read(r.inTx, func(d *memoryData) {
		for _, t := range d.trips {
			if t.CountryCode == countryCode {
				t := t
				trip = &t
				return
			}
		}
	})
	if trip == nil {
		return nil, entity.ErrTripNotFound
	}
	return trip, nil
}

func (r *memoryTripRepo) List(ctx context.Context) ([]entity.Trip, error) {
	var trips []entity.Trip
	r.store.read(r.inTx, func(d *memoryData) {
		trips = make([]entity.Trip, 0, len(d.trips))
		for _, t := range d.trips {
			trips = append(trips, t)
		}
	})
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].CreatedAt.Equal(trips[j].CreatedAt) {
			return trips[i].CreatedAt.After(trips[j].CreatedAt)
		}
		return trips[i].ID < trips[j].ID
	})
	return trips, nil
}

func (r *memoryTripRepo) Update(ctx context.Context, trip *entity.Trip) error {
	err := entity.ErrTripNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.trips[trip.ID]; ok {
			d.trips[trip.ID] = *trip
			err = nil
		}
	})
	return err
}

func (r *memoryTripRepo) Delete(ctx context.Context, id string) error {
	err := entity.ErrTripNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.trips[id]; ok {
			delete(d.trips, id)
			err = nil
		}
	})
	return err
}
