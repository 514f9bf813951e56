package repository

import (
	"context"
	"sort"
	"time"

	"itinerary-service/internal/domain/entity"
)

type memoryStopRepo struct {
	store *MemoryStore
	inTx  bool
}

func (r *memoryStopRepo) Create(ctx context.Context, stop *entity.TripStop) error {
	r.store.write(r.inTx, func(d *memoryData) {
		d.stops[stop.ID] = *stop
	})
	return nil
}

func (r *memoryStopRepo) Get(ctx context.Context, id string) (*entity.TripStop, error) {
	var stop *entity.TripStop
	r.store.read(r.inTx, func(d *memoryData) {
		if s, ok := d.stops[id]; ok {
			stop = &s
		}
	})
	if stop == nil {
		return nil, entity.ErrStopNotFound
	}
	return stop, nil
}

func (r *memoryStopRepo) ListByTrip(ctx context.Context, tripID string) ([]entity.TripStop, error) {
	var stops []entity.TripStop
	r.store.read(r.inTx, func(d *memoryData) {
		for _, s := range d.stops {
			if s.TripID == tripID {
				stops = append(stops, s)
			}
		}
	})
	sort.Slice(stops, func(i, j int) bool { return stops[i].SortIndex < stops[j].SortIndex })
	if stops == nil {
		stops = []entity.TripStop{}
	}
	return stops, nil
}

func (r *memoryStopRepo) MaxSortIndex(ctx context.Context, tripID string) (int, error) {
	maxIndex := -1
	r.store.read(r.inTx, func(d *memoryData) {
		for _, s := range d.stops {
			if s.TripID == tripID && s.SortIndex > maxIndex {
				maxIndex = s.SortIndex
			}
		}
	})
	return maxIndex, nil
}

func (r *memoryStopRepo) Update(ctx context.Context, stop *entity.TripStop) error {
	err := entity.ErrStopNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.stops[stop.ID]; ok {
			d.stops[stop.ID] = *stop
			err = nil
		}
	})
	return err
}

func (r *memoryStopRepo) Reindex(ctx context.Context, tripID string, orderedIDs []string) error {
	err := error(nil)
	r.store.write(r.inTx, func(d *memoryData) {
		now := time.Now().UTC()
		for i, id := range orderedIDs {
			s, ok := d.stops[id]
			if !ok || s.TripID != tripID {
				err = entity.ErrStopNotFound
				return
			}
			s.SortIndex = i
			s.UpdatedAt = now
			d.stops[id] = s
		}
	})
	return err
}

func (r *memoryStopRepo) Delete(ctx context.Context, id string) error {
	err := entity.ErrStopNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.stops[id]; ok {
			delete(d.stops, id)
			err = nil
		}
	})
	return err
}

func (r *memoryStopRepo) DeleteByTrip(ctx context.Context, tripID string) error {
	r.store.write(r.inTx, func(d *memoryData) {
		for id, s := range d.stops {
			if s.TripID == tripID {
				delete(d.stops, id)
			}
		}
	})
	return nil
}
