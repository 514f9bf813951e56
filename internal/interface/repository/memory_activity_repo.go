package repository

import (
	"context"
	"sort"
	"time"

	"itinerary-service/internal/domain/entity"
)

type memoryActivityRepo struct {
	store *MemoryStore
	inTx  bool
}

func (r *memoryActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	r.store.write(r.inTx, func(d *memoryData) {
		d.activities[activity.ID] = *activity
	})
	return nil
}

func (r *memoryActivityRepo) Get(ctx context.Context, id string) (*entity.Activity, error) {
	var activity *entity.Activity
	r.store.read(r.inTx, func(d *memoryData) {
		if a, ok := d.activities[id]; ok {
			activity = &a
		}
	})
	if activity == nil {
		return nil, entity.ErrActivityNotFound
	}
	return activity, nil
}

func (r *memoryActivityRepo) ListByStop(ctx context.Context, stopID string) ([]entity.Activity, error) {
	activities := []entity.Activity{}
	r.store.read(r.inTx, func(d *memoryData) {
		for _, a := range d.activities {
			if a.TripStopID == stopID {
				activities = append(activities, a)
			}
		}
	})
	sort.Slice(activities, func(i, j int) bool { return activities[i].SortIndex < activities[j].SortIndex })
	return activities, nil
}

func (r *memoryActivityRepo) ListByTrip(ctx context.Context, tripID string) ([]entity.Activity, error) {
	activities := []entity.Activity{}
	stopOrder := map[string]int{}
	r.store.read(r.inTx, func(d *memoryData) {
		for _, s := range d.stops {
			if s.TripID == tripID {
				stopOrder[s.ID] = s.SortIndex
			}
		}
		for _, a := range d.activities {
			if _, ok := stopOrder[a.TripStopID]; ok {
				activities = append(activities, a)
			}
		}
	})
	sort.Slice(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if stopOrder[a.TripStopID] != stopOrder[b.TripStopID] {
			return stopOrder[a.TripStopID] < stopOrder[b.TripStopID]
		}
		return a.SortIndex < b.SortIndex
	})
	return activities, nil
}

func (r *memoryActivityRepo) MaxSortIndex(ctx context.Context, stopID string) (int, error) {
	maxIndex := -1
	r.store.read(r.inTx, func(d *memoryData) {
		for _, a := range d.activities {
			if a.TripStopID == stopID && a.SortIndex > maxIndex {
				maxIndex = a.SortIndex
			}
		}
	})
	return maxIndex, nil
}

func (r *memoryActivityRepo) Update(ctx context.Context, activity *entity.Activity) error {
	err := entity.ErrActivityNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.activities[activity.ID]; ok {
			d.activities[activity.ID] = *activity
			err = nil
		}
	})
	return err
}

func (r *memoryActivityRepo) Reindex(ctx context.Context, stopID string, orderedIDs []string) error {
	err := error(nil)
	r.store.write(r.inTx, func(d *memoryData) {
		now := time.Now().UTC()
		for i, id := range orderedIDs {
			a, ok := d.activities[id]
			if !ok || a.TripStopID != stopID {
				err = entity.ErrActivityNotFound
				return
			}
			a.SortIndex = i
			a.UpdatedAt = now
			d.activities[id] = a
		}
	})
	return err
}

func (r *memoryActivityRepo) Delete(ctx context.Context, id string) error {
	err := entity.ErrActivityNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.activities[id]; ok {
			delete(d.activities, id)
			err = nil
		}
	})
	return err
}

func (r *memoryActivityRepo) DeleteByStop(ctx context.Context, stopID string) error {
	r.store.write(r.inTx, func(d *memoryData) {
		for id, a := range d.activities {
			if a.TripStopID == stopID {
				delete(d.activities, id)
			}
		}
	})
	return nil
}

func (r *memoryActivityRepo) DeleteByTrip(ctx context.Context, tripID string) error {
	r.store.write(r.inTx, func(d *memoryData) {
		stopIDs := map[string]bool{}
		for id, s := range d.stops {
			if s.TripID == tripID {
				stopIDs[id] = true
			}
		}
		for id, a := range d.activities {
			if stopIDs[a.TripStopID] {
				delete(d.activities, id)
			}
		}
	})
	return nil
}
