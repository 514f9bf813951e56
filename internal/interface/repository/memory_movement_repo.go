package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

type memoryMovementRepo struct {
	store *MemoryStore
	inTx  bool
}

func (r *memoryMovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	r.store.write(r.inTx, func(d *memoryData) {
		d.movements[movement.ID] = *movement
	})
	return nil
}

func (r *memoryMovementRepo) Get(ctx context.Context, id string) (*entity.Movement, error) {
	var movement *entity.Movement
	r.store.read(r.inTx, func(d *memoryData) {
		if m, ok := d.movements[id]; ok {
			movement = &m
		}
	})
	if movement == nil {
		return nil, entity.ErrMovementNotFound
	}
	return movement, nil
}

func (r *memoryMovementRepo) ListByTrip(ctx context.Context, tripID string) ([]entity.Movement, error) {
	movements := []entity.Movement{}
	r.store.read(r.inTx, func(d *memoryData) {
		for _, m := range d.movements {
			if m.TripID == tripID {
				movements = append(movements, m)
			}
		}
	})
	return movements, nil
}

func (r *memoryMovementRepo) FindByPair(ctx context.Context, fromStopID, toStopID string) (*entity.Movement, error) {
	var movement *entity.Movement
	r.store.read(r.inTx, func(d *memoryData) {
		for _, m := range d.movements {
			if m.FromStopID == fromStopID && m.ToStopID == toStopID {
				m := m
				movement = &m
				return
			}
		}
	})
	if movement == nil {
		return nil, entity.ErrMovementNotFound
	}
	return movement, nil
}

func (r *memoryMovementRepo) Update(ctx context.Context, movement *entity.Movement) error {
	err := entity.ErrMovementNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.movements[movement.ID]; ok {
			d.movements[movement.ID] = *movement
			err = nil
		}
	})
	return err
}

func (r *memoryMovementRepo) Delete(ctx context.Context, id string) error {
	err := entity.ErrMovementNotFound
	r.store.write(r.inTx, func(d *memoryData) {
		if _, ok := d.movements[id]; ok {
			delete(d.movements, id)
			err = nil
		}
	})
	return err
}

func (r *memoryMovementRepo) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	var deleted int64
	r.store.write(r.inTx, func(d *memoryData) {
		for id, m := range d.movements {
			if m.TripID == tripID {
				delete(d.movements, id)
				deleted++
			}
		}
	})
	return deleted, nil
}

func (r *memoryMovementRepo) DeleteByStop(ctx context.Context, stopID string) (int64, error) {
	var deleted int64
	r.store.write(r.inTx, func(d *memoryData) {
		for id, m := range d.movements {
			if m.FromStopID == stopID || m.ToStopID == stopID {
				delete(d.movements, id)
				deleted++
			}
		}
	})
	return deleted, nil
}
