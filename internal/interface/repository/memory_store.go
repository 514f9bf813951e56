package repository

import (
	"context"
	"sync"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
)

// MemoryStore implements repository.Store in memory. One mutex guards all
// itinerary state: mutations inside InTransaction hold the write lock for
// the whole unit, so a concurrent reader only ever observes the state before
// or after an operation, never a renumbering midway.
type MemoryStore struct {
	mu   sync.RWMutex
	data *memoryData
}

type memoryData struct {
	trips      map[string]entity.Trip
	stops      map[string]entity.TripStop
	movements  map[string]entity.Movement
	activities map[string]entity.Activity
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: &memoryData{
			trips:      make(map[string]entity.Trip),
			stops:      make(map[string]entity.TripStop),
			movements:  make(map[string]entity.Movement),
			activities: make(map[string]entity.Activity),
		},
	}
}

// Trips returns the trip repository.
func (s *MemoryStore) Trips() repository.TripRepository {
	return &memoryTripRepo{store: s}
}

// Stops returns the stop repository.
func (s *MemoryStore) Stops() repository.StopRepository {
	return &memoryStopRepo{store: s}
}

// Movements returns the movement repository.
func (s *MemoryStore) Movements() repository.MovementRepository {
	return &memoryMovementRepo{store: s}
}

// Activities returns the activity repository.
func (s *MemoryStore) Activities() repository.ActivityRepository {
	return &memoryActivityRepo{store: s}
}

// InTransaction runs fn under the write lock against a transactional view.
// If fn fails the pre-transaction state is restored, so cascades either
// fully apply or leave prior state intact.
func (s *MemoryStore) InTransaction(ctx context.Context, fn func(repository.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(&memoryTxStore{store: s}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (d *memoryData) clone() *memoryData {
	c := &memoryData{
		trips:      make(map[string]entity.Trip, len(d.trips)),
		stops:      make(map[string]entity.TripStop, len(d.stops)),
		movements:  make(map[string]entity.Movement, len(d.movements)),
		activities: make(map[string]entity.Activity, len(d.activities)),
	}
	for id, v := range d.trips {
		c.trips[id] = v
	}
	for id, v := range d.stops {
		c.stops[id] = v
	}
	for id, v := range d.movements {
		c.movements[id] = v
	}
	for id, v := range d.activities {
		c.activities[id] = v
	}
	return c
}

// memoryTxStore is the view handed to InTransaction callbacks. Its repos
// skip locking because the transaction already holds the write lock; nested
// transactional units join the outer one.
type memoryTxStore struct {
	store *MemoryStore
}

func (t *memoryTxStore) Trips() repository.TripRepository {
	return &memoryTripRepo{store: t.store, inTx: true}
}

func (t *memoryTxStore) Stops() repository.StopRepository {
	return &memoryStopRepo{store: t.store, inTx: true}
}

func (t *memoryTxStore) Movements() repository.MovementRepository {
	return &memoryMovementRepo{store: t.store, inTx: true}
}

func (t *memoryTxStore) Activities() repository.ActivityRepository {
	return &memoryActivityRepo{store: t.store, inTx: true}
}

func (t *memoryTxStore) InTransaction(ctx context.Context, fn func(repository.Store) error) error {
	return fn(t)
}

// read runs fn with at least the read lock held.
func (s *MemoryStore) read(inTx bool, fn func(d *memoryData)) {
	if !inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.data)
}

// write runs fn with the write lock held.
func (s *MemoryStore) write(inTx bool, fn func(d *memoryData)) {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn(s.data)
}
