package usecase

import (
	"context"
	"errors"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"

	"github.com/google/uuid"
)

// MovementLedger owns the directed transport edges between a trip's stops.
// At most one movement exists per ordered (from, to) pair.
type MovementLedger struct {
	store   repository.Store
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewMovementLedger creates a new movement ledger.
func NewMovementLedger(store repository.Store, log logger.Logger, m *metrics.Metrics) *MovementLedger {
	return &MovementLedger{
		store:   store,
		logger:  log,
		metrics: m,
	}
}

// MovementInput carries the fields for upserting a movement.
type MovementInput struct {
	FromStopID      string
	ToStopID        string
	Type            entity.TransportMode
	DurationMinutes *int
	DepartureTime   *time.Time
	ArrivalTime     *time.Time
	Carrier         string
	BookingRef      string
	Notes           string
	Price           *float64
}

func (in *MovementInput) validate() error {
	if in.FromStopID == in.ToStopID {
		return entity.NewValidationError("to_stop_id", "must differ from from_stop_id")
	}
	if !in.Type.Valid() {
		return entity.NewValidationError("type", "must be one of train, car, plane, bus, ferry, walk, other")
	}
	return nil
}

// MovementPatch carries a partial edit of a movement's mutable fields.
type MovementPatch struct {
	Type            *entity.TransportMode
	DurationMinutes *int
	DepartureTime   *time.Time
	ArrivalTime     *time.Time
	Carrier         *string
	BookingRef      *string
	Notes           *string
	Price           *float64
}

// ListByTrip returns all movements owned by the trip.
func (l *MovementLedger) ListByTrip(ctx context.Context, tripID string) ([]entity.Movement, error) {
	return l.store.Movements().ListByTrip(ctx, tripID)
}

// Upsert creates the movement for an ordered stop pair, or overwrites the
// mutable fields of the existing one. This is the only user-facing write
// path for movements.
func (l *MovementLedger) Upsert(ctx context.Context, tripID string, input MovementInput) (*entity.Movement, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var result *entity.Movement
	err := l.store.InTransaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Trips().Get(ctx, tripID); err != nil {
			return err
		}
		for _, stopID := range []string{input.FromStopID, input.ToStopID} {
			stop, err := tx.Stops().Get(ctx, stopID)
			if err != nil {
				return err
			}
			if stop.TripID != tripID {
				return entity.ErrStopNotFound
			}
		}

		now := time.Now().UTC()
		existing, err := tx.Movements().FindByPair(ctx, input.FromStopID, input.ToStopID)
		if err == nil {
			existing.Type = input.Type
			existing.DurationMinutes = input.DurationMinutes
			existing.DepartureTime = input.DepartureTime
			existing.ArrivalTime = input.ArrivalTime
			existing.Carrier = input.Carrier
			existing.BookingRef = input.BookingRef
			existing.Notes = input.Notes
			existing.Price = input.Price
			existing.UpdatedAt = now
			if err := tx.Movements().Update(ctx, existing); err != nil {
				return err
			}
			result = existing
			return nil
		}
		if !errors.Is(err, entity.ErrMovementNotFound) {
			return err
		}

		movement := &entity.Movement{
			ID:              uuid.NewString(),
			TripID:          tripID,
			FromStopID:      input.FromStopID,
			ToStopID:        input.ToStopID,
			Type:            input.Type,
			DurationMinutes: input.DurationMinutes,
			DepartureTime:   input.DepartureTime,
			ArrivalTime:     input.ArrivalTime,
			Carrier:         input.Carrier,
			BookingRef:      input.BookingRef,
			Notes:           input.Notes,
			Price:           input.Price,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Movements().Create(ctx, movement); err != nil {
			return err
		}
		result = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Update applies a partial edit to an existing movement by id.
func (l *MovementLedger) Update(ctx context.Context, movementID string, patch MovementPatch) (*entity.Movement, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, entity.NewValidationError("type", "must be one of train, car, plane, bus, ferry, walk, other")
	}

	var updated *entity.Movement
	err := l.store.InTransaction(ctx, func(tx repository.Store) error {
		movement, err := tx.Movements().Get(ctx, movementID)
		if err != nil {
			return err
		}

		if patch.Type != nil {
			movement.Type = *patch.Type
		}
		if patch.DurationMinutes != nil {
			movement.DurationMinutes = patch.DurationMinutes
		}
		if patch.DepartureTime != nil {
			movement.DepartureTime = patch.DepartureTime
		}
		if patch.ArrivalTime != nil {
			movement.ArrivalTime = patch.ArrivalTime
		}
		if patch.Carrier != nil {
			movement.Carrier = *patch.Carrier
		}
		if patch.BookingRef != nil {
			movement.BookingRef = *patch.BookingRef
		}
		if patch.Notes != nil {
			movement.Notes = *patch.Notes
		}
		if patch.Price != nil {
			movement.Price = patch.Price
		}
		movement.UpdatedAt = time.Now().UTC()

		if err := tx.Movements().Update(ctx, movement); err != nil {
			return err
		}
		updated = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a single movement. No cascade.
func (l *MovementLedger) Delete(ctx context.Context, movementID string) error {
	return l.store.InTransaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Movements().Get(ctx, movementID); err != nil {
			return err
		}
		return tx.Movements().Delete(ctx, movementID)
	})
}

// InvalidateForTrip deletes every movement owned by the trip. Called by the
// stop sequencer when the stop order changes, never by direct user action.
func (l *MovementLedger) InvalidateForTrip(ctx context.Context, tripID string) (int64, error) {
	deleted, err := l.store.Movements().DeleteByTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		l.logger.Info("Movements invalidated for trip", "tripId", tripID, "deleted", deleted)
		if l.metrics != nil {
			l.metrics.MovementsInvalidated.Add(float64(deleted))
		}
	}
	return deleted, nil
}

// InvalidateForStop deletes every movement referencing the stop as either
// endpoint. Called by the stop cascade delete.
func (l *MovementLedger) InvalidateForStop(ctx context.Context, stopID string) (int64, error) {
	deleted, err := l.store.Movements().DeleteByStop(ctx, stopID)
	if err != nil {
		return 0, err
	}
	if deleted > 0 && l.metrics != nil {
		l.metrics.MovementsInvalidated.Add(float64(deleted))
	}
	return deleted, nil
}
