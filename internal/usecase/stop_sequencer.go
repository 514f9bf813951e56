package usecase

import (
	"context"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"

	"github.com/google/uuid"
)

const maxNameLength = 200

// StopSequencer owns the ordering invariant for the stops of a trip: after
// every operation the sort indexes of a trip's stops are exactly {0..n-1}.
type StopSequencer struct {
	store   repository.Store
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewStopSequencer creates a new stop sequencer.
func NewStopSequencer(store repository.Store, log logger.Logger, m *metrics.Metrics) *StopSequencer {
	return &StopSequencer{
		store:   store,
		logger:  log,
		metrics: m,
	}
}

// StopInput carries the fields for creating a stop. Nights defaults to 1
// when left zero.
type StopInput struct {
	Name          string
	Lng           float64
	Lat           float64
	Notes         string
	Nights        int
	PricePerNight *float64
}

func (in *StopInput) validate() error {
	if len(in.Name) < 1 || len(in.Name) > maxNameLength {
		return entity.NewValidationError("name", "must be between 1 and 200 characters")
	}
	if in.Lng < -180 || in.Lng > 180 {
		return entity.NewValidationError("lng", "must be between -180 and 180")
	}
	if in.Lat < -90 || in.Lat > 90 {
		return entity.NewValidationError("lat", "must be between -90 and 90")
	}
	if in.Nights == 0 {
		in.Nights = 1
	}
	if in.Nights < 1 {
		return entity.NewValidationError("nights", "must be at least 1")
	}
	return nil
}

// StopPatch carries a partial update for a stop; nil fields are untouched.
type StopPatch struct {
	Name          *string
	Lng           *float64
	Lat           *float64
	Notes         *string
	Nights        *int
	PricePerNight *float64
}

// MoveResult is the outcome of a reorder. MovementsCleared tells the caller
// whether transport segments were deleted, so a notice can be surfaced.
type MoveResult struct {
	Stops            []entity.TripStop `json:"stops"`
	MovementsCleared bool              `json:"movements_cleared"`
}

// ListByTrip returns the trip's stops sorted by position.
func (s *StopSequencer) ListByTrip(ctx context.Context, tripID string) ([]entity.TripStop, error) {
	return s.store.Stops().ListByTrip(ctx, tripID)
}

// Insert appends a new stop at the end of the trip's order and refreshes the
// trip's derived end date.
func (s *StopSequencer) Insert(ctx context.Context, tripID string, input StopInput) (*entity.TripStop, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var created *entity.TripStop
	err := s.store.InTransaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Trips().Get(ctx, tripID); err != nil {
			return err
		}

		maxIndex, err := tx.Stops().MaxSortIndex(ctx, tripID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		stop := &entity.TripStop{
			ID:            uuid.NewString(),
			TripID:        tripID,
			SortIndex:     maxIndex + 1,
			Name:          input.Name,
			Lng:           input.Lng,
			Lat:           input.Lat,
			Notes:         input.Notes,
			Nights:        input.Nights,
			PricePerNight: input.PricePerNight,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Stops().Create(ctx, stop); err != nil {
			return err
		}
		if err := recalculateEndDate(ctx, tx, tripID); err != nil {
			return err
		}
		created = stop
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stop inserted", "tripId", tripID, "stopId", created.ID, "sortIndex", created.SortIndex)
	if s.metrics != nil {
		s.metrics.StopsInserted.Inc()
	}
	return created, nil
}

// Update applies a partial edit to a stop. A nights change refreshes the
// trip's derived end date.
func (s *StopSequencer) Update(ctx context.Context, stopID string, patch StopPatch) (*entity.TripStop, error) {
	if patch.Name != nil && (len(*patch.Name) < 1 || len(*patch.Name) > maxNameLength) {
		return nil, entity.NewValidationError("name", "must be between 1 and 200 characters")
	}
	if patch.Lng != nil && (*patch.Lng < -180 || *patch.Lng > 180) {
		return nil, entity.NewValidationError("lng", "must be between -180 and 180")
	}
	if patch.Lat != nil && (*patch.Lat < -90 || *patch.Lat > 90) {
		return nil, entity.NewValidationError("lat", "must be between -90 and 90")
	}
	if patch.Nights != nil && *patch.Nights < 1 {
		return nil, entity.NewValidationError("nights", "must be at least 1")
	}

	var updated *entity.TripStop
	err := s.store.InTransaction(ctx, func(tx repository.Store) error {
		stop, err := tx.Stops().Get(ctx, stopID)
		if err != nil {
			return err
		}

		nightsChanged := false
		if patch.Name != nil {
			stop.Name = *patch.Name
		}
		if patch.Lng != nil {
			stop.Lng = *patch.Lng
		}
		if patch.Lat != nil {
			stop.Lat = *patch.Lat
		}
		if patch.Notes != nil {
			stop.Notes = *patch.Notes
		}
		if patch.Nights != nil && *patch.Nights != stop.Nights {
			stop.Nights = *patch.Nights
			nightsChanged = true
		}
		if patch.PricePerNight != nil {
			stop.PricePerNight = patch.PricePerNight
		}
		stop.UpdatedAt = time.Now().UTC()

		if err := tx.Stops().Update(ctx, stop); err != nil {
			return err
		}
		if nightsChanged {
			if err := recalculateEndDate(ctx, tx, stop.TripID); err != nil {
				return err
			}
		}
		updated = stop
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Move removes the stop at fromIndex and reinserts it at toIndex, then
// rewrites every stop's sort index to its new position. Out-of-range indices
// are a no-op returning the unchanged order, to tolerate races with
// concurrent removal.
//
// Reordering invalidates adjacency for every edge of the trip, so every
// movement owned by the trip is deleted as part of the same atomic unit.
func (s *StopSequencer) Move(ctx context.Context, tripID string, fromIndex, toIndex int) (*MoveResult, error) {
	var result *MoveResult
	err := s.store.InTransaction(ctx, func(tx repository.Store) error {
		stops, err := tx.Stops().ListByTrip(ctx, tripID)
		if err != nil {
			return err
		}

		n := len(stops)
		if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
			result = &MoveResult{Stops: stops}
			return nil
		}

		moved := stops[fromIndex]
		stops = append(stops[:fromIndex], stops[fromIndex+1:]...)
		stops = append(stops[:toIndex], append([]entity.TripStop{moved}, stops[toIndex:]...)...)

		orderedIDs := make([]string, n)
		for i := range stops {
			stops[i].SortIndex = i
			orderedIDs[i] = stops[i].ID
		}
		if err := tx.Stops().Reindex(ctx, tripID, orderedIDs); err != nil {
			return err
		}

		deleted, err := tx.Movements().DeleteByTrip(ctx, tripID)
		if err != nil {
			return err
		}

		result = &MoveResult{Stops: stops, MovementsCleared: deleted > 0}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.MovementsCleared {
		s.logger.Info("Stop order changed, transport segments cleared", "tripId", tripID)
	}
	if s.metrics != nil {
		s.metrics.StopsReordered.Inc()
	}
	return result, nil
}

// RemoveWithCascade deletes a stop together with its activities and every
// movement touching it, then renumbers the surviving stops. All effects
// commit as one atomic unit.
func (s *StopSequencer) RemoveWithCascade(ctx context.Context, stopID string) error {
	err := s.store.InTransaction(ctx, func(tx repository.Store) error {
		stop, err := tx.Stops().Get(ctx, stopID)
		if err != nil {
			return err
		}

		if err := tx.Activities().DeleteByStop(ctx, stopID); err != nil {
			return err
		}
		if _, err := tx.Movements().DeleteByStop(ctx, stopID); err != nil {
			return err
		}
		if err := tx.Stops().Delete(ctx, stopID); err != nil {
			return err
		}

		remaining, err := tx.Stops().ListByTrip(ctx, stop.TripID)
		if err != nil {
			return err
		}
		orderedIDs := make([]string, len(remaining))
		for i := range remaining {
			orderedIDs[i] = remaining[i].ID
		}
		if err := tx.Stops().Reindex(ctx, stop.TripID, orderedIDs); err != nil {
			return err
		}

		return recalculateEndDate(ctx, tx, stop.TripID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Stop removed with cascade", "stopId", stopID)
	if s.metrics != nil {
		s.metrics.CascadeDeletes.Inc()
	}
	return nil
}

// recalculateEndDate refreshes a trip's derived end date from the sum of its
// stops' nights: end = start + max(total-1, 0) days. Trips without a start
// date carry no end date.
func recalculateEndDate(ctx context.Context, tx repository.Store, tripID string) error {
	trip, err := tx.Trips().Get(ctx, tripID)
	if err != nil {
		return err
	}

	if trip.StartDate == nil {
		trip.EndDate = nil
	} else {
		stops, err := tx.Stops().ListByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		total := 0
		for _, stop := range stops {
			total += stop.Nights
		}
		end := entity.DateOnly(*trip.StartDate).AddDate(0, 0, max(total-1, 0))
		trip.EndDate = &end
	}
	trip.UpdatedAt = time.Now().UTC()
	return tx.Trips().Update(ctx, trip)
}
