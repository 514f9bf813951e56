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

// ActivitySequencer owns the ordering invariant for the activities of a
// single stop. It mirrors the stop sequencer one level deeper: each stop has
// its own contiguous numbering space, and reordering activities has no
// transport side effects.
type ActivitySequencer struct {
	store   repository.Store
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewActivitySequencer creates a new activity sequencer.
func NewActivitySequencer(store repository.Store, log logger.Logger, m *metrics.Metrics) *ActivitySequencer {
	return &ActivitySequencer{
		store:   store,
		logger:  log,
		metrics: m,
	}
}

// ActivityInput carries the fields for creating an activity.
type ActivityInput struct {
	Title           string
	Date            *time.Time
	StartTime       *string
	DurationMinutes *int
	Lng             *float64
	Lat             *float64
	Address         string
	Category        string
	Notes           string
	Price           *float64
}

func (in *ActivityInput) validate() error {
	if len(in.Title) < 1 || len(in.Title) > maxNameLength {
		return entity.NewValidationError("title", "must be between 1 and 200 characters")
	}
	if in.StartTime != nil {
		if _, err := time.Parse("15:04", *in.StartTime); err != nil {
			return entity.NewValidationError("start_time", "must be in HH:MM form")
		}
	}
	return nil
}

// ActivityPatch carries a partial update for an activity.
type ActivityPatch struct {
	Title           *string
	Date            *time.Time
	StartTime       *string
	DurationMinutes *int
	Lng             *float64
	Lat             *float64
	Address         *string
	Category        *string
	Notes           *string
	Price           *float64
}

// ActivityMoveResult is the outcome of an activity reorder.
type ActivityMoveResult struct {
	Activities []entity.Activity `json:"activities"`
}

// ListByStop returns the stop's activities sorted by position.
func (s *ActivitySequencer) ListByStop(ctx context.Context, stopID string) ([]entity.Activity, error) {
	return s.store.Activities().ListByStop(ctx, stopID)
}

// Insert appends a new activity at the end of the stop's order.
func (s *ActivitySequencer) Insert(ctx context.Context, stopID string, input ActivityInput) (*entity.Activity, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var created *entity.Activity
	err := s.store.InTransaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Stops().Get(ctx, stopID); err != nil {
			return err
		}

		maxIndex, err := tx.Activities().MaxSortIndex(ctx, stopID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		var date *time.Time
		if input.Date != nil {
			d := entity.DateOnly(*input.Date)
			date = &d
		}
		activity := &entity.Activity{
			ID:              uuid.NewString(),
			TripStopID:      stopID,
			SortIndex:       maxIndex + 1,
			Title:           input.Title,
			Date:            date,
			StartTime:       input.StartTime,
			DurationMinutes: input.DurationMinutes,
			Lng:             input.Lng,
			Lat:             input.Lat,
			Address:         input.Address,
			Category:        input.Category,
			Notes:           input.Notes,
			Price:           input.Price,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Activities().Create(ctx, activity); err != nil {
			return err
		}
		created = activity
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ActivitiesInserted.Inc()
	}
	return created, nil
}

// Update applies a partial edit to an activity.
func (s *ActivitySequencer) Update(ctx context.Context, activityID string, patch ActivityPatch) (*entity.Activity, error) {
	if patch.Title != nil && (len(*patch.Title) < 1 || len(*patch.Title) > maxNameLength) {
		return nil, entity.NewValidationError("title", "must be between 1 and 200 characters")
	}
	if patch.StartTime != nil {
		if _, err := time.Parse("15:04", *patch.StartTime); err != nil {
			return nil, entity.NewValidationError("start_time", "must be in HH:MM form")
		}
	}

	var updated *entity.Activity
	err := s.store.InTransaction(ctx, func(tx repository.Store) error {
		activity, err := tx.Activities().Get(ctx, activityID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			activity.Title = *patch.Title
		}
		if patch.Date != nil {
			d := entity.DateOnly(*patch.Date)
			activity.Date = &d
		}
		if patch.StartTime != nil {
			activity.StartTime = patch.StartTime
		}
		if patch.DurationMinutes != nil {
			activity.DurationMinutes = patch.DurationMinutes
		}
		if patch.Lng != nil {
			activity.Lng = patch.Lng
		}
		if patch.Lat != nil {
			activity.Lat = patch.Lat
		}
		if patch.Address != nil {
			activity.Address = *patch.Address
		}
		if patch.Category != nil {
			activity.Category = *patch.Category
		}
		if patch.Notes != nil {
			activity.Notes = *patch.Notes
		}
		if patch.Price != nil {
			activity.Price = patch.Price
		}
		activity.UpdatedAt = time.Now().UTC()

		if err := tx.Activities().Update(ctx, activity); err != nil {
			return err
		}
		updated = activity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Move reorders an activity within its stop, then rewrites every activity's
// sort index to its new position. Out-of-range indices are a no-op returning
// the unchanged order.
func (s *ActivitySequencer) Move(ctx context.Context, stopID string, fromIndex, toIndex int) (*ActivityMoveResult, error) {
	var result *ActivityMoveResult
	err := s.store.InTransaction(ctx, func(tx repository.Store) error {
		activities, err := tx.Activities().ListByStop(ctx, stopID)
		if err != nil {
			return err
		}

		n := len(activities)
		if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
			result = &ActivityMoveResult{Activities: activities}
			return nil
		}

		moved := activities[fromIndex]
		activities = append(activities[:fromIndex], activities[fromIndex+1:]...)
		activities = append(activities[:toIndex], append([]entity.Activity{moved}, activities[toIndex:]...)...)

		orderedIDs := make([]string, n)
		for i := range activities {
			activities[i].SortIndex = i
			orderedIDs[i] = activities[i].ID
		}
		if err := tx.Activities().Reindex(ctx, stopID, orderedIDs); err != nil {
			return err
		}

		result = &ActivityMoveResult{Activities: activities}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Remove deletes one activity and renumbers the remaining activities of the
// same stop.
func (s *ActivitySequencer) Remove(ctx context.Context, activityID string) error {
	return s.store.InTransaction(ctx, func(tx repository.Store) error {
		activity, err := tx.Activities().Get(ctx, activityID)
		if err != nil {
			return err
		}

		if err := tx.Activities().Delete(ctx, activityID); err != nil {
			return err
		}

		remaining, err := tx.Activities().ListByStop(ctx, activity.TripStopID)
		if err != nil {
			return err
		}
		orderedIDs := make([]string, len(remaining))
		for i := range remaining {
			orderedIDs[i] = remaining[i].ID
		}
		return tx.Activities().Reindex(ctx, activity.TripStopID, orderedIDs)
	})
}

// RemoveAllForStop bulk-deletes a stop's activities. Used only by the stop
// cascade delete; no renumbering since the whole scope disappears.
func (s *ActivitySequencer) RemoveAllForStop(ctx context.Context, stopID string) error {
	return s.store.Activities().DeleteByStop(ctx, stopID)
}
