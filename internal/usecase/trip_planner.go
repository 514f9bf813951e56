package usecase

import (
	"context"
	"errors"
	"regexp"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"

	"github.com/google/uuid"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// TripPlanner handles trip lifecycle and the assembled read views: the
// ordered itinerary and the expanded day-by-day timeline.
type TripPlanner struct {
	store   repository.Store
	tokens  repository.ShareTokenRepository
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewTripPlanner creates a new trip planner. tokens may be nil when sharing
// is not wired; trip deletion then skips token cleanup.
func NewTripPlanner(store repository.Store, tokens repository.ShareTokenRepository, log logger.Logger, m *metrics.Metrics) *TripPlanner {
	return &TripPlanner{
		store:   store,
		tokens:  tokens,
		logger:  log,
		metrics: m,
	}
}

// TripInput carries the fields for creating a trip.
type TripInput struct {
	Name        string
	CountryCode string
	StartDate   *time.Time
	Status      entity.TripStatus
	Notes       string
	Currency    string
}

func (in *TripInput) validate() error {
	if len(in.Name) < 1 || len(in.Name) > maxNameLength {
		return entity.NewValidationError("name", "must be between 1 and 200 characters")
	}
	if in.CountryCode == "" {
		return entity.NewValidationError("country_code", "is required")
	}
	if in.Status == "" {
		in.Status = entity.TripStatusPlanning
	}
	if !in.Status.Valid() {
		return entity.NewValidationError("status", "must be one of planning, booked, active, completed, cancelled")
	}
	if in.Currency == "" {
		in.Currency = "EUR"
	}
	if !currencyPattern.MatchString(in.Currency) {
		return entity.NewValidationError("currency", "must be a 3-letter uppercase code")
	}
	return nil
}

// TripPatch carries a partial update for a trip.
type TripPatch struct {
	Name        *string
	CountryCode *string
	StartDate   *time.Time
	Status      *entity.TripStatus
	Notes       *string
	Currency    *string
}

// List returns all trips, newest first.
func (p *TripPlanner) List(ctx context.Context) ([]entity.Trip, error) {
	return p.store.Trips().List(ctx)
}

// Get returns one trip by id.
func (p *TripPlanner) Get(ctx context.Context, tripID string) (*entity.Trip, error) {
	return p.store.Trips().Get(ctx, tripID)
}

// Create creates a trip. At most one trip may exist per country code.
func (p *TripPlanner) Create(ctx context.Context, input TripInput) (*entity.Trip, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var created *entity.Trip
	err := p.store.InTransaction(ctx, func(tx repository.Store) error {
		existing, err := tx.Trips().GetByCountry(ctx, input.CountryCode)
		if err != nil && !errors.Is(err, entity.ErrTripNotFound) {
			return err
		}
		if existing != nil {
			return entity.ErrDuplicateCountry
		}

		now := time.Now().UTC()
		var start *time.Time
		if input.StartDate != nil {
			d := entity.DateOnly(*input.StartDate)
			start = &d
		}
		trip := &entity.Trip{
			ID:          uuid.NewString(),
			Name:        input.Name,
			CountryCode: input.CountryCode,
			StartDate:   start,
			Status:      input.Status,
			Notes:       input.Notes,
			Currency:    input.Currency,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if start != nil {
			trip.EndDate = start
		}
		if err := tx.Trips().Create(ctx, trip); err != nil {
			return err
		}
		created = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("Trip created", "tripId", created.ID, "country", created.CountryCode)
	return created, nil
}

// Update applies a partial edit to a trip. A start date change refreshes the
// derived end date.
func (p *TripPlanner) Update(ctx context.Context, tripID string, patch TripPatch) (*entity.Trip, error) {
	if patch.Name != nil && (len(*patch.Name) < 1 || len(*patch.Name) > maxNameLength) {
		return nil, entity.NewValidationError("name", "must be between 1 and 200 characters")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, entity.NewValidationError("status", "must be one of planning, booked, active, completed, cancelled")
	}
	if patch.Currency != nil && !currencyPattern.MatchString(*patch.Currency) {
		return nil, entity.NewValidationError("currency", "must be a 3-letter uppercase code")
	}

	var updated *entity.Trip
	err := p.store.InTransaction(ctx, func(tx repository.Store) error {
		trip, err := tx.Trips().Get(ctx, tripID)
		if err != nil {
			return err
		}

		startChanged := false
		if patch.Name != nil {
			trip.Name = *patch.Name
		}
		if patch.CountryCode != nil {
			trip.CountryCode = *patch.CountryCode
		}
		if patch.StartDate != nil {
			d := entity.DateOnly(*patch.StartDate)
			trip.StartDate = &d
			startChanged = true
		}
		if patch.Status != nil {
			trip.Status = *patch.Status
		}
		if patch.Notes != nil {
			trip.Notes = *patch.Notes
		}
		if patch.Currency != nil {
			trip.Currency = *patch.Currency
		}
		trip.UpdatedAt = time.Now().UTC()

		if err := tx.Trips().Update(ctx, trip); err != nil {
			return err
		}
		if startChanged {
			if err := recalculateEndDate(ctx, tx, tripID); err != nil {
				return err
			}
			trip, err = tx.Trips().Get(ctx, tripID)
			if err != nil {
				return err
			}
		}
		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a trip and cascades to its stops, their activities, all
// movements, and any share tokens.
func (p *TripPlanner) Delete(ctx context.Context, tripID string) error {
	err := p.store.InTransaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Trips().Get(ctx, tripID); err != nil {
			return err
		}
		if err := tx.Activities().DeleteByTrip(ctx, tripID); err != nil {
			return err
		}
		if _, err := tx.Movements().DeleteByTrip(ctx, tripID); err != nil {
			return err
		}
		if err := tx.Stops().DeleteByTrip(ctx, tripID); err != nil {
			return err
		}
		return tx.Trips().Delete(ctx, tripID)
	})
	if err != nil {
		return err
	}

	if p.tokens != nil {
		if err := p.tokens.DeleteByTrip(ctx, tripID); err != nil {
			p.logger.Warn("Failed to remove share tokens for deleted trip", "tripId", tripID, "error", err)
		}
	}
	p.logger.Info("Trip deleted", "tripId", tripID)
	return nil
}

// Itinerary returns the ordered stop-by-stop view of a trip: each stop with
// its activities and the movement leaving it, if any.
func (p *TripPlanner) Itinerary(ctx context.Context, tripID string) (*entity.Itinerary, error) {
	trip, stops, movements, activities, err := p.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	movementByFrom := make(map[string]*entity.Movement, len(movements))
	for i := range movements {
		movementByFrom[movements[i].FromStopID] = &movements[i]
	}
	activitiesByStop := make(map[string][]entity.Activity)
	for _, activity := range activities {
		activitiesByStop[activity.TripStopID] = append(activitiesByStop[activity.TripStopID], activity)
	}

	itinerary := &entity.Itinerary{Trip: *trip, Stops: make([]entity.ItineraryStop, 0, len(stops))}
	for _, stop := range stops {
		itinerary.Stops = append(itinerary.Stops, entity.ItineraryStop{
			Stop:           stop,
			Activities:     activitiesByStop[stop.ID],
			MovementToNext: movementByFrom[stop.ID],
		})
	}
	return itinerary, nil
}

// Timeline loads a trip's itinerary state and expands it into the calendar
// view.
func (p *TripPlanner) Timeline(ctx context.Context, tripID string) (*entity.Timeline, error) {
	trip, stops, movements, activities, err := p.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	timeline := ExpandTimeline(trip.StartDate, stops, movements, activities)
	if p.metrics != nil {
		p.metrics.TimelinesExpanded.Inc()
	}
	return &timeline, nil
}

func (p *TripPlanner) loadTrip(ctx context.Context, tripID string) (*entity.Trip, []entity.TripStop, []entity.Movement, []entity.Activity, error) {
	trip, err := p.store.Trips().Get(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	stops, err := p.store.Stops().ListByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	movements, err := p.store.Movements().ListByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	activities, err := p.store.Activities().ListByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return trip, stops, movements, activities, nil
}
