package usecase

import (
	"context"
	"testing"
	"time"

	"itinerary-service/internal/domain/entity"
	storerepo "itinerary-service/internal/interface/repository"
	"itinerary-service/pkg/logger"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *storerepo.MemoryStore
	tokens     *storerepo.MemoryShareTokenRepo
	trips      *TripPlanner
	stops      *StopSequencer
	movements  *MovementLedger
	activities *ActivitySequencer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storerepo.NewMemoryStore()
	tokens := storerepo.NewMemoryShareTokenRepo()
	log := logger.NewNop()
	return &fixture{
		store:      store,
		tokens:     tokens,
		trips:      NewTripPlanner(store, tokens, log, nil),
		stops:      NewStopSequencer(store, log, nil),
		movements:  NewMovementLedger(store, log, nil),
		activities: NewActivitySequencer(store, log, nil),
	}
}

func (f *fixture) createTrip(t *testing.T, country string, start *time.Time) *entity.Trip {
	t.Helper()
	trip, err := f.trips.Create(context.Background(), TripInput{
		Name:        "Trip " + country,
		CountryCode: country,
		StartDate:   start,
	})
	require.NoError(t, err)
	return trip
}

func (f *fixture) addStop(t *testing.T, tripID, name string, nights int) *entity.TripStop {
	t.Helper()
	stop, err := f.stops.Insert(context.Background(), tripID, StopInput{
		Name:   name,
		Nights: nights,
	})
	require.NoError(t, err)
	return stop
}

func (f *fixture) addActivity(t *testing.T, stopID, title string) *entity.Activity {
	t.Helper()
	activity, err := f.activities.Insert(context.Background(), stopID, ActivityInput{Title: title})
	require.NoError(t, err)
	return activity
}

func testLogger() logger.Logger { return logger.NewNop() }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
