package usecase

import (
	"context"
	"testing"
	"time"

	"itinerary-service/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestTripCreateDefaults(t *testing.T) {
	f := newFixture(t)

	trip, err := f.trips.Create(context.Background(), TripInput{
		Name:        "Japan 2026",
		CountryCode: "JP",
		StartDate:   datePtr(2026, time.June, 1),
	})
	require.NoError(t, err)
	require.Equal(t, entity.TripStatusPlanning, trip.Status)
	require.Equal(t, "EUR", trip.Currency)
	// no stops yet: end date equals start date
	require.Equal(t, *trip.StartDate, *trip.EndDate)
}

func TestTripCreateDuplicateCountry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createTrip(t, "JP", nil)

	_, err := f.trips.Create(ctx, TripInput{Name: "Second", CountryCode: "JP"})
	require.ErrorIs(t, err, entity.ErrDuplicateCountry)
}

func TestTripCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.trips.Create(ctx, TripInput{Name: "", CountryCode: "JP"})
	require.True(t, entity.IsValidation(err))

	_, err = f.trips.Create(ctx, TripInput{Name: "Trip", CountryCode: ""})
	require.True(t, entity.IsValidation(err))

	_, err = f.trips.Create(ctx, TripInput{Name: "Trip", CountryCode: "JP", Status: "someday"})
	require.True(t, entity.IsValidation(err))

	_, err = f.trips.Create(ctx, TripInput{Name: "Trip", CountryCode: "JP", Currency: "euros"})
	require.True(t, entity.IsValidation(err))
}

func TestTripUpdateStartDateRecalculatesEndDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))
	f.addStop(t, trip.ID, "Tokyo", 3)

	updated, err := f.trips.Update(ctx, trip.ID, TripPatch{StartDate: datePtr(2026, time.July, 10)})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), *updated.StartDate)
	require.Equal(t, time.Date(2026, time.July, 12, 0, 0, 0, 0, time.UTC), *updated.EndDate)
}

func TestTripDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))
	a := f.addStop(t, trip.ID, "A", 1)
	b := f.addStop(t, trip.ID, "B", 1)
	f.addActivity(t, a.ID, "Museum")
	_, err := f.movements.Upsert(ctx, trip.ID, MovementInput{FromStopID: a.ID, ToStopID: b.ID, Type: entity.TransportTrain})
	require.NoError(t, err)

	share := NewShareManager(f.store, f.tokens, time.Hour, testLogger())
	_, err = share.Create(ctx, trip.ID)
	require.NoError(t, err)

	require.NoError(t, f.trips.Delete(ctx, trip.ID))

	_, err = f.trips.Get(ctx, trip.ID)
	require.ErrorIs(t, err, entity.ErrTripNotFound)

	stops, err := f.stops.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Empty(t, stops)

	movements, err := f.movements.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Empty(t, movements)

	activities, err := f.activities.ListByStop(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, activities)

	_, err = f.tokens.GetActiveByTrip(ctx, trip.ID, time.Now().UTC())
	require.ErrorIs(t, err, entity.ErrShareTokenNotFound)
}

func TestTripItineraryView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))
	a := f.addStop(t, trip.ID, "Tokyo", 2)
	b := f.addStop(t, trip.ID, "Kyoto", 1)
	f.addActivity(t, a.ID, "Museum")
	f.addActivity(t, a.ID, "Market")
	_, err := f.movements.Upsert(ctx, trip.ID, MovementInput{FromStopID: a.ID, ToStopID: b.ID, Type: entity.TransportTrain})
	require.NoError(t, err)

	itinerary, err := f.trips.Itinerary(ctx, trip.ID)
	require.NoError(t, err)
	require.Equal(t, trip.ID, itinerary.Trip.ID)
	require.Len(t, itinerary.Stops, 2)

	require.Equal(t, a.ID, itinerary.Stops[0].Stop.ID)
	require.Len(t, itinerary.Stops[0].Activities, 2)
	require.NotNil(t, itinerary.Stops[0].MovementToNext)
	require.Equal(t, b.ID, itinerary.Stops[0].MovementToNext.ToStopID)

	require.Empty(t, itinerary.Stops[1].Activities)
	require.Nil(t, itinerary.Stops[1].MovementToNext)
}

func TestTripTimelineView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))
	f.addStop(t, trip.ID, "Tokyo", 2)
	f.addStop(t, trip.ID, "Kyoto", 1)

	timeline, err := f.trips.Timeline(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, timeline.Days, 3)
}

func TestTripTimelineWithoutStartDateIsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)
	f.addStop(t, trip.ID, "Tokyo", 2)

	timeline, err := f.trips.Timeline(ctx, trip.ID)
	require.NoError(t, err)
	require.Empty(t, timeline.Days)
}
