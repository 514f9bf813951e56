package usecase

import (
	"context"
	"testing"
	"time"

	"itinerary-service/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestStopInsertAssignsContiguousIndexes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))

	f.addStop(t, trip.ID, "Tokyo", 2)
	f.addStop(t, trip.ID, "Kyoto", 3)
	f.addStop(t, trip.ID, "Osaka", 1)

	stops, err := f.stops.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, stops, 3)
	for i, stop := range stops {
		require.Equal(t, i, stop.SortIndex)
	}
	require.Equal(t, "Tokyo", stops[0].Name)
	require.Equal(t, "Osaka", stops[2].Name)
}

func TestStopInsertRecalculatesEndDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))

	f.addStop(t, trip.ID, "Tokyo", 2)
	f.addStop(t, trip.ID, "Kyoto", 1)

	got, err := f.trips.Get(ctx, trip.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndDate)
	// 3 nights total, end = start + 2 days
	require.Equal(t, time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC), *got.EndDate)
}

func TestStopInsertNoStartDateLeavesEndDateNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)

	f.addStop(t, trip.ID, "Tokyo", 2)

	got, err := f.trips.Get(ctx, trip.ID)
	require.NoError(t, err)
	require.Nil(t, got.EndDate)
}

func TestStopInsertDefaultsNightsToOne(t *testing.T) {
	f := newFixture(t)
	trip := f.createTrip(t, "JP", nil)

	stop, err := f.stops.Insert(context.Background(), trip.ID, StopInput{Name: "Tokyo"})
	require.NoError(t, err)
	require.Equal(t, 1, stop.Nights)
}

func TestStopInsertValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)

	_, err := f.stops.Insert(ctx, trip.ID, StopInput{Name: ""})
	require.True(t, entity.IsValidation(err))

	_, err = f.stops.Insert(ctx, trip.ID, StopInput{Name: "Tokyo", Lng: 181})
	require.True(t, entity.IsValidation(err))

	_, err = f.stops.Insert(ctx, trip.ID, StopInput{Name: "Tokyo", Lat: -91})
	require.True(t, entity.IsValidation(err))

	_, err = f.stops.Insert(ctx, trip.ID, StopInput{Name: "Tokyo", Nights: -1})
	require.True(t, entity.IsValidation(err))
}

func TestStopInsertUnknownTrip(t *testing.T) {
	f := newFixture(t)

	_, err := f.stops.Insert(context.Background(), "missing", StopInput{Name: "Tokyo"})
	require.ErrorIs(t, err, entity.ErrTripNotFound)
}

func TestStopMoveRenumbersWholeTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))

	a := f.addStop(t, trip.ID, "A", 1)
	b := f.addStop(t, trip.ID, "B", 1)
	c := f.addStop(t, trip.ID, "C", 1)
	d := f.addStop(t, trip.ID, "D", 1)

	result, err := f.stops.Move(ctx, trip.ID, 0, 2)
	require.NoError(t, err)

	require.Equal(t, []string{b.ID, c.ID, a.ID, d.ID}, stopIDs(result.Stops))
	for i, stop := range result.Stops {
		require.Equal(t, i, stop.SortIndex)
	}

	stops, err := f.stops.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Equal(t, []string{b.ID, c.ID, a.ID, d.ID}, stopIDs(stops))
}

func TestStopMoveOutOfRangeIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)

	a := f.addStop(t, trip.ID, "A", 1)
	b := f.addStop(t, trip.ID, "B", 1)

	for _, move := range [][2]int{{-1, 0}, {0, 2}, {5, 1}, {1, -3}} {
		result, err := f.stops.Move(ctx, trip.ID, move[0], move[1])
		require.NoError(t, err)
		require.Equal(t, []string{a.ID, b.ID}, stopIDs(result.Stops))
		require.False(t, result.MovementsCleared)
	}
}

func TestStopMoveClearsMovements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)

	a := f.addStop(t, trip.ID, "A", 1)
	b := f.addStop(t, trip.ID, "B", 1)
	f.addStop(t, trip.ID, "C", 1)

	_, err := f.movements.Upsert(ctx, trip.ID, MovementInput{
		FromStopID: a.ID,
		ToStopID:   b.ID,
		Type:       entity.TransportTrain,
	})
	require.NoError(t, err)

	result, err := f.stops.Move(ctx, trip.ID, 0, 2)
	require.NoError(t, err)
	require.True(t, result.MovementsCleared)

	movements, err := f.movements.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Empty(t, movements)
}

func TestStopMoveWithoutMovementsReportsNothingCleared(t *testing.T) {
	f := newFixture(t)
	trip := f.createTrip(t, "JP", nil)

	f.addStop(t, trip.ID, "A", 1)
	f.addStop(t, trip.ID, "B", 1)

	result, err := f.stops.Move(context.Background(), trip.ID, 0, 1)
	require.NoError(t, err)
	require.False(t, result.MovementsCleared)
}

func TestStopUpdateNightsRecalculatesEndDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))
	stop := f.addStop(t, trip.ID, "Tokyo", 2)

	_, err := f.stops.Update(ctx, stop.ID, StopPatch{Nights: intPtr(5)})
	require.NoError(t, err)

	got, err := f.trips.Get(ctx, trip.ID)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC), *got.EndDate)
}

func TestStopUpdatePartialLeavesOtherFields(t *testing.T) {
	f := newFixture(t)
	trip := f.createTrip(t, "JP", nil)
	stop, err := f.stops.Insert(context.Background(), trip.ID, StopInput{
		Name:   "Tokyo",
		Notes:  "ryokan",
		Nights: 2,
	})
	require.NoError(t, err)

	updated, err := f.stops.Update(context.Background(), stop.ID, StopPatch{Name: strPtr("Shinjuku")})
	require.NoError(t, err)
	require.Equal(t, "Shinjuku", updated.Name)
	require.Equal(t, "ryokan", updated.Notes)
	require.Equal(t, 2, updated.Nights)
}

func TestStopRemoveWithCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", datePtr(2026, time.June, 1))

	a := f.addStop(t, trip.ID, "A", 2)
	b := f.addStop(t, trip.ID, "B", 1)
	c := f.addStop(t, trip.ID, "C", 1)

	f.addActivity(t, b.ID, "Museum")
	f.addActivity(t, b.ID, "Market")

	_, err := f.movements.Upsert(ctx, trip.ID, MovementInput{FromStopID: a.ID, ToStopID: b.ID, Type: entity.TransportTrain})
	require.NoError(t, err)
	_, err = f.movements.Upsert(ctx, trip.ID, MovementInput{FromStopID: b.ID, ToStopID: c.ID, Type: entity.TransportBus})
	require.NoError(t, err)

	require.NoError(t, f.stops.RemoveWithCascade(ctx, b.ID))

	stops, err := f.stops.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Equal(t, []string{a.ID, c.ID}, stopIDs(stops))
	for i, stop := range stops {
		require.Equal(t, i, stop.SortIndex)
	}

	activities, err := f.activities.ListByStop(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, activities)

	movements, err := f.movements.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Empty(t, movements)

	got, err := f.trips.Get(ctx, trip.ID)
	require.NoError(t, err)
	// 3 nights remain, end = start + 2 days
	require.Equal(t, time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC), *got.EndDate)
}

func TestStopRemoveUnknown(t *testing.T) {
	f := newFixture(t)

	err := f.stops.RemoveWithCascade(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrStopNotFound)
}

func stopIDs(stops []entity.TripStop) []string {
	ids := make([]string, len(stops))
	for i, s := range stops {
		ids[i] = s.ID
	}
	return ids
}
