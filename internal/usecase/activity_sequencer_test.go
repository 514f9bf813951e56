package usecase

import (
	"context"
	"testing"
	"time"

	"itinerary-service/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestActivityInsertAssignsContiguousIndexes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)
	stop := f.addStop(t, trip.ID, "Tokyo", 2)

	f.addActivity(t, stop.ID, "Museum")
	f.addActivity(t, stop.ID, "Market")
	f.addActivity(t, stop.ID, "Park")

	activities, err := f.activities.ListByStop(ctx, stop.ID)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	for i, activity := range activities {
		require.Equal(t, i, activity.SortIndex)
	}
}

func TestActivityIndexesAreScopedPerStop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)
	tokyo := f.addStop(t, trip.ID, "Tokyo", 2)
	kyoto := f.addStop(t, trip.ID, "Kyoto", 1)

	f.addActivity(t, tokyo.ID, "Museum")
	f.addActivity(t, tokyo.ID, "Market")
	first := f.addActivity(t, kyoto.ID, "Temple")

	require.Equal(t, 0, first.SortIndex)

	activities, err := f.activities.ListByStop(ctx, tokyo.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
}

func TestActivityInsertNormalizesDate(t *testing.T) {
	f := newFixture(t)
	trip := f.createTrip(t, "JP", nil)
	stop := f.addStop(t, trip.ID, "Tokyo", 1)

	noon := time.Date(2026, time.June, 2, 12, 30, 0, 0, time.UTC)
	activity, err := f.activities.Insert(context.Background(), stop.ID, ActivityInput{
		Title: "Museum",
		Date:  &noon,
	})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC), *activity.Date)
}

func TestActivityInsertValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)
	stop := f.addStop(t, trip.ID, "Tokyo", 1)

	_, err := f.activities.Insert(ctx, stop.ID, ActivityInput{Title: ""})
	require.True(t, entity.IsValidation(err))

	_, err = f.activities.Insert(ctx, stop.ID, ActivityInput{Title: "Museum", StartTime: strPtr("25:99")})
	require.True(t, entity.IsValidation(err))

	_, err = f.activities.Insert(ctx, "missing", ActivityInput{Title: "Museum"})
	require.ErrorIs(t, err, entity.ErrStopNotFound)
}

func TestActivityMoveRenumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)
	stop := f.addStop(t, trip.ID, "Tokyo", 1)

	a := f.addActivity(t, stop.ID, "A")
	b := f.addActivity(t, stop.ID, "B")
	c := f.addActivity(t, stop.ID, "C")

	result, err := f.activities.Move(ctx, stop.ID, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []string{c.ID, a.ID, b.ID}, activityIDs(result.Activities))
	for i, activity := range result.Activities {
		require.Equal(t, i, activity.SortIndex)
	}
}

func TestActivityMoveOutOfRangeIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)
	stop := f.addStop(t, trip.ID, "Tokyo", 1)

	a := f.addActivity(t, stop.ID, "A")
	b := f.addActivity(t, stop.ID, "B")

	result, err := f.activities.Move(ctx, stop.ID, 0, 5)
	require.NoError(t, err)
	require.Equal(t, []string{a.ID, b.ID}, activityIDs(result.Activities))
}

func TestActivityRemoveRenumbersSurvivors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	trip := f.createTrip(t, "JP", nil)
	stop := f.addStop(t, trip.ID, "Tokyo", 1)

	a := f.addActivity(t, stop.ID, "A")
	b := f.addActivity(t, stop.ID, "B")
	c := f.addActivity(t, stop.ID, "C")

	require.NoError(t, f.activities.Remove(ctx, b.ID))

	activities, err := f.activities.ListByStop(ctx, stop.ID)
	require.NoError(t, err)
	require.Equal(t, []string{a.ID, c.ID}, activityIDs(activities))
	for i, activity := range activities {
		require.Equal(t, i, activity.SortIndex)
	}
}

func TestActivityUpdatePatch(t *testing.T) {
	f := newFixture(t)
	trip := f.createTrip(t, "JP", nil)
	stop := f.addStop(t, trip.ID, "Tokyo", 1)
	activity := f.addActivity(t, stop.ID, "Museum")

	updated, err := f.activities.Update(context.Background(), activity.ID, ActivityPatch{
		StartTime: strPtr("09:30"),
		Category:  strPtr("culture"),
	})
	require.NoError(t, err)
	require.Equal(t, "Museum", updated.Title)
	require.Equal(t, "09:30", *updated.StartTime)
	require.Equal(t, "culture", updated.Category)
}

func activityIDs(activities []entity.Activity) []string {
	ids := make([]string, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}
	return ids
}
