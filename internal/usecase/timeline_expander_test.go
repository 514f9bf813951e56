package usecase

import (
	"testing"
	"time"

	"itinerary-service/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestExpandTimelineEmptyInputs(t *testing.T) {
	stops := []entity.TripStop{{ID: "s1", Nights: 2}}

	timeline := ExpandTimeline(nil, stops, nil, nil)
	require.Empty(t, timeline.Days)
	require.Empty(t, timeline.Unscheduled)

	timeline = ExpandTimeline(datePtr(2026, time.June, 1), nil, nil, nil)
	require.Empty(t, timeline.Days)
}

func TestExpandTimelineDayCountAndDates(t *testing.T) {
	stops := []entity.TripStop{
		{ID: "tokyo", Name: "Tokyo", Nights: 2},
		{ID: "kyoto", Name: "Kyoto", Nights: 1},
	}

	timeline := ExpandTimeline(datePtr(2026, time.June, 1), stops, nil, nil)
	require.Len(t, timeline.Days, 3)

	for i, day := range timeline.Days {
		require.Equal(t, i+1, day.DayNumber)
		require.Equal(t, time.Date(2026, time.June, 1+i, 0, 0, 0, 0, time.UTC), day.Date)
		require.Equal(t, 2, day.StopCount)
	}

	require.Equal(t, "tokyo", timeline.Days[0].StopID)
	require.Equal(t, "tokyo", timeline.Days[1].StopID)
	require.Equal(t, "kyoto", timeline.Days[2].StopID)

	require.True(t, timeline.Days[0].FirstDayOfStop)
	require.False(t, timeline.Days[0].LastDayOfStop)
	require.False(t, timeline.Days[1].FirstDayOfStop)
	require.True(t, timeline.Days[1].LastDayOfStop)
	require.True(t, timeline.Days[2].FirstDayOfStop)
	require.True(t, timeline.Days[2].LastDayOfStop)

	require.Equal(t, 0, timeline.Days[0].StopPosition)
	require.Equal(t, 1, timeline.Days[2].StopPosition)
}

func TestExpandTimelineTransferSlots(t *testing.T) {
	stops := []entity.TripStop{
		{ID: "tokyo", Name: "Tokyo", Nights: 2},
		{ID: "kyoto", Name: "Kyoto", Nights: 1},
		{ID: "osaka", Name: "Osaka", Nights: 1},
	}
	movements := []entity.Movement{
		{ID: "m1", FromStopID: "tokyo", ToStopID: "kyoto", Type: entity.TransportTrain},
	}

	timeline := ExpandTimeline(datePtr(2026, time.June, 1), stops, movements, nil)
	require.Len(t, timeline.Days, 4)

	// day 2 is Tokyo's last day, movement configured
	require.NotNil(t, timeline.Days[1].Transfer)
	require.Equal(t, "kyoto", timeline.Days[1].Transfer.ToStopID)
	require.Equal(t, "Kyoto", timeline.Days[1].Transfer.ToStopName)
	require.NotNil(t, timeline.Days[1].Transfer.Movement)
	require.Equal(t, "m1", timeline.Days[1].Transfer.Movement.ID)

	// day 3 is Kyoto's last day, no movement configured: placeholder slot
	require.NotNil(t, timeline.Days[2].Transfer)
	require.Equal(t, "osaka", timeline.Days[2].Transfer.ToStopID)
	require.Nil(t, timeline.Days[2].Transfer.Movement)

	// final stop has no transfer
	require.Nil(t, timeline.Days[3].Transfer)
	require.Nil(t, timeline.Days[0].Transfer)
}

func TestExpandTimelineUndatedActivitiesOnFirstDay(t *testing.T) {
	stops := []entity.TripStop{{ID: "tokyo", Name: "Tokyo", Nights: 3}}
	activities := []entity.Activity{
		{ID: "a1", TripStopID: "tokyo", Title: "Museum", SortIndex: 0},
		{ID: "a2", TripStopID: "tokyo", Title: "Market", SortIndex: 1},
	}

	timeline := ExpandTimeline(datePtr(2026, time.June, 1), stops, nil, activities)
	require.Len(t, timeline.Days, 3)
	require.Len(t, timeline.Days[0].Activities, 2)
	require.Empty(t, timeline.Days[1].Activities)
	require.Empty(t, timeline.Days[2].Activities)
	require.Empty(t, timeline.Unscheduled)
}

func TestExpandTimelineDatedActivitiesOnMatchingDay(t *testing.T) {
	stops := []entity.TripStop{{ID: "tokyo", Name: "Tokyo", Nights: 3}}
	activities := []entity.Activity{
		{ID: "a1", TripStopID: "tokyo", Title: "Day two plan", Date: datePtr(2026, time.June, 2)},
	}

	timeline := ExpandTimeline(datePtr(2026, time.June, 1), stops, nil, activities)
	require.Empty(t, timeline.Days[0].Activities)
	require.Len(t, timeline.Days[1].Activities, 1)
	require.Equal(t, "a1", timeline.Days[1].Activities[0].ID)
}

func TestExpandTimelineSortsDayByStartTime(t *testing.T) {
	stops := []entity.TripStop{{ID: "tokyo", Name: "Tokyo", Nights: 1}}
	activities := []entity.Activity{
		{ID: "untimed", TripStopID: "tokyo", SortIndex: 0},
		{ID: "evening", TripStopID: "tokyo", SortIndex: 1, StartTime: strPtr("19:00")},
		{ID: "morning", TripStopID: "tokyo", SortIndex: 2, StartTime: strPtr("08:30")},
	}

	timeline := ExpandTimeline(datePtr(2026, time.June, 1), stops, nil, activities)
	require.Len(t, timeline.Days, 1)

	got := activityIDs(timeline.Days[0].Activities)
	require.Equal(t, []string{"morning", "evening", "untimed"}, got)
}

func TestExpandTimelineOutOfSpanActivitiesAreUnscheduled(t *testing.T) {
	stops := []entity.TripStop{
		{ID: "tokyo", Name: "Tokyo", Nights: 1},
		{ID: "kyoto", Name: "Kyoto", Nights: 1},
	}
	activities := []entity.Activity{
		// after the trip ends
		{ID: "late", TripStopID: "tokyo", Date: datePtr(2026, time.June, 10)},
		// within the span but on another stop's day
		{ID: "wrongday", TripStopID: "kyoto", Date: datePtr(2026, time.June, 1)},
		{ID: "ok", TripStopID: "tokyo", Date: datePtr(2026, time.June, 1)},
	}

	timeline := ExpandTimeline(datePtr(2026, time.June, 1), stops, nil, activities)
	require.Len(t, timeline.Days, 2)
	require.Equal(t, []string{"ok"}, activityIDs(timeline.Days[0].Activities))

	require.Equal(t, []string{"wrongday", "late"}, activityIDs(timeline.Unscheduled))
}

func TestExpandTimelineIsDeterministic(t *testing.T) {
	stops := []entity.TripStop{
		{ID: "a", Name: "A", Nights: 2},
		{ID: "b", Name: "B", Nights: 1},
	}
	movements := []entity.Movement{
		{ID: "m1", FromStopID: "a", ToStopID: "b", Type: entity.TransportTrain},
	}
	activities := []entity.Activity{
		{ID: "x", TripStopID: "a", SortIndex: 0},
		{ID: "y", TripStopID: "b", SortIndex: 0, StartTime: strPtr("10:00")},
	}

	first := ExpandTimeline(datePtr(2026, time.June, 1), stops, movements, activities)
	second := ExpandTimeline(datePtr(2026, time.June, 1), stops, movements, activities)
	require.Equal(t, first, second)
}
