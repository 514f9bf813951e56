package usecase

import (
	"sort"
	"time"

	"itinerary-service/internal/domain/entity"
)

// ExpandTimeline turns an ordered itinerary into its day-by-day calendar
// view. It is a pure function: deterministic for its inputs, no side
// effects, safe to call concurrently.
//
// Every stop contributes exactly Nights consecutive days, dated by a running
// offset from the trip start. Undated activities attach to the first day of
// their stop's stay; dated activities attach to the matching day of their
// stop. The last day of every non-final stop carries a transfer slot holding
// the outgoing movement, or a placeholder when none is configured. Dated
// activities that match no emitted day end up in Timeline.Unscheduled.
func ExpandTimeline(startDate *time.Time, stops []entity.TripStop, movements []entity.Movement, activities []entity.Activity) entity.Timeline {
	if startDate == nil || len(stops) == 0 {
		return entity.Timeline{}
	}

	movementByFrom := make(map[string]*entity.Movement, len(movements))
	for i := range movements {
		movementByFrom[movements[i].FromStopID] = &movements[i]
	}

	type bucketKey struct {
		stopID string
		date   string // "2006-01-02", empty for undated
	}
	buckets := make(map[bucketKey][]entity.Activity)
	for _, activity := range activities {
		key := bucketKey{stopID: activity.TripStopID}
		if activity.Date != nil {
			key.date = activity.Date.Format(time.DateOnly)
		}
		buckets[key] = append(buckets[key], activity)
	}
	for key := range buckets {
		sortActivitiesForDay(buckets[key])
	}

	start := entity.DateOnly(*startDate)
	consumed := make(map[bucketKey]bool)
	days := make([]entity.TimelineDay, 0)
	offset := 0

	for pos, stop := range stops {
		for night := 0; night < stop.Nights; night++ {
			date := start.AddDate(0, 0, offset)
			offset++

			first := night == 0
			last := night == stop.Nights-1

			dayKey := bucketKey{stopID: stop.ID, date: date.Format(time.DateOnly)}
			consumed[dayKey] = true
			dayActivities := append([]entity.Activity(nil), buckets[dayKey]...)
			if first {
				undatedKey := bucketKey{stopID: stop.ID}
				consumed[undatedKey] = true
				dayActivities = append(dayActivities, buckets[undatedKey]...)
			}

			day := entity.TimelineDay{
				DayNumber:      offset,
				Date:           date,
				StopID:         stop.ID,
				StopName:       stop.Name,
				Lng:            stop.Lng,
				Lat:            stop.Lat,
				StopPosition:   pos,
				StopCount:      len(stops),
				FirstDayOfStop: first,
				LastDayOfStop:  last,
				Activities:     dayActivities,
			}

			if last && pos < len(stops)-1 {
				next := stops[pos+1]
				day.Transfer = &entity.Transfer{
					ToStopID:   next.ID,
					ToStopName: next.Name,
					Movement:   movementByFrom[stop.ID],
				}
			}

			days = append(days, day)
		}
	}

	var unscheduled []entity.Activity
	for key, bucket := range buckets {
		if !consumed[key] {
			unscheduled = append(unscheduled, bucket...)
		}
	}
	sort.Slice(unscheduled, func(i, j int) bool {
		a, b := unscheduled[i], unscheduled[j]
		if a.Date != nil && b.Date != nil && !a.Date.Equal(*b.Date) {
			return a.Date.Before(*b.Date)
		}
		if a.TripStopID != b.TripStopID {
			return a.TripStopID < b.TripStopID
		}
		return a.SortIndex < b.SortIndex
	})

	return entity.Timeline{Days: days, Unscheduled: unscheduled}
}

// sortActivitiesForDay orders a day's activities by start time ascending,
// activities without a start time last, sort index as tie-break.
func sortActivitiesForDay(activities []entity.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		switch {
		case a.StartTime == nil && b.StartTime == nil:
			// fall through to sort index
		case a.StartTime == nil:
			return false
		case b.StartTime == nil:
			return true
		case *a.StartTime != *b.StartTime:
			return *a.StartTime < *b.StartTime
		}
		return a.SortIndex < b.SortIndex
	})
}
