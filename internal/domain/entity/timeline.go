package entity

import "time"

// Timeline is the expanded, dated, one-day-per-night view of an itinerary.
// It is derived data: consumers render it and never mutate it.
//
// Unscheduled collects activities whose explicit date falls outside the span
// implied by the trip's stops and nights (for example after the user shrinks
// a stay that already had dated activities). They are surfaced here rather
// than silently dropped.
type Timeline struct {
	Days        []TimelineDay `json:"days"`
	Unscheduled []Activity    `json:"unscheduled"`
}

// TimelineDay is one calendar day of the trip.
type TimelineDay struct {
	DayNumber      int        `json:"day_number"` // 1-based, continuous across the trip
	Date           time.Time  `json:"date"`
	StopID         string     `json:"stop_id"`
	StopName       string     `json:"stop_name"`
	Lng            float64    `json:"lng"`
	Lat            float64    `json:"lat"`
	StopPosition   int        `json:"stop_position"` // 0-based position among the trip's stops
	StopCount      int        `json:"stop_count"`
	FirstDayOfStop bool       `json:"first_day_of_stop"`
	LastDayOfStop  bool       `json:"last_day_of_stop"`
	Activities     []Activity `json:"activities"`
	Transfer       *Transfer  `json:"transfer"`
}

// Transfer is the outgoing-movement slot attached to the last day of a
// stop's stay when a next stop exists. Movement is nil when no movement has
// been configured for the hop, which renderers show as a placeholder.
type Transfer struct {
	ToStopID   string    `json:"to_stop_id"`
	ToStopName string    `json:"to_stop_name"`
	Movement   *Movement `json:"movement"`
}

// ItineraryStop is one stop of the ordered itinerary view together with its
// activities and the movement leaving it, if any.
type ItineraryStop struct {
	Stop           TripStop   `json:"stop"`
	Activities     []Activity `json:"activities"`
	MovementToNext *Movement  `json:"movement_to_next"`
}

// Itinerary is the ordered stop-by-stop view of a trip.
type Itinerary struct {
	Trip  Trip            `json:"trip"`
	Stops []ItineraryStop `json:"stops"`
}
