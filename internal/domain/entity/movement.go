package entity

import "time"

// TransportMode is the closed set of transport types a movement can use.
type TransportMode string

const (
	TransportTrain TransportMode = "train"
	TransportCar   TransportMode = "car"
	TransportPlane TransportMode = "plane"
	TransportBus   TransportMode = "bus"
	TransportFerry TransportMode = "ferry"
	TransportWalk  TransportMode = "walk"
	TransportOther TransportMode = "other"
)

// Valid reports whether m is one of the known transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case TransportTrain, TransportCar, TransportPlane, TransportBus, TransportFerry, TransportWalk, TransportOther:
		return true
	}
	return false
}

// Movement is a directed transport link between two specific stops,
// referenced by stop identity rather than position. At most one movement
// exists per ordered (from, to) pair; the ledger upserts on that key.
//
// Because a movement means "how to get from the stop at position i to the
// stop at position i+1" but is stored by id, it does not track reindexing:
// any reorder of the owning trip's stops deletes every movement of the trip.
type Movement struct {
	ID              string        `json:"id"`
	TripID          string        `json:"trip_id"`
	FromStopID      string        `json:"from_stop_id"`
	ToStopID        string        `json:"to_stop_id"`
	Type            TransportMode `json:"type"`
	DurationMinutes *int          `json:"duration_minutes"`
	DepartureTime   *time.Time    `json:"departure_time"`
	ArrivalTime     *time.Time    `json:"arrival_time"`
	Carrier         string        `json:"carrier"`
	BookingRef      string        `json:"booking_ref"`
	Notes           string        `json:"notes"`
	Price           *float64      `json:"price"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
