package entity

import (
	"time"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusBooked    TripStatus = "booked"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanning, TripStatusBooked, TripStatusActive, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// Trip is the root aggregate of an itinerary. It owns an ordered collection
// of TripStops; deleting a trip cascades to everything below it.
//
// StartDate and EndDate are date-only values normalized to midnight UTC.
// EndDate is derived (start + total nights - 1) and recalculated whenever the
// stop set or any stop's nights change.
type Trip struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CountryCode string     `json:"country_code"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      TripStatus `json:"status"`
	Notes       string     `json:"notes"`
	Currency    string     `json:"currency"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DateOnly normalizes t to midnight UTC, the canonical form for calendar
// dates throughout the engine.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
