package entity

import "time"

// TripStop is a city or location the traveler stays at, holding a position
// in the trip order and a stay length in nights.
//
// Invariant: within a trip the SortIndex values are exactly {0..n-1}, with no
// gaps or duplicates, at every point observable between operations. The
// sequencer enforces this by rewriting every index after a move or removal.
type TripStop struct {
	ID            string     `json:"id"`
	TripID        string     `json:"trip_id"`
	SortIndex     int        `json:"sort_index"`
	Name          string     `json:"name"`
	Lng           float64    `json:"lng"`
	Lat           float64    `json:"lat"`
	Notes         string     `json:"notes"`
	Nights        int        `json:"nights"`
	PricePerNight *float64   `json:"price_per_night"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
