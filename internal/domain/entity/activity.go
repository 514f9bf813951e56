package entity

import "time"

// Activity is a planned action scheduled within a stop's stay. Activities are
// independently ordered within their owning stop: each stop has its own
// contiguous SortIndex numbering space starting at 0.
//
// Date is optional and date-only (midnight UTC). An activity without a date
// is assumed to belong to the arrival day of its stop when the timeline is
// expanded. StartTime is an optional wall-clock time in "15:04" form.
type Activity struct {
	ID              string     `json:"id"`
	TripStopID      string     `json:"trip_stop_id"`
	SortIndex       int        `json:"sort_index"`
	Title           string     `json:"title"`
	Date            *time.Time `json:"date"`
	StartTime       *string    `json:"start_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	Lng             *float64   `json:"lng"`
	Lat             *float64   `json:"lat"`
	Address         string     `json:"address"`
	Category        string     `json:"category"`
	Notes           string     `json:"notes"`
	Price           *float64   `json:"price"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
