package entity

import "time"

// ShareToken grants read-only access to a trip's expanded timeline. A trip
// has at most one active token; issuing a new one replaces any prior token.
type ShareToken struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token is no longer valid at now.
func (t *ShareToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// SharedTrip is the read-only view served to holders of a share token.
type SharedTrip struct {
	TripName    string     `json:"trip_name"`
	CountryCode string     `json:"country_code"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      TripStatus `json:"status"`
	Timeline    Timeline   `json:"timeline"`
	ExpiresAt   time.Time  `json:"expires_at"`
}
