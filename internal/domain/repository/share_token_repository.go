package repository

import (
	"context"
	"time"

	"itinerary-service/internal/domain/entity"
)

// ShareTokenRepository defines the interface for share token persistence.
//
// Replace installs token as the trip's single active token, removing any
// prior tokens for the trip. GetActiveByTrip only returns tokens that have
// not expired at now.
type ShareTokenRepository interface {
	Replace(ctx context.Context, token *entity.ShareToken) error
	GetActiveByTrip(ctx context.Context, tripID string, now time.Time) (*entity.ShareToken, error)
	GetByToken(ctx context.Context, token string) (*entity.ShareToken, error)
	DeleteByTrip(ctx context.Context, tripID string) error
	PurgeExpired(ctx context.Context, now time.Time) error
}
