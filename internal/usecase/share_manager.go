package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/logger"

	"github.com/google/uuid"
)

// ShareManager issues read-only share links for a trip's timeline. A trip
// holds at most one active token; creating a new one replaces the old.
type ShareManager struct {
	store  repository.Store
	tokens repository.ShareTokenRepository
	ttl    time.Duration
	logger logger.Logger
}

// NewShareManager creates a new share manager.
func NewShareManager(store repository.Store, tokens repository.ShareTokenRepository, ttl time.Duration, log logger.Logger) *ShareManager {
	return &ShareManager{
		store:  store,
		tokens: tokens,
		ttl:    ttl,
		logger: log,
	}
}

// Create issues a fresh share token for the trip, replacing any prior one.
// Expired tokens of other trips are purged opportunistically.
func (m *ShareManager) Create(ctx context.Context, tripID string) (*entity.ShareToken, error) {
	if _, err := m.store.Trips().Get(ctx, tripID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := m.tokens.PurgeExpired(ctx, now); err != nil {
		m.logger.Warn("Failed to purge expired share tokens", "error", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	token := &entity.ShareToken{
		ID:        uuid.NewString(),
		TripID:    tripID,
		Token:     base64.RawURLEncoding.EncodeToString(raw),
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}
	if err := m.tokens.Replace(ctx, token); err != nil {
		return nil, err
	}

	m.logger.Info("Share token issued", "tripId", tripID, "expiresAt", token.ExpiresAt)
	return token, nil
}

// Get returns the trip's active share token, if one exists.
func (m *ShareManager) Get(ctx context.Context, tripID string) (*entity.ShareToken, error) {
	if _, err := m.store.Trips().Get(ctx, tripID); err != nil {
		return nil, err
	}
	return m.tokens.GetActiveByTrip(ctx, tripID, time.Now().UTC())
}

// Revoke removes the trip's share tokens.
func (m *ShareManager) Revoke(ctx context.Context, tripID string) error {
	if _, err := m.store.Trips().Get(ctx, tripID); err != nil {
		return err
	}
	return m.tokens.DeleteByTrip(ctx, tripID)
}

// SharedTimeline resolves a token and returns the read-only trip view with
// the expanded timeline. Expired or unknown tokens report not found.
func (m *ShareManager) SharedTimeline(ctx context.Context, token string) (*entity.SharedTrip, error) {
	record, err := m.tokens.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if record.Expired(time.Now().UTC()) {
		return nil, entity.ErrShareTokenNotFound
	}

	trip, err := m.store.Trips().Get(ctx, record.TripID)
	if err != nil {
		return nil, entity.ErrShareTokenNotFound
	}
	stops, err := m.store.Stops().ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	movements, err := m.store.Movements().ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	activities, err := m.store.Activities().ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	return &entity.SharedTrip{
		TripName:    trip.Name,
		CountryCode: trip.CountryCode,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Status:      trip.Status,
		Timeline:    ExpandTimeline(trip.StartDate, stops, movements, activities),
		ExpiresAt:   record.ExpiresAt,
	}, nil
}
