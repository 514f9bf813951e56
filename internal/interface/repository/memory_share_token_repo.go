package repository

import (
	"context"
	"sync"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
)

// MemoryShareTokenRepo implements ShareTokenRepository in memory. Used in
// tests and when the service runs without Mongo.
type MemoryShareTokenRepo struct {
	mu     sync.RWMutex
	tokens map[string]entity.ShareToken // keyed by token id
}

// NewMemoryShareTokenRepo creates an empty in-memory token repository.
func NewMemoryShareTokenRepo() *MemoryShareTokenRepo {
	return &MemoryShareTokenRepo{tokens: make(map[string]entity.ShareToken)}
}

var _ repository.ShareTokenRepository = (*MemoryShareTokenRepo)(nil)

func (r *MemoryShareTokenRepo) Replace(ctx context.Context, token *entity.ShareToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		if t.TripID == token.TripID {
			delete(r.tokens, id)
		}
	}
	r.tokens[token.ID] = *token
	return nil
}

func (r *MemoryShareTokenRepo) GetActiveByTrip(ctx context.Context, tripID string, now time.Time) (*entity.ShareToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tokens {
		if t.TripID == tripID && !t.Expired(now) {
			t := t
			return &t, nil
		}
	}
	return nil, entity.ErrShareTokenNotFound
}

func (r *MemoryShareTokenRepo) GetByToken(ctx context.Context, token string) (*entity.ShareToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tokens {
		if t.Token == token {
			t := t
			return &t, nil
		}
	}
	return nil, entity.ErrShareTokenNotFound
}

func (r *MemoryShareTokenRepo) DeleteByTrip(ctx context.Context, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		if t.TripID == tripID {
			delete(r.tokens, id)
		}
	}
	return nil
}

func (r *MemoryShareTokenRepo) PurgeExpired(ctx context.Context, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		if t.Expired(now) {
			delete(r.tokens, id)
		}
	}
	return nil
}
