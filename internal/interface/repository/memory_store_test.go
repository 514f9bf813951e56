package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"

	"github.com/stretchr/testify/require"
)

func seedTrip(t *testing.T, store *MemoryStore, id string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, store.Trips().Create(context.Background(), &entity.Trip{
		ID:          id,
		Name:        "Trip",
		CountryCode: "JP",
		Status:      entity.TripStatusPlanning,
		Currency:    "EUR",
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
}

func TestMemoryStoreTransactionRollsBackOnError(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedTrip(t, store, "t1")

	boom := errors.New("boom")
	err := store.InTransaction(ctx, func(tx repository.Store) error {
		if err := tx.Stops().Create(ctx, &entity.TripStop{ID: "s1", TripID: "t1", Name: "Tokyo", Nights: 1}); err != nil {
			return err
		}
		if err := tx.Trips().Delete(ctx, "t1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// all effects undone
	_, err = store.Trips().Get(ctx, "t1")
	require.NoError(t, err)
	_, err = store.Stops().Get(ctx, "s1")
	require.ErrorIs(t, err, entity.ErrStopNotFound)
}

func TestMemoryStoreTransactionCommits(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedTrip(t, store, "t1")

	err := store.InTransaction(ctx, func(tx repository.Store) error {
		return tx.Stops().Create(ctx, &entity.TripStop{ID: "s1", TripID: "t1", Name: "Tokyo", Nights: 1})
	})
	require.NoError(t, err)

	stop, err := store.Stops().Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "Tokyo", stop.Name)
}

func TestMemoryStoreNestedTransactionJoinsOuter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedTrip(t, store, "t1")

	err := store.InTransaction(ctx, func(tx repository.Store) error {
		return tx.InTransaction(ctx, func(inner repository.Store) error {
			return inner.Stops().Create(ctx, &entity.TripStop{ID: "s1", TripID: "t1", Name: "Tokyo", Nights: 1})
		})
	})
	require.NoError(t, err)

	_, err = store.Stops().Get(ctx, "s1")
	require.NoError(t, err)
}

func TestMemoryStopRepoReindex(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedTrip(t, store, "t1")

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Stops().Create(ctx, &entity.TripStop{ID: id, TripID: "t1", Name: id, SortIndex: i, Nights: 1}))
	}

	require.NoError(t, store.Stops().Reindex(ctx, "t1", []string{"c", "a", "b"}))

	stops, err := store.Stops().ListByTrip(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, stops, 3)
	require.Equal(t, "c", stops[0].ID)
	require.Equal(t, "a", stops[1].ID)
	require.Equal(t, "b", stops[2].ID)
	for i, stop := range stops {
		require.Equal(t, i, stop.SortIndex)
	}
}

func TestMemoryStopRepoMaxSortIndexEmpty(t *testing.T) {
	store := NewMemoryStore()

	maxIndex, err := store.Stops().MaxSortIndex(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, -1, maxIndex)
}

func TestMemoryMovementRepoDeleteByStopCountsBothDirections(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	movements := []entity.Movement{
		{ID: "m1", TripID: "t1", FromStopID: "a", ToStopID: "b", Type: entity.TransportTrain},
		{ID: "m2", TripID: "t1", FromStopID: "b", ToStopID: "c", Type: entity.TransportBus},
		{ID: "m3", TripID: "t1", FromStopID: "c", ToStopID: "a", Type: entity.TransportCar},
	}
	for i := range movements {
		require.NoError(t, store.Movements().Create(ctx, &movements[i]))
	}

	deleted, err := store.Movements().DeleteByStop(ctx, "b")
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	remaining, err := store.Movements().ListByTrip(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "m3", remaining[0].ID)
}
