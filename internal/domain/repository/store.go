package repository

import "context"

// Store bundles the itinerary repositories behind one handle and provides
// the atomic unit every cascading mutation runs in.
//
// InTransaction executes fn against a view of the store in which all writes
// commit together or not at all. A concurrent reader never observes a
// renumbering midway, a dangling movement, or a partially applied cascade.
type Store interface {
	Trips() TripRepository
	Stops() StopRepository
	Movements() MovementRepository
	Activities() ActivityRepository

	InTransaction(ctx context.Context, fn func(Store) error) error
}
