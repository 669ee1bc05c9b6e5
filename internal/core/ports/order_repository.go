package ports

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrStaleOrder is returned by Update when the order's status in storage no
// longer matches the status observed at read time. The read-modify-write
// cycle lost a race with a concurrent transition; the caller must re-read and
// retry or surface the conflict.
var ErrStaleOrder = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and its order number unique.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on observedStatus, the lifecycle status loaded at read time:
	// if the stored status has changed in between, Update returns ErrStaleOrder
	// and nothing is written. Line items are immutable and never updated.
	Update(ctx context.Context, aggregate *order.Order, observedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderCounterRepository hands out daily order sequence numbers.
type OrderCounterRepository interface {
	// NextSequence atomically increments and returns the counter for the given
	// calendar day (midnight UTC). The first call of a day returns 1.
	NextSequence(ctx context.Context, day time.Time) (int, error)
}
