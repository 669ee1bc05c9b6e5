package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
		"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// GetStalePendingOrdersQuery finds orders still in "pending" status whose
// order date lies before the cutoff. Feeds the periodic stale order sweep.
type GetStalePendingOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders placed
// before the given cutoff.
func NewGetStalePendingOrdersQuery(cutoff time.Time) (GetStalePendingOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStalePendingOrdersQuery{}, ErrCutoffIsRequired
	}

	return GetStalePendingOrdersQuery{
		cutoff: cutoff.UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// Cutoff returns the order date threshold, in UTC.
func (q GetStalePendingOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStalePendingOrdersQueryResponse identifies one stale pending order.
type GetStalePendingOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	StoreID     string
	OrderDate   time.Time
}
