package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
		"GetStoreOrdersQuery must be created via NewGetStoreOrdersQuery constructor",
	)
	ErrStoreIDIsRequired = errors.New("store id is required")
)

// GetStoreOrdersQuery retrieves every order placed against one store,
// newest first. Used by store dashboards; it reads straight from the
// database and bypasses the aggregate.
type GetStoreOrdersQuery struct {
	storeID string

	guard guard.ConstructorGuard
}

// NewGetStoreOrdersQuery creates a query for a store's order history.
func NewGetStoreOrdersQuery(storeID string) (GetStoreOrdersQuery, error) {
	if storeID == "" {
		return GetStoreOrdersQuery{}, ErrStoreIDIsRequired
	}

	return GetStoreOrdersQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose orders are requested.
func (q GetStoreOrdersQuery) StoreID() string {
	return q.storeID
}

// GetStoreOrdersQueryResponse is one row of a store's order history.
type GetStoreOrdersQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerID    string
	Status        string
	PaymentStatus string
	PaymentMethod string
	TotalAmount   decimal.Decimal
	OrderDate     time.Time
	DeliveredAt   *time.Time
}
