package services

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
)

// ErrCounterStoreIsRequired is returned when constructing a sequencer without a counter store.
var ErrCounterStoreIsRequired = errors.New("counter store is required")

// CounterStore hands out daily sequence numbers. The implementation must be
// atomic under concurrent callers: two creations on the same day must never
// observe the same sequence number.
type CounterStore interface {
	NextSequence(ctx context.Context, day time.Time) (int, error)
}

// OrderNumberSequencer produces unique, sortable, human-readable order
// identifiers of the form ORD-YYYYMMDD-NNNN.
//
// Deriving the next number by scanning the day's latest order races under
// concurrent creation, so the sequencer draws from an atomic per-day counter
// instead. N same-day creations are numbered 1..N.
type OrderNumberSequencer struct {
	counters CounterStore
}

// NewOrderNumberSequencer creates a sequencer over the given counter store.
func NewOrderNumberSequencer(counters CounterStore) (OrderNumberSequencer, error) {
	if counters == nil {
		return OrderNumberSequencer{}, ErrCounterStoreIsRequired
	}

	return OrderNumberSequencer{counters: counters}, nil
}

// Next returns a fresh order number for the calendar day (UTC) of now.
// The counter increment happens inside the caller's transaction, so a rolled
// back order creation releases its sequence number as well.
func (s OrderNumberSequencer) Next(ctx context.Context, now time.Time) (order.OrderNumber, error) {
	utc := now.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	sequence, err := s.counters.NextSequence(ctx, day)
	if err != nil {
		return order.OrderNumber{}, err
	}

	return order.NewOrderNumber(day, sequence)
}
