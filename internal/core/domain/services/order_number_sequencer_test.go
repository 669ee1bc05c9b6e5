package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounterStore struct{ mock.Mock }

func (m *MockCounterStore) NextSequence(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

func TestNewOrderNumberSequencer(t *testing.T) {
	t.Run("should require a counter store", func(t *testing.T) {
		_, err := services.NewOrderNumberSequencer(nil)

		require.Error(t, err)
		assert.Equal(t, services.ErrCounterStoreIsRequired, err)
	})
}

func TestOrderNumberSequencer_Next(t *testing.T) {
	t.Run("should format number from day and counter value", func(t *testing.T) {
		ctx := t.Context()
		now := time.Date(2024, 6, 15, 17, 42, 9, 0, time.UTC)
		day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

		counters := new(MockCounterStore)
		counters.On("NextSequence", ctx, day).Return(3, nil).Once()

		sequencer, err := services.NewOrderNumberSequencer(counters)
		require.NoError(t, err)

		number, err := sequencer.Next(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, "ORD-20240615-0003", number.String())
		counters.AssertExpectations(t)
	})

	t.Run("should normalize non-UTC timestamps to the UTC calendar day", func(t *testing.T) {
		ctx := t.Context()
		zone := time.FixedZone("UTC+5", 5*3600)
		now := time.Date(2024, 6, 16, 2, 0, 0, 0, zone) // still June 15 in UTC
		day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

		counters := new(MockCounterStore)
		counters.On("NextSequence", ctx, day).Return(1, nil).Once()

		sequencer, err := services.NewOrderNumberSequencer(counters)
		require.NoError(t, err)

		number, err := sequencer.Next(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, "ORD-20240615-0001", number.String())
	})

	t.Run("should propagate counter store failures", func(t *testing.T) {
		ctx := t.Context()
		counters := new(MockCounterStore)
		counters.On("NextSequence", ctx, mock.Anything).Return(0, errors.New("counter unavailable")).Once()

		sequencer, err := services.NewOrderNumberSequencer(counters)
		require.NoError(t, err)

		_, err = sequencer.Next(ctx, time.Now())
		require.Error(t, err)
	})
}
