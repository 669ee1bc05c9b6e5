package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should format with zero-padded 4-digit sequence", func(t *testing.T) {
		number, err := order.NewOrderNumber(day, 1)

		require.NoError(t, err)
		assert.Equal(t, "ORD-20240615-0001", number.String())
	})

	t.Run("should widen sequence beyond 9999", func(t *testing.T) {
		number, err := order.NewOrderNumber(day, 10000)

		require.NoError(t, err)
		assert.Equal(t, "ORD-20240615-10000", number.String())
	})

	t.Run("should normalize timestamp to midnight UTC", func(t *testing.T) {
		afternoon := time.Date(2024, 6, 15, 17, 42, 9, 0, time.UTC)
		number, err := order.NewOrderNumber(afternoon, 12)

		require.NoError(t, err)
		assert.Equal(t, day, number.Day())
		assert.Equal(t, 12, number.Sequence())
	})

	t.Run("should reject zero day", func(t *testing.T) {
		_, err := order.NewOrderNumber(time.Time{}, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive sequence", func(t *testing.T) {
		for _, seq := range []int{0, -1} {
			_, err := order.NewOrderNumber(day, seq)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestParseOrderNumber(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		number, err := order.ParseOrderNumber("ORD-20240615-0042")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), number.Day())
		assert.Equal(t, 42, number.Sequence())
	})

	t.Run("should round-trip through string", func(t *testing.T) {
		original, err := order.NewOrderNumber(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 7)
		require.NoError(t, err)

		parsed, err := order.ParseOrderNumber(original.String())
		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		invalid := []string{
			"",
			"ORD-20240615",
			"ORD-20240615-0001-extra",
			"XYZ-20240615-0001",
			"ORD-2024065-0001",
			"ORD-20240615-one",
			"ORD-20240615-0000",
		}

		for _, s := range invalid {
			_, err := order.ParseOrderNumber(s)
			require.Error(t, err, "expected error for %q", s)
		}
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var number order.OrderNumber
		err := number.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should accept constructed value", func(t *testing.T) {
		number, err := order.NewOrderNumber(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 1)
		require.NoError(t, err)
		require.NoError(t, number.Validate())
	})
}
