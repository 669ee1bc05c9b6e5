package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, observed order.Status) error {
	args := m.Called(ctx, o, observed)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCounterRepository struct{ mock.Mock }

func (m *MockCounterRepository) NextSequence(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoW struct{ MockOrderUoW }

func (m *MockCreateOrderUoW) OrderCounterRepository() ports.OrderCounterRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderCounterRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

func validItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("prod-1", "Espresso Grinder", 1, decimal.NewFromFloat(129.00), "")
	require.NoError(t, err)
	return []order.Item{item}
}

func validAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("12 Main St", "Springfield", "IL", "62701", "US")
	require.NoError(t, err)
	return address
}

func validTotals(t *testing.T) order.Totals {
	t.Helper()
	totals, err := order.NewTotals(
		decimal.NewFromFloat(5.00),
		decimal.NewFromFloat(129.00),
		decimal.NewFromFloat(10.32),
		decimal.NewFromFloat(144.32),
	)
	require.NoError(t, err)
	return totals
}

func validCreateOrderCommand(t *testing.T, method order.PaymentMethod) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		"customer-1", "store-1", validItems(t), method, validAddress(t), validTotals(t), "",
	)
	require.NoError(t, err)
	return cmd
}

// persistedOrder builds an order in the given lifecycle state, as a repository
// Get would return it.
func persistedOrder(t *testing.T, status order.Status, method order.PaymentMethod) *order.Order {
	t.Helper()
	number, err := order.NewOrderNumber(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		number,
		"customer-1",
		"store-1",
		validItems(t),
		status,
		order.PaymentPending,
		method,
		validAddress(t),
		validTotals(t),
		"",
		time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)
	return o
}
