package queries_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStoreOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetStoreOrdersQuery("store-1")
	require.NoError(t, err)
	assert.Equal(t, "store-1", query.StoreID())
	require.NoError(t, query.Validate())
}

func TestNewGetStoreOrdersQuery_EmptyStoreID(t *testing.T) {
	_, err := queries.NewGetStoreOrdersQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrStoreIDIsRequired)
}

func TestGetStoreOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStoreOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStoreOrdersQueryIsNotConstructed)
}

func TestNewGetStalePendingOrdersQuery_Valid(t *testing.T) {
	cutoff := time.Date(2024, 6, 15, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	query, err := queries.NewGetStalePendingOrdersQuery(cutoff)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, query.Cutoff().Location())
	assert.True(t, query.Cutoff().Equal(cutoff))
	require.NoError(t, query.Validate())
}

func TestNewGetStalePendingOrdersQuery_ZeroCutoff(t *testing.T) {
	_, err := queries.NewGetStalePendingOrdersQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCutoffIsRequired)
}

func TestGetStalePendingOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStalePendingOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStalePendingOrdersQueryIsNotConstructed)
}
