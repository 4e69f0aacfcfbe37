package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("constructed queries validate", func(t *testing.T) {
		adminOrders, err := queries.NewGetAdminOrdersQuery(id)
		require.NoError(t, err)
		assert.NoError(t, adminOrders.Validate())
		assert.True(t, adminOrders.CreatedBy().IsEqual(id))

		driverOrders, err := queries.NewGetDriverOrdersQuery(id)
		require.NoError(t, err)
		assert.NoError(t, driverOrders.Validate())

		route, err := queries.NewGetDriverRouteQuery(id)
		require.NoError(t, err)
		assert.NoError(t, route.Validate())

		updates, err := queries.NewGetOrderUpdatesQuery(id)
		require.NoError(t, err)
		assert.NoError(t, updates.Validate())

		stats, err := queries.NewGetDashboardStatsQuery(id)
		require.NoError(t, err)
		assert.NoError(t, stats.Validate())

		export, err := queries.NewExportOrdersQuery(id)
		require.NoError(t, err)
		assert.NoError(t, export.Validate())

		assert.NoError(t, queries.NewGetSystemStatsQuery().Validate())
	})

	t.Run("invalid scope id is rejected", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := queries.NewGetAdminOrdersQuery(invalid)
		assert.Error(t, err)
		_, err = queries.NewGetDriverOrdersQuery(invalid)
		assert.Error(t, err)
		_, err = queries.NewGetDriverRouteQuery(invalid)
		assert.Error(t, err)
		_, err = queries.NewGetOrderUpdatesQuery(invalid)
		assert.Error(t, err)
		_, err = queries.NewGetDashboardStatsQuery(invalid)
		assert.Error(t, err)
		_, err = queries.NewExportOrdersQuery(invalid)
		assert.Error(t, err)
	})

	t.Run("zero value queries fail validation", func(t *testing.T) {
		assert.Error(t, queries.GetAdminOrdersQuery{}.Validate())
		assert.Error(t, queries.GetDriverOrdersQuery{}.Validate())
		assert.Error(t, queries.GetDriverRouteQuery{}.Validate())
		assert.Error(t, queries.GetOrderUpdatesQuery{}.Validate())
		assert.Error(t, queries.GetDashboardStatsQuery{}.Validate())
		assert.Error(t, queries.GetSystemStatsQuery{}.Validate())
		assert.Error(t, queries.ExportOrdersQuery{}.Validate())
	})
}
