package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":    order.Pending,
			"assigned":   order.Assigned,
			"picked_up":  order.PickedUp,
			"in_transit": order.InTransit,
			"delivered":  order.Delivered,
			"failed":     order.Failed,
			"cancelled":  order.Cancelled,
		}

		for str, expected := range cases {
			status, err := order.StatusFromString(str)

			require.NoError(t, err, str)
			assert.Equal(t, expected, status)
			assert.Equal(t, str, status.String())
		}
	})

	t.Run("should fail on unknown string", func(t *testing.T) {
		status, err := order.StatusFromString("shipped")

		require.Error(t, err)
		assert.Equal(t, order.Unknown, status)
		assert.Contains(t, err.Error(), "not a valid status")
	})

	t.Run("should not parse unknown", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatusValidate(t *testing.T) {
	t.Run("should accept every listed status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(42).Validate())
	})
}

func TestStatusCapabilities(t *testing.T) {
	t.Run("only assigned can start", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			assert.Equal(t, status == order.Assigned, status.CanStart(), status.String())
		}
	})

	t.Run("deliver affordance tracks assigned, not picked up", func(t *testing.T) {
		assert.True(t, order.Assigned.CanDeliver())
		assert.False(t, order.PickedUp.CanDeliver())
		assert.False(t, order.InTransit.CanDeliver())
	})

	t.Run("only in transit can complete", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			assert.Equal(t, status == order.InTransit, status.CanComplete(), status.String())
		}
	})
}

func TestStatusTransitionMethods(t *testing.T) {
	t.Run("start moves assigned to in transit", func(t *testing.T) {
		next, err := order.Assigned.Start()

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, next)
	})

	t.Run("start fails from any other status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			if status == order.Assigned {
				continue
			}
			_, err := status.Start()
			require.Error(t, err, status.String())
		}
	})

	t.Run("complete moves in transit to delivered", func(t *testing.T) {
		next, err := order.InTransit.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("complete fails from assigned even though deliver affordance is shown", func(t *testing.T) {
		_, err := order.Assigned.Complete()

		require.Error(t, err)
	})

	t.Run("retry moves failed back to assigned", func(t *testing.T) {
		next, err := order.Failed.Retry()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("retry fails from any other status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			if status == order.Failed {
				continue
			}
			_, err := status.Retry()
			require.Error(t, err, status.String())
		}
	})
}

func TestAdminTabPartition(t *testing.T) {
	t.Run("should map each status to its tab", func(t *testing.T) {
		cases := map[order.Status]order.AdminTab{
			order.Pending:   order.AdminTabPending,
			order.Assigned:  order.AdminTabActive,
			order.PickedUp:  order.AdminTabActive,
			order.InTransit: order.AdminTabActive,
			order.Delivered: order.AdminTabCompleted,
			order.Cancelled: order.AdminTabCompleted,
		}

		for status, tab := range cases {
			assert.Equal(t, tab, status.AdminTab(), status.String())
		}
	})

	t.Run("failed appears in no admin tab", func(t *testing.T) {
		assert.Equal(t, order.AdminTabNone, order.Failed.AdminTab())
	})
}

func TestDriverTabPartition(t *testing.T) {
	t.Run("partition is exhaustive and non-overlapping", func(t *testing.T) {
		counts := map[order.DriverTab]int{}
		for _, status := range order.AllStatuses() {
			counts[status.DriverTab()]++
		}

		assert.Equal(t, 1, counts[order.DriverTabCompleted])
		assert.Equal(t, 1, counts[order.DriverTabFailed])
		assert.Equal(t, len(order.AllStatuses())-2, counts[order.DriverTabActive])
	})

	t.Run("delivered is completed and failed is failed", func(t *testing.T) {
		assert.Equal(t, order.DriverTabCompleted, order.Delivered.DriverTab())
		assert.Equal(t, order.DriverTabFailed, order.Failed.DriverTab())
		assert.Equal(t, order.DriverTabActive, order.Cancelled.DriverTab())
	})
}
