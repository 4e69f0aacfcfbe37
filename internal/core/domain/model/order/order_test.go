package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	return order.Details{
		CustomerName:    "Jordan Avery",
		CustomerPhone:   "+15550100",
		PickupAddress:   "12 Dock St",
		DeliveryAddress: "88 Hill Rd",
	}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	number := order.GenerateNumber()

	t.Run("should create a pending order without a driver", func(t *testing.T) {
		o, err := order.NewOrder(validID, number, adminID, validDetails(), order.DefaultPriority, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, number, o.Number())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Normal, o.Priority())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.AssignedAt())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should create an assigned order when a driver is supplied", func(t *testing.T) {
		driverID := kernel.NewUUID()

		o, err := order.NewOrder(validID, number, adminID, validDetails(), order.Urgent, &driverID)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
		require.NotNil(t, o.AssignedAt())
		assert.Equal(t, o.CreatedAt(), *o.AssignedAt())
	})

	t.Run("should fail without required details", func(t *testing.T) {
		o, err := order.NewOrder(validID, number, adminID, order.Details{}, order.DefaultPriority, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
		assert.ErrorIs(t, err, order.ErrPickupAddressIsRequired)
		assert.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, number, adminID, validDetails(), order.DefaultPriority, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid priority", func(t *testing.T) {
		o, err := order.NewOrder(validID, number, adminID, validDetails(), order.Priority(42), nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid driver UUID", func(t *testing.T) {
		var invalidDriver kernel.UUID

		o, err := order.NewOrder(validID, number, adminID, validDetails(), order.DefaultPriority, &invalidDriver)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state as-is", func(t *testing.T) {
		id := kernel.NewUUID()
		adminID := kernel.NewUUID()
		driverID := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)
		assignedAt := createdAt.Add(30 * time.Minute)

		o, err := order.RestoreOrder(
			id, "ORD-000001-ABC", order.InTransit, order.High,
			&driverID, adminID, validDetails(), createdAt, updatedAt, &assignedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		assert.Equal(t, assignedAt, *o.AssignedAt())
	})

	t.Run("should reject a corrupt status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-000001-ABC", order.Status(99), order.Normal,
			nil, kernel.NewUUID(), validDetails(), time.Now(), time.Now(), nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is rejected", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(), kernel.NewUUID(),
		validDetails(), order.DefaultPriority, nil)
	require.NoError(t, err)
	return o
}

func TestOrderAssign(t *testing.T) {
	t.Run("should force assigned and stamp assignment time", func(t *testing.T) {
		o := newPendingOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.Assign(driverID))

		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.Driver().IsEqual(driverID))
		require.NotNil(t, o.AssignedAt())
		assert.Equal(t, *o.AssignedAt(), o.UpdatedAt())
	})

	t.Run("reassignment pulls a delivered order back to assigned", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.CompleteDelivery())
		require.Equal(t, order.Delivered, o.Status())

		require.NoError(t, o.Assign(kernel.NewUUID()))

		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("should reject invalid driver", func(t *testing.T) {
		o := newPendingOrder(t)
		var invalid kernel.UUID

		require.Error(t, o.Assign(invalid))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrderSetStatus(t *testing.T) {
	t.Run("admin override accepts any valid target", func(t *testing.T) {
		o := newPendingOrder(t)

		for _, target := range order.AllStatuses() {
			require.NoError(t, o.SetStatus(target), target.String())
			assert.Equal(t, target, o.Status())
		}
	})

	t.Run("should reject an invalid target", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.SetStatus(order.Unknown))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrderDriverLifecycle(t *testing.T) {
	t.Run("happy path assigned to delivered", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		assert.True(t, o.CanStart())
		assert.True(t, o.CanDeliver())
		assert.False(t, o.CanComplete())

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.InTransit, o.Status())
		assert.False(t, o.CanStart())
		assert.True(t, o.CanComplete())

		require.NoError(t, o.CompleteDelivery())
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, o.CanComplete())
	})

	t.Run("start fails from pending", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.StartDelivery())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("complete fails before start", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.Error(t, o.CompleteDelivery())
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("retry recovers a failed order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.SetStatus(order.Failed))

		require.NoError(t, o.Retry())

		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("retry fails when not failed", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.Retry())
	})
}

func TestOrderChangeStatus(t *testing.T) {
	t.Run("driver may correct a delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.SetStatus(order.Delivered))

		require.NoError(t, o.ChangeStatus(order.Failed))

		assert.Equal(t, order.Failed, o.Status())
	})

	t.Run("driver may rework a failed order into any status", func(t *testing.T) {
		for _, target := range order.AllStatuses() {
			o := newPendingOrder(t)
			require.NoError(t, o.SetStatus(order.Failed))

			require.NoError(t, o.ChangeStatus(target), target.String())
			assert.Equal(t, target, o.Status())
		}
	})

	t.Run("change is unavailable mid-flight", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())

		require.Error(t, o.ChangeStatus(order.Failed))
		assert.Equal(t, order.InTransit, o.Status())
	})
}

func TestOrderIsEqual(t *testing.T) {
	o1 := newPendingOrder(t)
	o2 := newPendingOrder(t)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}
