package orderupdate_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/orderupdate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderUpdate(t *testing.T) {
	t.Run("should keep caller-supplied notes", func(t *testing.T) {
		u, err := orderupdate.NewOrderUpdate(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Delivered, "left at front desk")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, order.Delivered, u.Status())
		assert.Equal(t, "left at front desk", u.Notes())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("empty notes fall back to the default note with spaces", func(t *testing.T) {
		u, err := orderupdate.NewOrderUpdate(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.InTransit, "")

		require.NoError(t, err)
		assert.Equal(t, "Order status updated to in transit", u.Notes())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		u, err := orderupdate.NewOrderUpdate(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Unknown, "")

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalid kernel.UUID

		u, err := orderupdate.NewOrderUpdate(
			invalid, kernel.NewUUID(), kernel.NewUUID(), order.Delivered, "")

		require.Error(t, err)
		assert.Nil(t, u)
	})
}

func TestDefaultNote(t *testing.T) {
	assert.Equal(t, "Order status updated to picked up", orderupdate.DefaultNote(order.PickedUp))
	assert.Equal(t, "Order status updated to delivered", orderupdate.DefaultNote(order.Delivered))
}

func TestRetryNote(t *testing.T) {
	assert.Equal(t, "Order retry requested by driver", orderupdate.RetryNote)
}

func TestRestoreOrderUpdate(t *testing.T) {
	t.Run("should restore persisted state as-is", func(t *testing.T) {
		createdAt := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)

		u, err := orderupdate.RestoreOrderUpdate(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Failed, "customer unreachable", createdAt)

		require.NoError(t, err)
		assert.Equal(t, "customer unreachable", u.Notes())
		assert.Equal(t, createdAt, u.CreatedAt())
	})
}

func TestOrderUpdateValidate(t *testing.T) {
	var u orderupdate.OrderUpdate

	assert.ErrorIs(t, u.Validate(), orderupdate.ErrOrderUpdateIsNotConstructed)
}
