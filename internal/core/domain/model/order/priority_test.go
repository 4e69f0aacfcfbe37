package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityFromString(t *testing.T) {
	t.Run("should parse all valid priorities", func(t *testing.T) {
		cases := map[string]order.Priority{
			"low":    order.Low,
			"normal": order.Normal,
			"high":   order.High,
			"urgent": order.Urgent,
		}

		for str, expected := range cases {
			priority, err := order.PriorityFromString(str)

			require.NoError(t, err, str)
			assert.Equal(t, expected, priority)
			assert.Equal(t, str, priority.String())
		}
	})

	t.Run("should fail on unknown string", func(t *testing.T) {
		priority, err := order.PriorityFromString("critical")

		require.Error(t, err)
		assert.Equal(t, order.PriorityUnknown, priority)
	})
}

func TestPriorityValidate(t *testing.T) {
	t.Run("default priority is normal and valid", func(t *testing.T) {
		assert.Equal(t, order.Normal, order.DefaultPriority)
		assert.NoError(t, order.DefaultPriority.Validate())
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		assert.Error(t, order.PriorityUnknown.Validate())
		assert.Error(t, order.Priority(9).Validate())
		assert.Equal(t, "unknown", order.Priority(9).String())
	})
}
