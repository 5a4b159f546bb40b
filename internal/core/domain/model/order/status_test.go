package order_test

import (
	"fmt"
	"testing"

	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Preparing))
		assert.Equal(t, 4, int(order.Cooking))
		assert.Equal(t, 5, int(order.QualityCheck))
		assert.Equal(t, 6, int(order.Packaging))
		assert.Equal(t, 7, int(order.ReadyForPickup))
		assert.Equal(t, 8, int(order.OutForDelivery))
		assert.Equal(t, 9, int(order.Delivered))
		assert.Equal(t, 10, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all live statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Preparing,
			order.Cooking,
			order.QualityCheck,
			order.Packaging,
			order.ReadyForPickup,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(11),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return snake_case wire names", func(t *testing.T) {
		expected := map[order.Status]string{
			order.Unknown:        "unknown",
			order.Pending:        "pending",
			order.Confirmed:      "confirmed",
			order.Preparing:      "preparing",
			order.Cooking:        "cooking",
			order.QualityCheck:   "quality_check",
			order.Packaging:      "packaging",
			order.ReadyForPickup: "ready_for_pickup",
			order.OutForDelivery: "out_for_delivery",
			order.Delivered:      "delivered",
			order.Cancelled:      "cancelled",
		}

		for status, name := range expected {
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should render invalid values as unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Cooking,
			order.QualityCheck, order.Packaging, order.ReadyForPickup,
			order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "shipped", "OUT_FOR_DELIVERY"} {
			_, err := order.StatusFromString(name)

			require.Error(t, err, "expected error for %q", name)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_Message(t *testing.T) {
	t.Run("should return the fixed literal for every status", func(t *testing.T) {
		expected := map[order.Status]string{
			order.Pending:        "Your order is being processed",
			order.Confirmed:      "Your order has been confirmed and is being prepared",
			order.Preparing:      "Our chefs are gathering fresh ingredients for your meal",
			order.Cooking:        "Your meal is being freshly prepared by our expert chefs",
			order.QualityCheck:   "Final quality check to ensure perfection",
			order.Packaging:      "Your meal is being carefully packaged for delivery",
			order.ReadyForPickup: "Your order is ready and waiting for pickup",
			order.OutForDelivery: "Your order is on its way to you!",
			order.Delivered:      "Your order has been delivered. Enjoy your meal!",
			order.Cancelled:      "Your order has been cancelled",
		}

		for status, message := range expected {
			assert.Equal(t, message, status.Message(), "message for %s", status)
		}
	})

	t.Run("should return empty message for Unknown", func(t *testing.T) {
		assert.Empty(t, order.Unknown.Message())
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should walk the full progression in order", func(t *testing.T) {
		expected := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Preparing,
			order.Cooking,
			order.QualityCheck,
			order.Packaging,
			order.ReadyForPickup,
			order.OutForDelivery,
			order.Delivered,
		}

		current := order.Pending
		walked := []order.Status{current}
		for {
			next, ok := current.Next()
			if !ok {
				break
			}
			walked = append(walked, next)
			current = next
		}

		assert.Equal(t, expected, walked)
	})

	t.Run("should have no successor for Delivered", func(t *testing.T) {
		_, ok := order.Delivered.Next()
		assert.False(t, ok)
	})

	t.Run("should have no successor for Cancelled", func(t *testing.T) {
		_, ok := order.Cancelled.Next()
		assert.False(t, ok)
	})

	t.Run("should have no successor for Unknown", func(t *testing.T) {
		_, ok := order.Unknown.Next()
		assert.False(t, ok)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from any non-terminal status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Cooking,
			order.QualityCheck, order.Packaging, order.ReadyForPickup,
			order.OutForDelivery,
		} {
			newStatus, err := status.Cancel()

			require.NoError(t, err, "cancel from %s", status)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("should not cancel a delivered order", func(t *testing.T) {
		_, err := order.Delivered.Cancel()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivered is not a valid status to cancel")
	})

	t.Run("should not cancel an already cancelled order", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()

		require.Error(t, err)
	})

	t.Run("should not cancel an invalid status", func(t *testing.T) {
		_, err := order.Unknown.Cancel()

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should be terminal only for Delivered and Cancelled", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())

		for _, status := range []order.Status{
			order.Unknown, order.Pending, order.Confirmed, order.Preparing,
			order.Cooking, order.QualityCheck, order.Packaging,
			order.ReadyForPickup, order.OutForDelivery,
		} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_ProgressAndColor(t *testing.T) {
	t.Run("should increase progress monotonically along the progression", func(t *testing.T) {
		previous := -1
		for current, ok := order.Pending, true; ok; current, ok = current.Next() {
			progress := current.Progress()

			assert.Greater(t, progress, previous, "progress for %s", current)
			previous = progress
		}
	})

	t.Run("should reach full progress at delivered", func(t *testing.T) {
		assert.Equal(t, 100, order.Delivered.Progress())
	})

	t.Run("should have zero progress for cancelled and unknown", func(t *testing.T) {
		assert.Equal(t, 0, order.Cancelled.Progress())
		assert.Equal(t, 0, order.Unknown.Progress())
	})

	t.Run("should have a distinct color per valid status", func(t *testing.T) {
		seen := map[string]order.Status{}
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Cooking,
			order.QualityCheck, order.Packaging, order.ReadyForPickup,
			order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			color := status.Color()

			assert.Regexp(t, `^#[0-9A-F]{6}$`, color)
			_, duplicate := seen[color]
			assert.False(t, duplicate, "color %s reused", color)
			seen[color] = status
		}
	})

	t.Run("should fall back to gray for invalid values", func(t *testing.T) {
		assert.Equal(t, "#9CA3AF", order.Unknown.Color())
		assert.Equal(t, "#9CA3AF", order.Status(42).Color())
	})
}
