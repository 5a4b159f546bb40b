package order_test

import (
	"testing"
	"time"

	"mealtrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestFormatETA(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should render Delivered regardless of the estimate", func(t *testing.T) {
		assert.Equal(t, "Delivered", order.FormatETA(order.Delivered, now.Add(2*time.Hour), now))
		assert.Equal(t, "Delivered", order.FormatETA(order.Delivered, now.Add(-2*time.Hour), now))
	})

	t.Run("should render remaining time by magnitude", func(t *testing.T) {
		tests := []struct {
			name      string
			remaining time.Duration
			want      string
		}{
			{"estimate in the past", -30 * time.Minute, "Any moment now"},
			{"estimate right now", 0, "Any moment now"},
			{"under a minute", 45 * time.Second, "Any moment now"},
			{"exactly one minute", time.Minute, "1 min"},
			{"a few minutes", 5 * time.Minute, "5 mins"},
			{"just under an hour", 59 * time.Minute, "59 mins"},
			{"exactly one hour", time.Hour, "1h"},
			{"hour with minutes", 75 * time.Minute, "1h 15m"},
			{"several hours even", 3 * time.Hour, "3h"},
			{"several hours with minutes", 2*time.Hour + 40*time.Minute, "2h 40m"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				got := order.FormatETA(order.OutForDelivery, now.Add(test.remaining), now)

				assert.Equal(t, test.want, got)
			})
		}
	})

	t.Run("should floor fractional minutes", func(t *testing.T) {
		got := order.FormatETA(order.Cooking, now.Add(90*time.Second), now)

		assert.Equal(t, "1 min", got)
	})
}
