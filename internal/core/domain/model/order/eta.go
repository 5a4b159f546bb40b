package order

import (
	"fmt"
	"time"
)

// FormatETA renders the estimated delivery time of an order as display text.
//
// Rules:
//   - a Delivered order renders as "Delivered" regardless of the estimate
//   - otherwise the minutes remaining until the estimate are computed,
//     floored at zero
//   - under a minute renders as "Any moment now"
//   - under an hour renders as "N min" / "N mins"
//   - an hour or more renders as "Hh Mm", omitting the minutes part when zero
//
// The estimate is fixed at order creation and never recomputed as the status
// advances, so the rendered remaining time can drift from real elapsed time.
func FormatETA(status Status, estimatedDeliveryTime time.Time, now time.Time) string {
	if status == Delivered {
		return "Delivered"
	}

	minutes := int(estimatedDeliveryTime.Sub(now).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	switch {
	case minutes < 1:
		return "Any moment now"
	case minutes == 1:
		return "1 min"
	case minutes < 60:
		return fmt.Sprintf("%d mins", minutes)
	default:
		hours := minutes / 60
		remainder := minutes % 60
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh %dm", hours, remainder)
	}
}
