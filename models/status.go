package models

import "strconv"

// Milestone keys per order type, in display order. The final key of
// each sequence is the terminal state.
var (
	milestonesDelivery = []string{"confirmed", "cooking", "onWay", "delivered"}
	milestonesTakeaway = []string{"confirmed", "cooking", "ready", "pickedUp"}
	milestonesDineIn   = []string{"confirmed", "cooking", "serving", "served"}
)

// StatusMilestones returns the ordered milestone keys for an order type
func StatusMilestones(typ OrderType) []string {
	switch typ {
	case TypeTakeaway:
		return milestonesTakeaway
	case TypeDineIn:
		return milestonesDineIn
	default:
		return milestonesDelivery
	}
}

// TrackingStatus is the display-time view of an order's progress
type TrackingStatus struct {
	OrderType  OrderType `json:"order_type"`
	Milestones []string  `json:"milestones"`
	Progress   int       `json:"progress"`
	Current    string    `json:"current"`
	Done       bool      `json:"done"`
}

// DeriveStatus computes the simulated tracking status for an order ID.
// Progress is the ID's numeric value modulo 4; when the type is unknown
// it too is derived from the ID (last digit 0-3 Delivery, 4-6 Takeaway,
// 7-9 Dine-in). Deterministic on purpose: same ID, same answer.
func DeriveStatus(orderID string, typ OrderType) TrackingStatus {
	n := numericValue(orderID)

	if typ == "" {
		switch m := n % 10; {
		case m >= 4 && m <= 6:
			typ = TypeTakeaway
		case m >= 7:
			typ = TypeDineIn
		default:
			typ = TypeDelivery
		}
	}

	steps := StatusMilestones(typ)
	progress := n % 4
	return TrackingStatus{
		OrderType:  typ,
		Milestones: steps,
		Progress:   progress,
		Current:    steps[progress],
		Done:       progress == len(steps)-1,
	}
}

// numericValue strips non-digits and parses what remains, zero on junk
func numericValue(id string) int {
	digits := make([]byte, 0, len(id))
	for i := 0; i < len(id); i++ {
		if id[i] >= '0' && id[i] <= '9' {
			digits = append(digits, id[i])
		}
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
