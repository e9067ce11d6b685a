package models

import "time"

// OrderType is how the customer receives the order
type OrderType string

const (
	TypeDineIn   OrderType = "Dine-in"
	TypeTakeaway OrderType = "Takeaway"
	TypeDelivery OrderType = "Delivery"
)

// CustomerDetails holds contact info collected during checkout. Exactly
// one of Address / PickupTime / TableNumber is set, matching the order
// type.
type CustomerDetails struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	PickupTime  string `json:"pickup_time,omitempty"`
	TableNumber string `json:"table_number,omitempty"`
}

// OrderDraft is the in-progress checkout. Type stays empty until the
// customer picks one; the draft is discarded on cancel or finalize.
type OrderDraft struct {
	Type    OrderType       `json:"type,omitempty"`
	Details CustomerDetails `json:"details"`
}

// CheckoutStep enumerates the checkout dialogue states
type CheckoutStep string

const (
	StepIdle    CheckoutStep = "IDLE"
	StepType    CheckoutStep = "TYPE"
	StepName    CheckoutStep = "NAME"
	StepPhone   CheckoutStep = "PHONE"
	StepExtra   CheckoutStep = "EXTRA"
	StepConfirm CheckoutStep = "CONFIRM"
	StepEdit    CheckoutStep = "EDIT"
)

// StatusPreparing is the stored status of every finalized order. There
// is no fulfillment pipeline; the tracking view derives display
// progress from the order ID instead (see status.go).
const StatusPreparing = "Preparing"

// Order is an immutable snapshot appended to history at finalization
type Order struct {
	ID              string          `json:"id"`
	Items           []CartItem      `json:"items"`
	Total           int             `json:"total"`
	Status          string          `json:"status"`
	Date            time.Time       `json:"date"`
	OrderType       OrderType       `json:"order_type"`
	CustomerDetails CustomerDetails `json:"customer_details"`
}
