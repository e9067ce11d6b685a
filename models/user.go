package models

// UserProfile is the single persisted record. It is created on the
// first successful order and overwritten on every one after: name and
// phone always, address only when the order was a Delivery.
type UserProfile struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	MemberSince string `json:"member_since"`
	OrdersCount int    `json:"orders_count"`
}
