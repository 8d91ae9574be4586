package entities

import "time"

// Notification is an informational message for the operator, e.g. an order
// left open for too long. It never affects pricing.
type Notification struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
