package entities

import "time"

// OrderStatus is the order lifecycle state.
//
// Transitions:
//   - open -> closed (finalize, freezes Price)
//   - open|closed -> removed (delete)
//
// Nothing leaves closed except deletion.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)

// Order is a customer job. Number is operator-entered and may repeat across
// orders; ID is the storage identity.
//
// Price is nil while open and holds the frozen total once closed.
type Order struct {
	ID         string      `json:"id"`
	Number     string      `json:"number"`
	Date       string      `json:"date"`
	Status     OrderStatus `json:"status"`
	Operations []Operation `json:"operations"`
	Price      *Money      `json:"price,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	ClosedAt   *time.Time  `json:"closedAt,omitempty"`
}

func (o Order) IsClosed() bool {
	return o.Status == OrderStatusClosed
}

// FrozenPrice returns the stored price, or zero when none was frozen.
func (o Order) FrozenPrice() Money {
	if o.Price == nil {
		return ZeroMoney()
	}
	return *o.Price
}

// Clone deep-copies the order so callers cannot mutate store state.
func (o Order) Clone() Order {
	c := o
	c.Operations = append([]Operation(nil), o.Operations...)
	if o.Price != nil {
		p := *o.Price
		c.Price = &p
	}
	if o.ClosedAt != nil {
		t := *o.ClosedAt
		c.ClosedAt = &t
	}
	return c
}

// OrdersData is the persisted document stored under the "ordersData" key.
type OrdersData struct {
	Orders []Order `json:"orders"`
}
