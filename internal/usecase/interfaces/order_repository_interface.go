package interfaces

import (
	"context"
	"piecework_tracker/internal/domain/entities"
)

// IOrderRepository persists the whole order collection as one document.
//
// LoadOrders returns an empty OrdersData (not an error) when nothing was saved yet.

type IOrderRepository interface {
	LoadOrders(ctx context.Context) (entities.OrdersData, error)
	SaveOrders(ctx context.Context, data entities.OrdersData) error
}

// IOrderReader exposes a point-in-time copy of the order collection to the
// read-only usecases (earnings, reports, notifications).
type IOrderReader interface {
	Snapshot(ctx context.Context) ([]entities.Order, error)
}
