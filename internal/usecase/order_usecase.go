package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/mirror"
	"piecework_tracker/internal/domain/pricing"
	"piecework_tracker/internal/usecase/interfaces"
	"piecework_tracker/pkg/logger"

	"github.com/google/uuid"
)

// IOrderUseCase is the order aggregate store: the only writer of persisted
// order state.
//
// Every mutation validates first, then writes the whole collection through
// the repository; if the write fails the in-memory collection is unchanged.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, number, date string, ops ...entities.RawOperation) (entities.Order, error)
	AddOperation(ctx context.Context, orderID string, op entities.RawOperation) (entities.Order, error)
	FinalizeOrder(ctx context.Context, orderID string) (entities.Money, error)
	UpdateOrderDate(ctx context.Context, orderID, date string) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	OrdersForDate(ctx context.Context, date string) ([]entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	MergeRemote(ctx context.Context, remote []entities.Order) ([]entities.Order, error)
	interfaces.IOrderReader
}

type OrderUseCase struct {
	repo  interfaces.IOrderRepository
	clock Clock

	mu     sync.Mutex
	loaded bool
	orders []entities.Order
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, clock Clock) *OrderUseCase {
	if clock == nil {
		clock = SystemClock(nil)
	}
	return &OrderUseCase{repo: repo, clock: clock}
}

// CreateOrder opens an order with one or more operations. Every operation is
// validated before anything is stored.
func (u *OrderUseCase) CreateOrder(ctx context.Context, number, date string, ops ...entities.RawOperation) (entities.Order, error) {
	log := logger.FromContext(ctx)

	number = entities.SingleLine(number)
	if number == "" {
		return entities.Order{}, validationErr("number", ErrInvalidOrderNumber)
	}
	date, err := resolveDate(u.clock, date)
	if err != nil {
		return entities.Order{}, err
	}
	if len(ops) == 0 {
		return entities.Order{}, validationErr("kind", ErrOperationKindRequired)
	}
	operations := make([]entities.Operation, 0, len(ops))
	for _, raw := range ops {
		op, err := normalizeOperation(raw)
		if err != nil {
			return entities.Order{}, err
		}
		operations = append(operations, op)
	}

	order := entities.Order{
		ID:         uuid.NewString(),
		Number:     number,
		Date:       date,
		Status:     entities.OrderStatusOpen,
		Operations: operations,
		CreatedAt:  u.clock().UTC(),
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return entities.Order{}, err
	}

	next := cloneOrders(u.orders)
	next = append(next, order)
	if err := u.commit(ctx, next); err != nil {
		log.Errorw("[order][usecase] create failed", "number", number, "err", err)
		return entities.Order{}, err
	}
	log.Infow("[order][usecase] created", "order_id", order.ID, "number", number, "date", date, "operations", len(operations))
	return order.Clone(), nil
}

func (u *OrderUseCase) AddOperation(ctx context.Context, orderID string, raw entities.RawOperation) (entities.Order, error) {
	op, err := normalizeOperation(raw)
	if err != nil {
		return entities.Order{}, err
	}
	return u.mutate(ctx, orderID, func(o *entities.Order) error {
		if o.IsClosed() {
			return invalidStateErr(ErrOrderClosed)
		}
		o.Operations = append(o.Operations, op)
		return nil
	})
}

// FinalizeOrder freezes the current computed price and closes the order.
// Calling it again recomputes and re-freezes the same price.
func (u *OrderUseCase) FinalizeOrder(ctx context.Context, orderID string) (entities.Money, error) {
	updated, err := u.mutate(ctx, orderID, func(o *entities.Order) error {
		price := pricing.PriceOfOrder(*o)
		now := u.clock().UTC()
		o.Price = &price
		o.Status = entities.OrderStatusClosed
		o.ClosedAt = &now
		return nil
	})
	if err != nil {
		return entities.ZeroMoney(), err
	}
	logger.FromContext(ctx).Infow("[order][usecase] finalized", "order_id", updated.ID, "number", updated.Number, "price", updated.FrozenPrice().StringFixed(2))
	return updated.FrozenPrice(), nil
}

// UpdateOrderDate changes the date only; status and frozen price stay as they are.
func (u *OrderUseCase) UpdateOrderDate(ctx context.Context, orderID, date string) (entities.Order, error) {
	if strings.TrimSpace(date) == "" {
		return entities.Order{}, validationErr("date", ErrInvalidDate)
	}
	date, err := resolveDate(u.clock, date)
	if err != nil {
		return entities.Order{}, err
	}
	return u.mutate(ctx, orderID, func(o *entities.Order) error {
		o.Date = date
		return nil
	})
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return validationErr("id", ErrInvalidOrderID)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return err
	}

	idx := u.indexOf(orderID)
	if idx < 0 {
		return notFoundErr(orderID, ErrOrderNotFound)
	}
	next := make([]entities.Order, 0, len(u.orders)-1)
	next = append(next, cloneOrders(u.orders[:idx])...)
	next = append(next, cloneOrders(u.orders[idx+1:])...)
	if err := u.commit(ctx, next); err != nil {
		return err
	}
	logger.FromContext(ctx).Infow("[order][usecase] deleted", "order_id", orderID)
	return nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, validationErr("id", ErrInvalidOrderID)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return entities.Order{}, err
	}
	idx := u.indexOf(orderID)
	if idx < 0 {
		return entities.Order{}, notFoundErr(orderID, ErrOrderNotFound)
	}
	return u.orders[idx].Clone(), nil
}

// OrdersForDate returns open and closed orders dated date, in insertion order.
func (u *OrderUseCase) OrdersForDate(ctx context.Context, date string) ([]entities.Order, error) {
	date, err := resolveDate(u.clock, date)
	if err != nil {
		return nil, err
	}
	all, err := u.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0)
	for _, o := range all {
		if o.Date == date {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.Snapshot(ctx)
}

// Snapshot returns a deep copy of the collection.
func (u *OrderUseCase) Snapshot(ctx context.Context) ([]entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return cloneOrders(u.orders), nil
}

// MergeRemote appends remote orders whose number is unknown locally and
// returns the ones that were added. Existing orders are never overwritten.
func (u *OrderUseCase) MergeRemote(ctx context.Context, remote []entities.Order) ([]entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	incoming := make([]entities.Order, 0, len(remote))
	now := u.clock().UTC()
	for _, o := range remote {
		c := o.Clone()
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.IsClosed() && c.ClosedAt == nil {
			closedAt := now
			c.ClosedAt = &closedAt
		}
		incoming = append(incoming, c)
	}

	merged, added := mirror.Merge(cloneOrders(u.orders), incoming)
	if len(added) == 0 {
		return added, nil
	}
	if err := u.commit(ctx, merged); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Infow("[order][usecase] merged remote orders", "received", len(remote), "added", len(added))
	return cloneOrders(added), nil
}

func (u *OrderUseCase) mutate(ctx context.Context, orderID string, apply func(o *entities.Order) error) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, validationErr("id", ErrInvalidOrderID)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return entities.Order{}, err
	}

	idx := u.indexOf(orderID)
	if idx < 0 {
		return entities.Order{}, notFoundErr(orderID, ErrOrderNotFound)
	}
	next := cloneOrders(u.orders)
	if err := apply(&next[idx]); err != nil {
		return entities.Order{}, err
	}
	if err := u.commit(ctx, next); err != nil {
		logger.FromContext(ctx).Errorw("[order][usecase] save failed", "order_id", orderID, "err", err)
		return entities.Order{}, err
	}
	return next[idx].Clone(), nil
}

func (u *OrderUseCase) ensureLoaded(ctx context.Context) error {
	if u.loaded {
		return nil
	}
	data, err := u.repo.LoadOrders(ctx)
	if err != nil {
		return err
	}
	u.orders = data.Orders
	if u.orders == nil {
		u.orders = make([]entities.Order, 0)
	}
	u.loaded = true
	return nil
}

// commit writes next through the repository and adopts it only on success.
func (u *OrderUseCase) commit(ctx context.Context, next []entities.Order) error {
	if err := u.repo.SaveOrders(ctx, entities.OrdersData{Orders: next}); err != nil {
		return err
	}
	u.orders = next
	return nil
}

func (u *OrderUseCase) indexOf(orderID string) int {
	for i := range u.orders {
		if u.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func normalizeOperation(raw entities.RawOperation) (entities.Operation, error) {
	op, err := entities.NormalizeOperation(raw)
	if errors.Is(err, entities.ErrUnknownOperationKind) {
		return entities.Operation{}, validationErr("kind", ErrOperationKindRequired)
	}
	return op, err
}

func cloneOrders(in []entities.Order) []entities.Order {
	out := make([]entities.Order, 0, len(in))
	for _, o := range in {
		out = append(out, o.Clone())
	}
	return out
}
