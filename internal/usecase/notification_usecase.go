package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/usecase/interfaces"
	"piecework_tracker/pkg/logger"

	"github.com/google/uuid"
)

// INotificationUseCase raises and lists operator notifications.

type INotificationUseCase interface {
	CheckStaleOrders(ctx context.Context) (int, error)
	ListNotifications(ctx context.Context) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	orders     interfaces.IOrderReader
	repo       interfaces.INotificationRepository
	staleAfter time.Duration
	clock      Clock

	// mu covers every load-modify-save of the notification list; the
	// scheduler and HTTP handlers call in from different goroutines.
	mu sync.Mutex
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(orders interfaces.IOrderReader, repo interfaces.INotificationRepository, staleAfter time.Duration, clock Clock) *NotificationUseCase {
	if clock == nil {
		clock = SystemClock(nil)
	}
	return &NotificationUseCase{orders: orders, repo: repo, staleAfter: staleAfter, clock: clock}
}

// CheckStaleOrders adds one notification per open order older than
// staleAfter, unless an unread one already exists for that order.
func (u *NotificationUseCase) CheckStaleOrders(ctx context.Context) (int, error) {
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := u.repo.LoadNotifications(ctx)
	if err != nil {
		return 0, err
	}

	pending := make(map[string]struct{})
	for _, n := range existing {
		if !n.Read {
			pending[n.OrderID] = struct{}{}
		}
	}

	now := u.clock().UTC()
	created := 0
	for _, o := range all {
		if o.IsClosed() || o.CreatedAt.IsZero() || now.Sub(o.CreatedAt) < u.staleAfter {
			continue
		}
		if _, ok := pending[o.ID]; ok {
			continue
		}
		existing = append(existing, entities.Notification{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			Message:   fmt.Sprintf("Order %s has been open for %s", o.Number, now.Sub(o.CreatedAt).Truncate(time.Minute)),
			Timestamp: now,
		})
		pending[o.ID] = struct{}{}
		created++
	}

	if created == 0 {
		return 0, nil
	}
	if err := u.repo.SaveNotifications(ctx, existing); err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Infow("[notification][usecase] stale orders flagged", "created", created)
	return created, nil
}

// ListNotifications returns newest first.
func (u *NotificationUseCase) ListNotifications(ctx context.Context) ([]entities.Notification, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.repo.LoadNotifications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Notification, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	return out, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, validationErr("id", ErrNotificationNotFound)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.repo.LoadNotifications(ctx)
	if err != nil {
		return entities.Notification{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if items[i].Read {
			return items[i], nil
		}
		items[i].Read = true
		if err := u.repo.SaveNotifications(ctx, items); err != nil {
			return entities.Notification{}, err
		}
		return items[i], nil
	}
	return entities.Notification{}, notFoundErr(id, ErrNotificationNotFound)
}
