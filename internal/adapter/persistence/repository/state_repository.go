package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/usecase/interfaces"
)

// Persisted state keys. Values are UTF-8 JSON.
const (
	KeyOrdersData    = "ordersData"
	KeyNotifications = "notifications"
	KeySentReports   = "sentReports"
)

// StateRepository maps the tracker's persisted state onto an opaque
// key-value store. A missing key loads as empty state.

type StateRepository struct {
	kv interfaces.IKeyValueStore
}

var (
	_ interfaces.IOrderRepository        = (*StateRepository)(nil)
	_ interfaces.INotificationRepository = (*StateRepository)(nil)
	_ interfaces.ISentReportRepository   = (*StateRepository)(nil)
)

func NewStateRepository(kv interfaces.IKeyValueStore) *StateRepository {
	return &StateRepository{kv: kv}
}

func (r *StateRepository) LoadOrders(ctx context.Context) (entities.OrdersData, error) {
	data := entities.OrdersData{Orders: make([]entities.Order, 0)}
	if err := r.load(ctx, KeyOrdersData, &data); err != nil {
		return entities.OrdersData{}, err
	}
	if data.Orders == nil {
		data.Orders = make([]entities.Order, 0)
	}
	return data, nil
}

func (r *StateRepository) SaveOrders(ctx context.Context, data entities.OrdersData) error {
	if data.Orders == nil {
		data.Orders = make([]entities.Order, 0)
	}
	return r.save(ctx, KeyOrdersData, data)
}

func (r *StateRepository) LoadNotifications(ctx context.Context) ([]entities.Notification, error) {
	items := make([]entities.Notification, 0)
	if err := r.load(ctx, KeyNotifications, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *StateRepository) SaveNotifications(ctx context.Context, items []entities.Notification) error {
	if items == nil {
		items = make([]entities.Notification, 0)
	}
	return r.save(ctx, KeyNotifications, items)
}

func (r *StateRepository) LoadSentReports(ctx context.Context) ([]string, error) {
	dates := make([]string, 0)
	if err := r.load(ctx, KeySentReports, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *StateRepository) SaveSentReports(ctx context.Context, dates []string) error {
	if dates == nil {
		dates = make([]string, 0)
	}
	return r.save(ctx, KeySentReports, dates)
}

func (r *StateRepository) load(ctx context.Context, key string, dst any) error {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *StateRepository) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Put(ctx, key, raw)
}
