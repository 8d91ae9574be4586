package usecase

import (
	"context"
	"errors"
	"time"

	"piecework_tracker/internal/domain/mirror"
	"piecework_tracker/internal/usecase/interfaces"
	"piecework_tracker/pkg/logger"
)

// SyncResult summarizes a pull from the external sink.
type SyncResult struct {
	Fetched int `json:"fetched"`
	Orders  int `json:"orders"`
	Added   int `json:"added"`
}

// ISyncUseCase mirrors orders with the external sink. The local store stays
// authoritative: a failed or partial pull changes nothing.

type ISyncUseCase interface {
	PullFromSink(ctx context.Context) (SyncResult, error)
	PushDate(ctx context.Context, date string) (int, error)
}

type SyncUseCase struct {
	orders  IOrderUseCase
	sink    interfaces.IOrderSink
	timeout time.Duration
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(orders IOrderUseCase, sink interfaces.IOrderSink, timeout time.Duration) *SyncUseCase {
	return &SyncUseCase{orders: orders, sink: sink, timeout: timeout}
}

func (u *SyncUseCase) PullFromSink(ctx context.Context) (SyncResult, error) {
	log := logger.FromContext(ctx)
	if u.sink == nil {
		return SyncResult{}, syncErr(ErrSinkNotConfigured, nil)
	}

	callCtx, cancel := withTimeout(ctx, u.timeout)
	records, err := u.sink.FetchAll(callCtx)
	cancel()
	if err != nil {
		log.Warnw("[sync][usecase] fetch failed", "err", err)
		if errors.Is(err, interfaces.ErrSinkBadPayload) {
			return SyncResult{}, syncErr(ErrSinkMalformed, err)
		}
		return SyncResult{}, syncErr(ErrSinkUnavailable, err)
	}

	remote, err := mirror.Normalize(records)
	if err != nil {
		log.Warnw("[sync][usecase] rejected remote batch", "records", len(records), "err", err)
		return SyncResult{}, syncErr(ErrSinkMalformed, err)
	}

	added, err := u.orders.MergeRemote(ctx, remote)
	if err != nil {
		return SyncResult{}, err
	}
	res := SyncResult{Fetched: len(records), Orders: len(remote), Added: len(added)}
	log.Infow("[sync][usecase] pull success", "fetched", res.Fetched, "orders", res.Orders, "added", res.Added)
	return res, nil
}

// PushDate mirrors every order of date (open and closed) without marking the
// date as reported.
func (u *SyncUseCase) PushDate(ctx context.Context, date string) (int, error) {
	if u.sink == nil {
		return 0, syncErr(ErrSinkNotConfigured, nil)
	}
	orders, err := u.orders.OrdersForDate(ctx, date)
	if err != nil {
		return 0, err
	}
	records := mirror.Flatten(orders)
	if len(records) == 0 {
		return 0, nil
	}

	callCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	if err := u.sink.PushBatch(callCtx, records); err != nil {
		logger.FromContext(ctx).Warnw("[sync][usecase] push failed", "date", date, "err", err)
		return 0, syncErr(ErrSinkUnavailable, err)
	}
	return len(records), nil
}
