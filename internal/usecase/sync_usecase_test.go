package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/usecase/interfaces"
	mock_interfaces "piecework_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSyncUseCase_PullFromSink(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		store, _ := newStore(t)
		uc := NewSyncUseCase(store, nil, 0)
		if _, err := uc.PullFromSink(ctx); !errors.Is(err, ErrSinkNotConfigured) {
			t.Fatalf("expected ErrSinkNotConfigured, got %v", err)
		}
	})

	t.Run("unreachable sink", func(t *testing.T) {
		store, _ := newStore(t)
		sink := mock_interfaces.NewMockIOrderSink(gomock.NewController(t))
		sink.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := NewSyncUseCase(store, sink, 0).PullFromSink(ctx)
		var sErr *SyncError
		if !errors.As(err, &sErr) || !errors.Is(err, ErrSinkUnavailable) {
			t.Fatalf("expected SyncError(ErrSinkUnavailable), got %v", err)
		}
	})

	t.Run("undecodable payload", func(t *testing.T) {
		store, _ := newStore(t)
		sink := mock_interfaces.NewMockIOrderSink(gomock.NewController(t))
		sink.EXPECT().FetchAll(gomock.Any()).Return(nil, fmt.Errorf("%w: not json", interfaces.ErrSinkBadPayload))

		if _, err := NewSyncUseCase(store, sink, 0).PullFromSink(ctx); !errors.Is(err, ErrSinkMalformed) {
			t.Fatalf("expected ErrSinkMalformed, got %v", err)
		}
	})

	t.Run("one bad record rejects the batch", func(t *testing.T) {
		store, _ := newStore(t)
		sink := mock_interfaces.NewMockIOrderSink(gomock.NewController(t))
		sink.EXPECT().FetchAll(gomock.Any()).Return([]entities.SinkRecord{
			{OrderNumber: "R-1", Date: "2026-01-10", Operation: "TIME", Duration: 1, Quantity: 1},
			{OrderNumber: "R-2", Date: "10/01/2026", Operation: "TIME", Duration: 1, Quantity: 1},
		}, nil)

		if _, err := NewSyncUseCase(store, sink, 0).PullFromSink(ctx); !errors.Is(err, ErrSinkMalformed) {
			t.Fatalf("expected ErrSinkMalformed, got %v", err)
		}
		all, _ := store.ListOrders(ctx)
		if len(all) != 0 {
			t.Fatalf("local state changed: %+v", all)
		}
	})

	t.Run("merge keeps local orders", func(t *testing.T) {
		store, saved := newStore(t)
		local, _ := store.CreateOrder(ctx, "R-1", "2026-01-21", entities.RawOperation{Kind: "TIME", Duration: 1})

		sink := mock_interfaces.NewMockIOrderSink(gomock.NewController(t))
		sink.EXPECT().FetchAll(gomock.Any()).Return([]entities.SinkRecord{
			{OrderNumber: "R-1", Date: "2026-01-10", Operation: "TIME", Duration: 8, Quantity: 1},
			{OrderNumber: "R-2", Date: "2026-01-10", Operation: "LINEAR_CUT", Length: 2, Quantity: 1, OrderTotal: mustMoney("52")},
			{OrderNumber: "R-2", Date: "2026-01-10", Operation: "GROOVING", Length: 1, Quantity: 1, OrderTotal: mustMoney("52")},
		}, nil)

		res, err := NewSyncUseCase(store, sink, 0).PullFromSink(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Fetched != 3 || res.Orders != 2 || res.Added != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if saved.Orders[0].ID != local.ID || saved.Orders[0].IsClosed() {
			t.Fatalf("local order overwritten: %+v", saved.Orders[0])
		}
		remote := saved.Orders[1]
		if remote.Number != "R-2" || len(remote.Operations) != 2 || !remote.FrozenPrice().Equal(mustMoney("52")) {
			t.Fatalf("unexpected remote order: %+v", remote)
		}
	})
}

func TestSyncUseCase_PushDate(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	o, _ := store.CreateOrder(ctx, "A-1", "2026-01-21", entities.RawOperation{Kind: "TIME", Duration: 1})
	_, _ = store.AddOperation(ctx, o.ID, entities.RawOperation{Kind: "GROOVING", Length: 2})

	sink := mock_interfaces.NewMockIOrderSink(gomock.NewController(t))
	sink.EXPECT().PushBatch(gomock.Any(), gomock.Len(2)).Return(nil)
	sink.EXPECT().PushBatch(gomock.Any(), gomock.Any()).Return(errors.New("503"))
	uc := NewSyncUseCase(store, sink, 0)

	n, err := uc.PushDate(ctx, "2026-01-21")
	if err != nil || n != 2 {
		t.Fatalf("expected 2 records, got %d %v", n, err)
	}
	if _, err := uc.PushDate(ctx, "2026-01-21"); !errors.Is(err, ErrSinkUnavailable) {
		t.Fatalf("expected ErrSinkUnavailable, got %v", err)
	}
	n, err = uc.PushDate(ctx, "2026-01-01")
	if err != nil || n != 0 {
		t.Fatalf("expected no records, got %d %v", n, err)
	}
}
