package usecase

import (
	"context"
	"errors"
	"testing"

	"piecework_tracker/internal/domain/entities"
	mock_interfaces "piecework_tracker/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func closedOrder(number, date, price string, ops ...entities.Operation) entities.Order {
	p := mustMoney(price)
	return entities.Order{ID: number, Number: number, Date: date, Status: entities.OrderStatusClosed, Price: &p, Operations: ops}
}

func openOrder(number, date string, ops ...entities.Operation) entities.Order {
	return entities.Order{ID: number, Number: number, Date: date, Status: entities.OrderStatusOpen, Operations: ops}
}

func newEarnings(t *testing.T, orders []entities.Order) *EarningsUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := mock_interfaces.NewMockIOrderReader(ctrl)
	reader.EXPECT().Snapshot(gomock.Any()).Return(orders, nil).AnyTimes()
	return NewEarningsUseCase(reader, fixedClock)
}

func TestEarningsUseCase(t *testing.T) {
	ctx := context.Background()
	orders := []entities.Order{
		closedOrder("1", "2026-01-21", "1000", entities.Operation{Kind: entities.OperationCutArea, Area: 2, Quantity: 1}),
		closedOrder("2", "2026-01-21", "650", entities.Operation{Kind: entities.OperationLinearCut, Length: 4, Quantity: 2}),
		closedOrder("3", "2026-01-15", "200"),
		openOrder("4", "2026-01-21", entities.Operation{Kind: entities.OperationTime, Duration: 10, Quantity: 1}),
	}
	uc := newEarnings(t, orders)

	t.Run("total ignores open orders", func(t *testing.T) {
		total, err := uc.TotalEarnings(ctx)
		require.NoError(t, err)
		assert.True(t, total.Equal(mustMoney("1850")), total.String())
	})

	t.Run("daily defaults to today", func(t *testing.T) {
		daily, err := uc.DailyEarnings(ctx, "")
		require.NoError(t, err)
		assert.True(t, daily.Equal(mustMoney("1650")), daily.String())
	})

	t.Run("daily rejects bad date", func(t *testing.T) {
		_, err := uc.DailyEarnings(ctx, "2026/01/21")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("scenario D: plan progress below threshold", func(t *testing.T) {
		p, err := uc.PlanProgress(ctx, "2026-01-21", mustMoney("3000"))
		require.NoError(t, err)
		assert.False(t, p.Achieved)
		assert.Equal(t, 55.0, p.Percent)
		assert.True(t, p.Earned.Equal(mustMoney("1650")))
	})

	t.Run("last 7 days", func(t *testing.T) {
		series, err := uc.Last7DaysSeries(ctx, "2026-01-21")
		require.NoError(t, err)
		require.Len(t, series, 7)
		assert.Equal(t, "2026-01-15", series[0].Date)
		assert.True(t, series[0].Amount.Equal(mustMoney("200")))
		assert.Equal(t, "2026-01-21", series[6].Date)
		assert.True(t, series[6].Amount.Equal(mustMoney("1650")))
	})

	t.Run("monthly measures", func(t *testing.T) {
		m, err := uc.MonthlyMeasureTotals(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "2026-01", m.Month)
		assert.InDelta(t, 2.0, m.AreaTotal, 1e-9)
		assert.InDelta(t, 8.0, m.LengthTotal, 1e-9)

		_, err = uc.MonthlyMeasureTotals(ctx, "2026-13")
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("dates with orders newest first", func(t *testing.T) {
		dates, err := uc.DatesWithOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-01-21", "2026-01-15"}, dates)
	})

	t.Run("breakdown", func(t *testing.T) {
		rows, err := uc.OperationBreakdown(ctx, "2026-01-21")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, entities.OperationCutArea, rows[0].Kind)
		assert.Equal(t, entities.OperationLinearCut, rows[1].Kind)
	})
}

func TestEarningsUseCase_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reader := mock_interfaces.NewMockIOrderReader(ctrl)
	reader.EXPECT().Snapshot(gomock.Any()).Return(nil, errors.New("db"))

	uc := NewEarningsUseCase(reader, fixedClock)
	if _, err := uc.TotalEarnings(context.Background()); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
