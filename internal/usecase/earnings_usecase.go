package usecase

import (
	"context"
	"strings"
	"time"

	"piecework_tracker/internal/domain/earnings"
	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/usecase/interfaces"
)

// IEarningsUseCase answers aggregate queries. Each call scans a fresh
// snapshot of the order collection.

type IEarningsUseCase interface {
	TotalEarnings(ctx context.Context) (entities.Money, error)
	DailyEarnings(ctx context.Context, date string) (entities.Money, error)
	Last7DaysSeries(ctx context.Context, referenceDate string) ([]earnings.DailyPoint, error)
	MonthlyMeasureTotals(ctx context.Context, month string) (earnings.MeasureTotals, error)
	PlanProgress(ctx context.Context, date string, threshold entities.Money) (earnings.PlanProgress, error)
	OperationBreakdown(ctx context.Context, date string) ([]earnings.KindBreakdown, error)
	DatesWithOrders(ctx context.Context) ([]string, error)
}

type EarningsUseCase struct {
	orders interfaces.IOrderReader
	clock  Clock
}

var _ IEarningsUseCase = (*EarningsUseCase)(nil)

func NewEarningsUseCase(orders interfaces.IOrderReader, clock Clock) *EarningsUseCase {
	if clock == nil {
		clock = SystemClock(nil)
	}
	return &EarningsUseCase{orders: orders, clock: clock}
}

func (u *EarningsUseCase) TotalEarnings(ctx context.Context) (entities.Money, error) {
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return entities.ZeroMoney(), err
	}
	return earnings.Total(all), nil
}

func (u *EarningsUseCase) DailyEarnings(ctx context.Context, date string) (entities.Money, error) {
	date, err := resolveDate(u.clock, date)
	if err != nil {
		return entities.ZeroMoney(), err
	}
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return entities.ZeroMoney(), err
	}
	return earnings.Daily(all, date), nil
}

func (u *EarningsUseCase) Last7DaysSeries(ctx context.Context, referenceDate string) ([]earnings.DailyPoint, error) {
	referenceDate, err := resolveDate(u.clock, referenceDate)
	if err != nil {
		return nil, err
	}
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return earnings.Last7Days(all, referenceDate), nil
}

// MonthlyMeasureTotals accepts "YYYY-MM"; blank means the current month.
func (u *EarningsUseCase) MonthlyMeasureTotals(ctx context.Context, month string) (earnings.MeasureTotals, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		month = u.clock().Format(entities.MonthLayout)
	} else {
		t, err := time.Parse(entities.MonthLayout, month)
		if err != nil {
			return earnings.MeasureTotals{}, validationErr("month", ErrInvalidMonth)
		}
		month = t.Format(entities.MonthLayout)
	}
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return earnings.MeasureTotals{}, err
	}
	return earnings.MonthlyMeasures(all, month), nil
}

func (u *EarningsUseCase) PlanProgress(ctx context.Context, date string, threshold entities.Money) (earnings.PlanProgress, error) {
	date, err := resolveDate(u.clock, date)
	if err != nil {
		return earnings.PlanProgress{}, err
	}
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return earnings.PlanProgress{}, err
	}
	return earnings.Plan(all, date, threshold), nil
}

func (u *EarningsUseCase) OperationBreakdown(ctx context.Context, date string) ([]earnings.KindBreakdown, error) {
	date, err := resolveDate(u.clock, date)
	if err != nil {
		return nil, err
	}
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return earnings.Breakdown(all, date), nil
}

func (u *EarningsUseCase) DatesWithOrders(ctx context.Context) ([]string, error) {
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return earnings.Dates(all), nil
}
