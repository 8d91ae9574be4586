// Package earnings derives earnings projections from an order collection.
// Every function is a full scan; nothing is cached, so results always
// reconcile with the orders they were given.
package earnings

import (
	"sort"
	"strings"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// SeriesDays is the length of the rolling earnings series.
const SeriesDays = 7

// DailyPoint is one entry of a day series.
type DailyPoint struct {
	Date   string         `json:"date"`
	Amount entities.Money `json:"amount"`
}

// MeasureTotals sums measure × quantity over a month. Duration operations
// contribute to neither total.
type MeasureTotals struct {
	Month       string  `json:"month"`
	AreaTotal   float64 `json:"area_total"`
	LengthTotal float64 `json:"length_total"`
}

// PlanProgress compares a day's earnings with the plan threshold.
type PlanProgress struct {
	Date      string         `json:"date"`
	Earned    entities.Money `json:"earned"`
	Threshold entities.Money `json:"threshold"`
	Achieved  bool           `json:"achieved"`
	Percent   float64        `json:"percent"`
}

// KindBreakdown is the per-operation-kind rollup for one date.
type KindBreakdown struct {
	Kind    entities.OperationKind `json:"kind"`
	Name    string                 `json:"name"`
	Count   int                    `json:"count"`
	Measure float64                `json:"measure"`
	Amount  entities.Money         `json:"amount"`
}

// Total sums frozen prices over closed orders.
func Total(orders []entities.Order) entities.Money {
	total := entities.ZeroMoney()
	for _, o := range orders {
		if o.IsClosed() {
			total = total.Add(o.FrozenPrice())
		}
	}
	return entities.RoundMoney(total)
}

// Daily sums frozen prices over closed orders dated date.
func Daily(orders []entities.Order, date string) entities.Money {
	total := entities.ZeroMoney()
	for _, o := range orders {
		if o.IsClosed() && o.Date == date {
			total = total.Add(o.FrozenPrice())
		}
	}
	return entities.RoundMoney(total)
}

// Last7Days returns exactly SeriesDays points from ref-6 to ref, oldest first.
// ref must be a valid calendar day.
func Last7Days(orders []entities.Order, ref string) []DailyPoint {
	byDate := make(map[string]entities.Money)
	for _, o := range orders {
		if o.IsClosed() {
			byDate[o.Date] = byDate[o.Date].Add(o.FrozenPrice())
		}
	}

	out := make([]DailyPoint, 0, SeriesDays)
	for i := SeriesDays - 1; i >= 0; i-- {
		d := entities.AddDays(ref, -i)
		out = append(out, DailyPoint{Date: d, Amount: entities.RoundMoney(byDate[d])})
	}
	return out
}

// MonthlyMeasures sums measure × quantity for closed orders whose date falls
// in month ("YYYY-MM").
func MonthlyMeasures(orders []entities.Order, month string) MeasureTotals {
	area := decimal.Zero
	length := decimal.Zero
	prefix := month + "-"
	for _, o := range orders {
		if !o.IsClosed() || !strings.HasPrefix(o.Date, prefix) {
			continue
		}
		for _, op := range o.Operations {
			v := decimal.NewFromFloat(op.MeasureValue()).Mul(decimal.NewFromInt(int64(op.EffectiveQuantity())))
			switch op.Kind.Measure() {
			case entities.MeasureArea:
				area = area.Add(v)
			case entities.MeasureLength:
				length = length.Add(v)
			}
		}
	}
	return MeasureTotals{
		Month:       month,
		AreaTotal:   area.InexactFloat64(),
		LengthTotal: length.InexactFloat64(),
	}
}

// Plan computes progress of date's earnings toward threshold. Percent is
// capped at 100 and rounded to two decimals; a non-positive threshold counts
// as achieved.
func Plan(orders []entities.Order, date string, threshold entities.Money) PlanProgress {
	earned := Daily(orders, date)
	p := PlanProgress{Date: date, Earned: earned, Threshold: threshold}
	if !threshold.IsPositive() {
		p.Achieved = true
		p.Percent = 100
		return p
	}
	p.Achieved = earned.GreaterThanOrEqual(threshold)
	pct := earned.Div(threshold).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		pct = decimal.NewFromInt(100)
	}
	p.Percent = pct.Round(2).InexactFloat64()
	return p
}

// Breakdown groups closed orders' operations on date by kind, in rate-table
// order. Kinds with no operations are omitted.
func Breakdown(orders []entities.Order, date string) []KindBreakdown {
	acc := make(map[entities.OperationKind]*KindBreakdown)
	measures := make(map[entities.OperationKind]decimal.Decimal)
	for _, o := range orders {
		if !o.IsClosed() || o.Date != date {
			continue
		}
		for _, op := range o.Operations {
			b, ok := acc[op.Kind]
			if !ok {
				b = &KindBreakdown{Kind: op.Kind, Name: op.Kind.DisplayName(), Amount: entities.ZeroMoney()}
				acc[op.Kind] = b
			}
			b.Count++
			b.Amount = b.Amount.Add(pricing.PriceOfOperation(op))
			measures[op.Kind] = measures[op.Kind].Add(
				decimal.NewFromFloat(op.MeasureValue()).Mul(decimal.NewFromInt(int64(op.EffectiveQuantity()))),
			)
		}
	}

	out := make([]KindBreakdown, 0, len(acc))
	for _, k := range entities.OperationKinds() {
		if b, ok := acc[k]; ok {
			b.Measure = measures[k].InexactFloat64()
			out = append(out, *b)
		}
	}
	return out
}

// Dates lists the distinct order dates, newest first.
func Dates(orders []entities.Order) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, o := range orders {
		if _, ok := seen[o.Date]; ok {
			continue
		}
		seen[o.Date] = struct{}{}
		out = append(out, o.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}
