// Package pricing holds the fixed rate table and the pure functions that turn
// operations into money. Nothing here performs I/O or returns errors:
// incomplete input prices at zero.
package pricing

import (
	"piecework_tracker/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Rate is one row of the rate table.
type Rate struct {
	Kind      entities.OperationKind `json:"kind"`
	Name      string                 `json:"name"`
	Measure   entities.MeasureKind   `json:"measure"`
	Unit      string                 `json:"unit"`
	UnitPrice entities.Money         `json:"unit_price"`
}

var unitPrices = map[entities.OperationKind]int64{
	entities.OperationCutArea:          65,
	entities.OperationLinearCut:        26,
	entities.OperationLaminationSimple: 165,
	entities.OperationLaminationTrim:   210,
	entities.OperationChamferMilling:   16,
	entities.OperationGrooving:         30,
	entities.OperationTime:             330,
}

var measureUnits = map[entities.MeasureKind]string{
	entities.MeasureArea:     "m²",
	entities.MeasureLength:   "lm",
	entities.MeasureDuration: "h",
}

// UnitPrice returns the rate for kind; ok is false for unknown kinds.
func UnitPrice(kind entities.OperationKind) (entities.Money, bool) {
	p, ok := unitPrices[kind]
	if !ok {
		return entities.ZeroMoney(), false
	}
	return decimal.NewFromInt(p), true
}

// UnitOf returns the display unit of kind's measure.
func UnitOf(kind entities.OperationKind) string {
	return measureUnits[kind.Measure()]
}

// RateTable lists every rate in display order.
func RateTable() []Rate {
	kinds := entities.OperationKinds()
	out := make([]Rate, 0, len(kinds))
	for _, k := range kinds {
		price, _ := UnitPrice(k)
		out = append(out, Rate{
			Kind:      k,
			Name:      k.DisplayName(),
			Measure:   k.Measure(),
			Unit:      UnitOf(k),
			UnitPrice: price,
		})
	}
	return out
}

// PriceOfOperation = rate × measure × quantity, rounded to kopecks.
func PriceOfOperation(op entities.Operation) entities.Money {
	rate, ok := UnitPrice(op.Kind)
	if !ok {
		return entities.ZeroMoney()
	}
	measure := op.MeasureValue()
	if measure == 0 {
		return entities.ZeroMoney()
	}
	qty := decimal.NewFromInt(int64(op.EffectiveQuantity()))
	return entities.RoundMoney(rate.Mul(decimal.NewFromFloat(measure)).Mul(qty))
}

// PriceOfOperations sums the already-rounded line prices and rounds once more,
// which is a no-op for kopeck values but keeps the contract explicit.
func PriceOfOperations(ops []entities.Operation) entities.Money {
	total := entities.ZeroMoney()
	for _, op := range ops {
		total = total.Add(PriceOfOperation(op))
	}
	return entities.RoundMoney(total)
}

func PriceOfOrder(o entities.Order) entities.Money {
	return PriceOfOperations(o.Operations)
}

// EffectivePrice is what reports and screens show: the frozen price once
// closed, the live computation while open. A closed order is never
// recomputed, even if its frozen price is zero.
func EffectivePrice(o entities.Order) entities.Money {
	if o.IsClosed() {
		return o.FrozenPrice()
	}
	return PriceOfOrder(o)
}
