// Package mirror maps orders to and from the flat record shape used by the
// external spreadsheet sink, and reconciles remote orders with local ones.
package mirror

import (
	"errors"
	"fmt"
	"strings"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/pricing"
)

var ErrMalformedRecord = errors.New("malformed sink record")

// RecordError points at the first record that failed validation.
type RecordError struct {
	Index  int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %d: %s", ErrMalformedRecord, e.Index, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}

// Flatten emits one record per operation, in order and operation order.
// Orders without operations produce no records.
func Flatten(orders []entities.Order) []entities.SinkRecord {
	out := make([]entities.SinkRecord, 0, len(orders))
	for _, o := range orders {
		total := pricing.EffectivePrice(o)
		for _, op := range o.Operations {
			out = append(out, entities.SinkRecord{
				OrderNumber: o.Number,
				Date:        o.Date,
				Detail:      op.Detail,
				Operation:   string(op.Kind),
				Quantity:    float64(op.EffectiveQuantity()),
				Area:        op.Area,
				Length:      op.Length,
				Duration:    op.Duration,
				Price:       pricing.PriceOfOperation(op),
				OrderTotal:  total,
				Status:      string(o.Status),
			})
		}
	}
	return out
}

type groupKey struct {
	number string
	date   string
}

// Normalize groups flat records into orders keyed by (number, date), in order
// of first appearance. Any invalid record rejects the whole batch.
//
// Status "open" yields an open order; "" or "closed" yields a closed order
// whose frozen price is the remote order total (or the computed total when the
// remote total is zero). Returned orders carry no ID or CreatedAt.
func Normalize(records []entities.SinkRecord) ([]entities.Order, error) {
	index := make(map[groupKey]int)
	out := make([]entities.Order, 0)
	remoteTotals := make([]entities.Money, 0)

	for i, rec := range records {
		number := entities.SingleLine(rec.OrderNumber)
		if number == "" {
			return nil, &RecordError{Index: i, Reason: "empty order number"}
		}
		date, err := entities.ParseDate(rec.Date)
		if err != nil {
			return nil, &RecordError{Index: i, Reason: fmt.Sprintf("invalid date %q", rec.Date)}
		}
		status, err := parseStatus(rec.Status)
		if err != nil {
			return nil, &RecordError{Index: i, Reason: err.Error()}
		}
		op, err := entities.NormalizeOperation(entities.RawOperation{
			Kind:     rec.Operation,
			Detail:   rec.Detail,
			Quantity: rec.Quantity,
			Area:     rec.Area,
			Length:   rec.Length,
			Duration: rec.Duration,
		})
		if err != nil {
			return nil, &RecordError{Index: i, Reason: fmt.Sprintf("unknown operation %q", rec.Operation)}
		}

		key := groupKey{number: number, date: entities.FormatDate(date)}
		pos, ok := index[key]
		if !ok {
			pos = len(out)
			index[key] = pos
			out = append(out, entities.Order{Number: key.number, Date: key.date, Status: status})
			remoteTotals = append(remoteTotals, rec.OrderTotal)
		}
		out[pos].Operations = append(out[pos].Operations, op)
	}

	for i := range out {
		if !out[i].IsClosed() {
			continue
		}
		price := entities.RoundMoney(remoteTotals[i])
		if price.IsZero() {
			price = pricing.PriceOfOrder(out[i])
		}
		out[i].Price = &price
	}
	return out, nil
}

// Merge appends every remote order whose number is not already present
// locally. Local orders are never modified. It returns the merged collection
// and the appended orders.
func Merge(local, remote []entities.Order) (merged []entities.Order, added []entities.Order) {
	known := make(map[string]struct{}, len(local))
	for _, o := range local {
		known[o.Number] = struct{}{}
	}

	merged = make([]entities.Order, 0, len(local)+len(remote))
	merged = append(merged, local...)
	added = make([]entities.Order, 0)
	for _, o := range remote {
		if _, ok := known[o.Number]; ok {
			continue
		}
		merged = append(merged, o)
		added = append(added, o)
	}
	return merged, added
}

func parseStatus(s string) (entities.OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(entities.OrderStatusClosed):
		return entities.OrderStatusClosed, nil
	case string(entities.OrderStatusOpen):
		return entities.OrderStatusOpen, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}
