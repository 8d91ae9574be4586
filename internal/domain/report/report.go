// Package report builds the per-date shift report and its plain-text export.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"piecework_tracker/internal/domain/earnings"
	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const (
	separatorWidth = 40

	orderPrefix      = "Order #"
	orderTotalPrefix = "Order total: "
	openTotalPrefix  = "Order total (open, not counted): "
	dayTotalPrefix   = "Day total: "
)

var ErrNoTotals = errors.New("report has no day total line")

// Line is one operation of an order block.
type Line struct {
	Kind     entities.OperationKind `json:"kind"`
	Name     string                 `json:"name"`
	Detail   string                 `json:"detail"`
	Quantity int                    `json:"quantity"`
	Measure  float64                `json:"measure"`
	Unit     string                 `json:"unit"`
	Price    entities.Money         `json:"price"`
}

// OrderBlock is one order of the report. Open orders are listed with their
// live total but do not count toward the grand total.
type OrderBlock struct {
	OrderID string               `json:"order_id"`
	Number  string               `json:"number"`
	Status  entities.OrderStatus `json:"status"`
	Lines   []Line               `json:"lines"`
	Total   entities.Money       `json:"total"`
}

// Report is the shift report for one calendar date.
type Report struct {
	Date       string         `json:"date"`
	Orders     []OrderBlock   `json:"orders"`
	GrandTotal entities.Money `json:"grand_total"`
}

// Totals is what ParseTotals recovers from an exported report.
type Totals struct {
	OrderTotals []entities.Money
	GrandTotal  entities.Money
}

// Build assembles the report for date from the full order collection.
func Build(orders []entities.Order, date string) Report {
	units := make(map[entities.OperationKind]string)
	for _, r := range pricing.RateTable() {
		units[r.Kind] = r.Unit
	}

	r := Report{Date: date, Orders: make([]OrderBlock, 0)}
	for _, o := range orders {
		if o.Date != date {
			continue
		}
		block := OrderBlock{
			OrderID: o.ID,
			Number:  o.Number,
			Status:  o.Status,
			Lines:   make([]Line, 0, len(o.Operations)),
			Total:   pricing.EffectivePrice(o),
		}
		for _, op := range o.Operations {
			block.Lines = append(block.Lines, Line{
				Kind:     op.Kind,
				Name:     op.Kind.DisplayName(),
				Detail:   op.Detail,
				Quantity: op.EffectiveQuantity(),
				Measure:  op.MeasureValue(),
				Unit:     units[op.Kind],
				Price:    pricing.PriceOfOperation(op),
			})
		}
		r.Orders = append(r.Orders, block)
	}
	r.GrandTotal = earnings.Daily(orders, date)
	return r
}

// Render writes the plain-text export.
func Render(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)
	sep := strings.Repeat("=", separatorWidth)

	fmt.Fprintf(bw, "Orders for %s\n%s\n\n", humanDate(r.Date), sep)
	for _, o := range r.Orders {
		if o.Status == entities.OrderStatusOpen {
			fmt.Fprintf(bw, "%s%s (open)\n", orderPrefix, o.Number)
		} else {
			fmt.Fprintf(bw, "%s%s\n", orderPrefix, o.Number)
		}
		for _, l := range o.Lines {
			fmt.Fprintf(bw, "- %s | %s | x%d | %s %s | %s\n",
				l.Detail, l.Name, l.Quantity, strconv.FormatFloat(l.Measure, 'f', -1, 64), l.Unit, l.Price.StringFixed(2))
		}
		if o.Status == entities.OrderStatusOpen {
			fmt.Fprintf(bw, "%s%s\n\n", openTotalPrefix, o.Total.StringFixed(2))
		} else {
			fmt.Fprintf(bw, "%s%s\n\n", orderTotalPrefix, o.Total.StringFixed(2))
		}
	}
	fmt.Fprintf(bw, "%s\n%s%s\n", sep, dayTotalPrefix, r.GrandTotal.StringFixed(2))
	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString(r Report) string {
	var sb strings.Builder
	_ = Render(&sb, r)
	return sb.String()
}

// ParseTotals recovers the closed-order totals and the day total from a
// rendered report.
func ParseTotals(rd io.Reader) (Totals, error) {
	var out Totals
	found := false
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, orderTotalPrefix):
			v, err := decimal.NewFromString(strings.TrimPrefix(line, orderTotalPrefix))
			if err != nil {
				return Totals{}, fmt.Errorf("parse order total %q: %w", line, err)
			}
			out.OrderTotals = append(out.OrderTotals, v)
		case strings.HasPrefix(line, dayTotalPrefix):
			v, err := decimal.NewFromString(strings.TrimPrefix(line, dayTotalPrefix))
			if err != nil {
				return Totals{}, fmt.Errorf("parse day total %q: %w", line, err)
			}
			out.GrandTotal = v
			found = true
		}
	}
	if err := sc.Err(); err != nil {
		return Totals{}, err
	}
	if !found {
		return Totals{}, ErrNoTotals
	}
	return out, nil
}

// humanDate renders YYYY-MM-DD as DD.MM.YYYY.
func humanDate(date string) string {
	t, err := entities.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006")
}
