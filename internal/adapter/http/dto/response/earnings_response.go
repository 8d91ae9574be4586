package response

import (
	"piecework_tracker/internal/domain/earnings"
	"piecework_tracker/internal/domain/pricing"
)

type TotalResponse struct {
	Total float64 `json:"total"`
}

// DailyResponse echoes the requested date; it is empty when today was implied.
type DailyResponse struct {
	Date  string  `json:"date,omitempty"`
	Total float64 `json:"total"`
}

type DailyPointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type MonthlyResponse struct {
	Month       string  `json:"month"`
	AreaTotal   float64 `json:"area_total"`
	LengthTotal float64 `json:"length_total"`
}

type PlanResponse struct {
	Date      string  `json:"date"`
	Earned    float64 `json:"earned"`
	Threshold float64 `json:"threshold"`
	Achieved  bool    `json:"achieved"`
	Percent   float64 `json:"percent"`
}

type BreakdownResponse struct {
	Kind    string  `json:"kind"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Measure float64 `json:"measure"`
	Amount  float64 `json:"amount"`
}

type RateResponse struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Measure   string  `json:"measure"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

func FromSeries(points []earnings.DailyPoint) []DailyPointResponse {
	out := make([]DailyPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, DailyPointResponse{Date: p.Date, Amount: p.Amount.InexactFloat64()})
	}
	return out
}

func FromMonthly(m earnings.MeasureTotals) MonthlyResponse {
	return MonthlyResponse{Month: m.Month, AreaTotal: m.AreaTotal, LengthTotal: m.LengthTotal}
}

func FromPlan(p earnings.PlanProgress) PlanResponse {
	return PlanResponse{
		Date:      p.Date,
		Earned:    p.Earned.InexactFloat64(),
		Threshold: p.Threshold.InexactFloat64(),
		Achieved:  p.Achieved,
		Percent:   p.Percent,
	}
}

func FromBreakdown(rows []earnings.KindBreakdown) []BreakdownResponse {
	out := make([]BreakdownResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BreakdownResponse{
			Kind:    string(r.Kind),
			Name:    r.Name,
			Count:   r.Count,
			Measure: r.Measure,
			Amount:  r.Amount.InexactFloat64(),
		})
	}
	return out
}

func FromRates(rates []pricing.Rate) []RateResponse {
	out := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, RateResponse{
			Kind:      string(r.Kind),
			Name:      r.Name,
			Measure:   string(r.Measure),
			Unit:      r.Unit,
			UnitPrice: r.UnitPrice.InexactFloat64(),
		})
	}
	return out
}
