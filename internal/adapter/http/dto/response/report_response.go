package response

import (
	"time"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/report"
	"piecework_tracker/internal/usecase"
)

type ReportLineResponse struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name"`
	Detail   string  `json:"detail"`
	Quantity int     `json:"quantity"`
	Measure  float64 `json:"measure"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

type ReportOrderResponse struct {
	OrderID string               `json:"order_id"`
	Number  string               `json:"number"`
	Status  string               `json:"status"`
	Lines   []ReportLineResponse `json:"lines"`
	Total   float64              `json:"total"`
}

type ReportResponse struct {
	Date       string                `json:"date"`
	Orders     []ReportOrderResponse `json:"orders"`
	GrandTotal float64               `json:"grand_total"`
}

type SubmitResponse struct {
	Date       string  `json:"date"`
	Records    int     `json:"records"`
	GrandTotal float64 `json:"grand_total"`
	Mailed     bool    `json:"mailed"`
}

type SyncResponse struct {
	Fetched int `json:"fetched"`
	Orders  int `json:"orders"`
	Added   int `json:"added"`
}

type PushResponse struct {
	Date    string `json:"date"`
	Records int    `json:"records"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func FromReport(r report.Report) ReportResponse {
	orders := make([]ReportOrderResponse, 0, len(r.Orders))
	for _, o := range r.Orders {
		lines := make([]ReportLineResponse, 0, len(o.Lines))
		for _, l := range o.Lines {
			lines = append(lines, ReportLineResponse{
				Kind:     string(l.Kind),
				Name:     l.Name,
				Detail:   l.Detail,
				Quantity: l.Quantity,
				Measure:  l.Measure,
				Unit:     l.Unit,
				Price:    l.Price.InexactFloat64(),
			})
		}
		orders = append(orders, ReportOrderResponse{
			OrderID: o.OrderID,
			Number:  o.Number,
			Status:  string(o.Status),
			Lines:   lines,
			Total:   o.Total.InexactFloat64(),
		})
	}
	return ReportResponse{Date: r.Date, Orders: orders, GrandTotal: r.GrandTotal.InexactFloat64()}
}

func FromSubmitResult(res usecase.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Date:       res.Date,
		Records:    res.Records,
		GrandTotal: res.GrandTotal.InexactFloat64(),
		Mailed:     res.Mailed,
	}
}

func FromSyncResult(res usecase.SyncResult) SyncResponse {
	return SyncResponse{Fetched: res.Fetched, Orders: res.Orders, Added: res.Added}
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{ID: n.ID, OrderID: n.OrderID, Message: n.Message, Timestamp: n.Timestamp, Read: n.Read}
}

func FromNotifications(items []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}
