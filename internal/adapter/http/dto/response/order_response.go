package response

import (
	"time"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/pricing"
)

type OperationResponse struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name"`
	Detail   string  `json:"detail"`
	Quantity int     `json:"quantity"`
	Area     float64 `json:"area,omitempty"`
	Length   float64 `json:"length,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// OrderResponse carries both the frozen price (closed orders only) and the
// effective total shown on screen.
type OrderResponse struct {
	ID         string              `json:"id"`
	Number     string              `json:"number"`
	Date       string              `json:"date"`
	Status     string              `json:"status"`
	Operations []OperationResponse `json:"operations"`
	Price      *float64            `json:"price,omitempty"`
	Total      float64             `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	ClosedAt   *time.Time          `json:"closed_at,omitempty"`
}

type FinalizeResponse struct {
	OrderID string  `json:"order_id"`
	Price   float64 `json:"price"`
}

func FromOrder(o entities.Order) OrderResponse {
	ops := make([]OperationResponse, 0, len(o.Operations))
	for _, op := range o.Operations {
		ops = append(ops, OperationResponse{
			Kind:     string(op.Kind),
			Name:     op.Kind.DisplayName(),
			Detail:   op.Detail,
			Quantity: op.EffectiveQuantity(),
			Area:     op.Area,
			Length:   op.Length,
			Duration: op.Duration,
			Unit:     pricing.UnitOf(op.Kind),
			Price:    pricing.PriceOfOperation(op).InexactFloat64(),
		})
	}

	resp := OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		Date:       o.Date,
		Status:     string(o.Status),
		Operations: ops,
		Total:      pricing.EffectivePrice(o).InexactFloat64(),
		CreatedAt:  o.CreatedAt,
		ClosedAt:   o.ClosedAt,
	}
	if o.Price != nil {
		p := o.Price.InexactFloat64()
		resp.Price = &p
	}
	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
