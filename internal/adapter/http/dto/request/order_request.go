package request

import "piecework_tracker/internal/domain/entities"

// OperationRequest is one operation as entered on the order form. Area
// operations may send length and width instead of area.
type OperationRequest struct {
	Kind     string  `json:"kind"`
	Detail   string  `json:"detail"`
	Quantity float64 `json:"quantity"`
	Area     float64 `json:"area"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Duration float64 `json:"duration"`
}

func (r OperationRequest) ToRaw() entities.RawOperation {
	return entities.RawOperation{
		Kind:     r.Kind,
		Detail:   r.Detail,
		Quantity: r.Quantity,
		Area:     r.Area,
		Length:   r.Length,
		Width:    r.Width,
		Duration: r.Duration,
	}
}

// CreateOrderRequest opens an order. Operations may come as a single
// "operation", an "operations" list, or both. A blank date means today.
type CreateOrderRequest struct {
	Number     string             `json:"number"`
	Date       string             `json:"date"`
	Operation  OperationRequest   `json:"operation"`
	Operations []OperationRequest `json:"operations"`
}

// RawOperations returns operation followed by operations. A form with no
// operation at all yields one blank operation so the missing kind is reported.
func (r CreateOrderRequest) RawOperations() []entities.RawOperation {
	out := make([]entities.RawOperation, 0, 1+len(r.Operations))
	if r.Operation != (OperationRequest{}) || len(r.Operations) == 0 {
		out = append(out, r.Operation.ToRaw())
	}
	for _, op := range r.Operations {
		out = append(out, op.ToRaw())
	}
	return out
}

type UpdateOrderDateRequest struct {
	Date string `json:"date" binding:"required"`
}
