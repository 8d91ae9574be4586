package entities

// SinkRecord is the flat, one-row-per-operation shape exchanged with the
// external spreadsheet sink. OrderTotal repeats the parent order total on
// every row of that order.
type SinkRecord struct {
	OrderNumber string  `json:"orderNumber"`
	Date        string  `json:"date"`
	Detail      string  `json:"detail"`
	Operation   string  `json:"operation"`
	Quantity    float64 `json:"quantity"`
	Area        float64 `json:"area"`
	Length      float64 `json:"length"`
	Duration    float64 `json:"duration"`
	Price       Money   `json:"price"`
	OrderTotal  Money   `json:"orderTotal"`
	Status      string  `json:"status"`
}
