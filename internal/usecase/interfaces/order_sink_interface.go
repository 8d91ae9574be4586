package interfaces

import (
	"context"
	"errors"
	"piecework_tracker/internal/domain/entities"
)

// ErrSinkBadPayload is returned by sink adapters when the remote answered
// with something that is not a list of records.
var ErrSinkBadPayload = errors.New("sink returned malformed payload")

// IOrderSink abstracts the external spreadsheet mirror.
//
// Calls are request/response only; adapters never retry.
type IOrderSink interface {
	FetchAll(ctx context.Context) ([]entities.SinkRecord, error)
	PushBatch(ctx context.Context, records []entities.SinkRecord) error
}

// IReportMailer delivers a rendered shift report by e-mail.
type IReportMailer interface {
	SendReport(ctx context.Context, date string, body string) error
}
